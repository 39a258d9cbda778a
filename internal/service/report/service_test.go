package report

import (
	"context"
	"testing"

	"github.com/leavehq/leave-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	report.ReportRepository
	monthlyCounts func(ctx context.Context, year int) (map[int]int, error)
	yearTotals    func(ctx context.Context, year int) (total, approved, totalDays int, err error)
}

func (f *fakeReportRepo) MonthlyCounts(ctx context.Context, year int) (map[int]int, error) {
	return f.monthlyCounts(ctx, year)
}

func (f *fakeReportRepo) YearTotals(ctx context.Context, year int) (int, int, int, error) {
	return f.yearTotals(ctx, year)
}

func TestMonthlyReportZeroFillsAllMonths(t *testing.T) {
	repo := &fakeReportRepo{
		monthlyCounts: func(ctx context.Context, year int) (map[int]int, error) {
			return map[int]int{1: 2, 6: 5, 12: 1}, nil
		},
		yearTotals: func(ctx context.Context, year int) (int, int, int, error) {
			return 8, 6, 20, nil
		},
	}

	s := NewReportService(repo)
	result, err := s.MonthlyReport(context.Background(), 2026)

	require.NoError(t, err)
	require.Len(t, result.Trend, 12)
	assert.Equal(t, report.MonthBucket{Month: "Jan", Count: 2}, result.Trend[0])
	assert.Equal(t, report.MonthBucket{Month: "Feb", Count: 0}, result.Trend[1])
	assert.Equal(t, report.MonthBucket{Month: "Jun", Count: 5}, result.Trend[5])
	assert.Equal(t, report.MonthBucket{Month: "Dec", Count: 1}, result.Trend[11])

	sum := 0
	for _, bucket := range result.Trend {
		sum += bucket.Count
	}
	assert.Equal(t, result.Summary.TotalRequests, sum)
}

func TestMonthlyReportSummaryRounding(t *testing.T) {
	repo := &fakeReportRepo{
		monthlyCounts: func(ctx context.Context, year int) (map[int]int, error) {
			return map[int]int{}, nil
		},
		yearTotals: func(ctx context.Context, year int) (int, int, int, error) {
			return 3, 2, 7, nil
		},
	}

	s := NewReportService(repo)
	result, err := s.MonthlyReport(context.Background(), 2026)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.TotalRequests)
	assert.Equal(t, 67, result.Summary.ApprovalRate)
	assert.Equal(t, 2.3, result.Summary.AvgDays)
}

func TestMonthlyReportEmptyYear(t *testing.T) {
	repo := &fakeReportRepo{
		monthlyCounts: func(ctx context.Context, year int) (map[int]int, error) {
			return map[int]int{}, nil
		},
		yearTotals: func(ctx context.Context, year int) (int, int, int, error) {
			return 0, 0, 0, nil
		},
	}

	s := NewReportService(repo)
	result, err := s.MonthlyReport(context.Background(), 2026)

	require.NoError(t, err)
	require.Len(t, result.Trend, 12)
	assert.Equal(t, 0, result.Summary.TotalRequests)
	assert.Equal(t, 0, result.Summary.ApprovalRate)
	assert.Equal(t, 0.0, result.Summary.AvgDays)
}
