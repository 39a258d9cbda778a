package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/report"
)

type ReportService struct {
	report.ReportRepository
}

func NewReportService(reportRepository report.ReportRepository) *ReportService {
	return &ReportService{
		ReportRepository: reportRepository,
	}
}

func (s *ReportService) EmployeeReport(ctx context.Context, department string, year int) ([]report.EmployeeRow, error) {
	return s.ReportRepository.EmployeeReport(ctx, department, year)
}

func (s *ReportService) DepartmentReport(ctx context.Context) ([]report.DepartmentRow, error) {
	return s.ReportRepository.DepartmentReport(ctx)
}

// MonthlyReport builds the submission trend for a year. Every month
// appears in order, zero-filled when nothing was submitted.
func (s *ReportService) MonthlyReport(ctx context.Context, year int) (report.MonthlyReport, error) {
	counts, err := s.ReportRepository.MonthlyCounts(ctx, year)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get monthly counts: %w", err)
	}

	trend := make([]report.MonthBucket, 0, 12)
	for m := time.January; m <= time.December; m++ {
		trend = append(trend, report.MonthBucket{
			Month: m.String()[:3],
			Count: counts[int(m)],
		})
	}

	total, approved, totalDays, err := s.ReportRepository.YearTotals(ctx, year)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get year totals: %w", err)
	}

	summary := report.YearSummary{TotalRequests: total}
	if total > 0 {
		summary.ApprovalRate = int(math.Round(float64(approved) / float64(total) * 100))
		summary.AvgDays = math.Round(float64(totalDays)/float64(total)*10) / 10
	}

	return report.MonthlyReport{Trend: trend, Summary: summary}, nil
}
