package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/holiday"
)

type HolidayService struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) *HolidayService {
	return &HolidayService{
		HolidayRepository: holidayRepository,
	}
}

func (s *HolidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	holidayType := holiday.Type(req.Type)
	if req.Type == "" {
		holidayType = holiday.TypePublic
	}

	return s.HolidayRepository.Create(ctx, holiday.Holiday{
		Name: req.Name,
		Date: date,
		Type: holidayType,
	})
}

// List returns holidays for the given year, or every holiday when year
// is zero.
func (s *HolidayService) List(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return s.HolidayRepository.List(ctx, year)
}

func (s *HolidayService) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}
