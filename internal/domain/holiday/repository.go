package holiday

import (
	"context"
	"time"
)

// HolidayRepository - interface for the holidays table
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
	Upcoming(ctx context.Context, from time.Time, limit int) ([]Holiday, error)
}
