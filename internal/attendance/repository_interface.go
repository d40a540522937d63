package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Mark(ctx context.Context, memberID int, date time.Time) (bool, error)
	Unmark(ctx context.Context, memberID int, date time.Time) (bool, error)
	DatesFor(ctx context.Context, memberID int) ([]time.Time, error)
	CountInPeriod(ctx context.Context, memberID int, yearMonth string) (int, error)
	AllByMember(ctx context.Context) (map[int][]time.Time, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error)
}
