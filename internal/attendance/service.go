package attendance

import (
	"context"
	"time"

	"gym-application/internal/api"
	"gym-application/internal/metrics"
)

type service struct {
	repo Repository
}

type Service interface {
	Mark(ctx context.Context, memberID int, date time.Time) (api.ActionResult, error)
	Unmark(ctx context.Context, memberID int, date time.Time) (api.ActionResult, error)
	DatesFor(ctx context.Context, memberID int) ([]time.Time, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error)
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Mark records the visit. Marking an already marked day is reported back as
// an unsuccessful result with a message, not an error: the caller shows the
// message and moves on.
func (s *service) Mark(ctx context.Context, memberID int, date time.Time) (api.ActionResult, error) {
	inserted, err := s.repo.Mark(ctx, memberID, date)
	if err != nil {
		metrics.RecordAttendance("mark", "error")
		return api.ActionResult{}, err
	}

	if !inserted {
		metrics.RecordAttendance("mark", "duplicate")
		return api.ActionResult{Success: false, Message: "Already marked for today"}, nil
	}

	metrics.RecordAttendance("mark", "ok")
	return api.ActionResult{Success: true, Message: "Attendance marked!"}, nil
}

func (s *service) Unmark(ctx context.Context, memberID int, date time.Time) (api.ActionResult, error) {
	removed, err := s.repo.Unmark(ctx, memberID, date)
	if err != nil {
		metrics.RecordAttendance("unmark", "error")
		return api.ActionResult{}, err
	}

	if !removed {
		metrics.RecordAttendance("unmark", "missing")
		return api.ActionResult{Success: false, Message: "Not marked for today"}, nil
	}

	metrics.RecordAttendance("unmark", "ok")
	return api.ActionResult{Success: true, Message: "Attendance unmarked!"}, nil
}

func (s *service) DatesFor(ctx context.Context, memberID int) ([]time.Time, error) {
	return s.repo.DatesFor(ctx, memberID)
}

func (s *service) StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	return s.repo.StatsByDay(ctx, from, to)
}
