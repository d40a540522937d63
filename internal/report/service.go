package report

import (
	"context"

	"gym-application/internal/attendance"
	"gym-application/internal/member"

	"github.com/jmoiron/sqlx"
)

type Service interface {
	ForPeriod(ctx context.Context, period string) (Report, error)
}

type service struct {
	members    member.Repository
	attendance attendance.Repository
}

func NewService(db *sqlx.DB) Service {
	return &service{
		members:    member.NewRepository(db),
		attendance: attendance.NewRepository(db),
	}
}

func newService(members member.Repository, ledger attendance.Repository) Service {
	return &service{members: members, attendance: ledger}
}

func (s *service) ForPeriod(ctx context.Context, period string) (Report, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return Report{}, err
	}

	byMember, err := s.attendance.AllByMember(ctx)
	if err != nil {
		return Report{}, err
	}

	return Build(period, members, byMember), nil
}
