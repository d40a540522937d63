package billing

import (
	"context"
	"errors"

	"gym-application/internal/member"
	"gym-application/internal/metrics"
	"gym-application/internal/pricing"
	"gym-application/internal/subscription"
	"gym-application/internal/supplement"

	"github.com/jmoiron/sqlx"
)

type Service interface {
	InvoiceFor(ctx context.Context, memberID int) (Invoice, error)
}

type service struct {
	members     member.Repository
	pricingRepo pricing.Repository
	subs        subscription.Repository
	usage       supplement.Repository
}

func NewService(db *sqlx.DB) Service {
	return &service{
		members:     member.NewRepository(db),
		pricingRepo: pricing.NewRepository(db),
		subs:        subscription.NewRepository(db),
		usage:       supplement.NewRepository(db),
	}
}

func newService(members member.Repository, pricingRepo pricing.Repository, subs subscription.Repository, usage supplement.Repository) Service {
	return &service{members: members, pricingRepo: pricingRepo, subs: subs, usage: usage}
}

// InvoiceFor gathers everything the engine needs and computes the invoice.
// A missing member yields the empty invoice rather than an error.
func (s *service) InvoiceFor(ctx context.Context, memberID int) (Invoice, error) {
	cfg, err := s.pricingRepo.Get(ctx)
	if err != nil {
		return Invoice{}, err
	}

	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return ComputeInvoice(nil, cfg, Subscriptions{}, nil), nil
		}
		return Invoice{}, err
	}

	var plans Subscriptions
	plans.Cardio, err = s.activePlan(ctx, memberID, subscription.CategoryCardio)
	if err != nil {
		return Invoice{}, err
	}
	plans.PT, err = s.activePlan(ctx, memberID, subscription.CategoryPT)
	if err != nil {
		return Invoice{}, err
	}

	usage, err := s.usage.UsageFor(ctx, memberID)
	if err != nil {
		return Invoice{}, err
	}

	metrics.RecordInvoice()
	return ComputeInvoice(m, cfg, plans, usage), nil
}

func (s *service) activePlan(ctx context.Context, memberID int, category subscription.Category) (*subscription.Subscription, error) {
	sub, err := s.subs.Get(ctx, memberID, category)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}
