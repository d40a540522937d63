package subscription

import "context"

type Repository interface {
	Assign(ctx context.Context, sub Subscription) (*Subscription, error)
	Get(ctx context.Context, memberID int, category Category) (*Subscription, error)
	Remove(ctx context.Context, memberID int, category Category) error
	ListActive(ctx context.Context, category Category) ([]ActiveSubscription, error)
}
