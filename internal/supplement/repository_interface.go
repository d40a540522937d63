package supplement

import "context"

type Repository interface {
	IncrementScoops(ctx context.Context, memberID int, t Type) (*Usage, error)
	DecrementScoops(ctx context.Context, memberID int, t Type) (*Usage, error)
	SetManualCost(ctx context.Context, memberID int, t Type, amount float64) (*Usage, error)
	UsageFor(ctx context.Context, memberID int) (map[Type]Usage, error)
}
