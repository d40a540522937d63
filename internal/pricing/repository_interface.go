package pricing

import (
	"context"

	"gym-application/internal/supplement"
)

type Repository interface {
	Get(ctx context.Context) (Config, error)
	SaveBase(ctx context.Context, cfg BaseConfig) error
	SaveSupplements(ctx context.Context, cfgs map[supplement.Type]SupplementConfig) error
	SaveCardio(ctx context.Context, cfg CardioConfig) error
	SavePT(ctx context.Context, cfg PTConfig) error
}
