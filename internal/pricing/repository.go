package pricing

import (
	"context"
	"encoding/json"
	"fmt"

	"gym-application/internal/supplement"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

type settingsRow struct {
	Category string `db:"category"`
	Settings []byte `db:"settings"`
}

// Get assembles the full pricing config. Categories with no stored row keep
// their defaults, so a fresh database prices exactly like the opening setup.
func (r *repository) Get(ctx context.Context) (Config, error) {
	cfg := DefaultConfig()

	var rows []settingsRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT category, settings
		FROM gym_settings
	`)
	if err != nil {
		return cfg, fmt.Errorf("failed to load gym settings: %w", err)
	}

	for _, row := range rows {
		switch row.Category {
		case CategoryBase:
			err = json.Unmarshal(row.Settings, &cfg.Base)
		case CategorySupplement:
			supplements := map[supplement.Type]SupplementConfig{}
			if err = json.Unmarshal(row.Settings, &supplements); err == nil {
				for t, sc := range supplements {
					cfg.Supplements[t] = sc
				}
			}
		case CategoryCardio:
			err = json.Unmarshal(row.Settings, &cfg.Cardio)
		case CategoryPT:
			err = json.Unmarshal(row.Settings, &cfg.PT)
		}
		if err != nil {
			return cfg, fmt.Errorf("corrupt settings for category %q: %w", row.Category, err)
		}
	}

	return cfg, nil
}

func (r *repository) save(ctx context.Context, category string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO gym_settings (category, settings)
		VALUES ($1, $2)
		ON CONFLICT (category) DO UPDATE SET settings = EXCLUDED.settings
	`, category, data)
	return err
}

func (r *repository) SaveBase(ctx context.Context, cfg BaseConfig) error {
	return r.save(ctx, CategoryBase, cfg)
}

func (r *repository) SaveSupplements(ctx context.Context, cfgs map[supplement.Type]SupplementConfig) error {
	return r.save(ctx, CategorySupplement, cfgs)
}

func (r *repository) SaveCardio(ctx context.Context, cfg CardioConfig) error {
	return r.save(ctx, CategoryCardio, cfg)
}

func (r *repository) SavePT(ctx context.Context, cfg PTConfig) error {
	return r.save(ctx, CategoryPT, cfg)
}
