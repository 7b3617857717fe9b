package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartMenu/business/bandit"
	"smartMenu/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository struct {
	DB *gorm.DB
}

var _ bandit.StatsRepository = (*StatsRepository)(nil)

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// GetOrCreate inserts a zeroed row for the key unless one exists, then reads
// the authoritative row back. The insert uses ON CONFLICT DO NOTHING against
// the unique index over the full key tuple, so two concurrent callers racing
// on a fresh key both succeed and observe the same single row.
func (r *StatsRepository) GetOrCreate(ctx context.Context, key domain.StatKey) (domain.ArmStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.ArmStats{}, fmt.Errorf("context error: %w", err)
	}

	row := domain.ArmStats{
		TenantID:   key.TenantID,
		ContextKey: key.ContextKey,
		ArmID:      key.ArmID,
		Position:   key.Position,
	}

	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "tenant_id"},
			{Name: "context_key"},
			{Name: "arm_id"},
			{Name: "position"},
		},
		DoNothing: true,
	}).Create(&row).Error; err != nil {
		return domain.ArmStats{}, fmt.Errorf("upsert arm_stats: %w", err)
	}

	return r.Find(ctx, key)
}

func (r *StatsRepository) Find(ctx context.Context, key domain.StatKey) (domain.ArmStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.ArmStats{}, fmt.Errorf("context error: %w", err)
	}

	var row domain.ArmStats
	err := r.DB.WithContext(ctx).
		Where(r.keyWhere(key)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ArmStats{}, domain.ErrStatsNotFound
	}
	if err != nil {
		return domain.ArmStats{}, fmt.Errorf("query arm_stats: %w", err)
	}

	return row, nil
}

// IncrementPulls is a single-statement expression update, never a
// read-modify-write in the request, so concurrent exposures on the same key
// cannot lose updates.
func (r *StatsRepository) IncrementPulls(ctx context.Context, key domain.StatKey) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.incrementColumn(r.DB.WithContext(ctx), key, "pulls")
}

// IncrementPullsBatch commits every increment inside one transaction; a
// failure on any key rolls the whole exposure back.
func (r *StatsRepository) IncrementPullsBatch(ctx context.Context, keys []domain.StatKey) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range keys {
			if err := r.incrementColumn(tx, key, "pulls"); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StatsRepository) IncrementRewards(ctx context.Context, key domain.StatKey) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.incrementColumn(r.DB.WithContext(ctx), key, "rewards")
}

func (r *StatsRepository) incrementColumn(db *gorm.DB, key domain.StatKey, column string) error {
	res := db.Model(&domain.ArmStats{}).
		Where(r.keyWhere(key)).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("increment %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStatsNotFound
	}

	return nil
}

func (r *StatsRepository) keyWhere(key domain.StatKey) map[string]any {
	return map[string]any{
		"tenant_id":   key.TenantID,
		"context_key": key.ContextKey,
		"arm_id":      key.ArmID,
		"position":    key.Position,
	}
}
