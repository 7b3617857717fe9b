package domain

// StatKey identifies one posterior: (tenant, context, arm) for the single
// mode, plus a position (1..K) for the ranked mode. Single-mode rows are
// stored with Position 0, so the two modes never touch the same rows.
type StatKey struct {
	TenantID   string
	ContextKey string
	ArmID      string
	Position   int
}

// ArmStats is the core mutable entity: a pulls/rewards counter pair per key.
// rewards <= pulls is the intended relationship but is not enforced on
// write; the selector clamps the Beta shape instead.
type ArmStats struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID   string `gorm:"column:tenant_id;size:50;not null;uniqueIndex:idx_arm_stats_key" json:"tenant_id"`
	ContextKey string `gorm:"column:context_key;size:100;not null;uniqueIndex:idx_arm_stats_key" json:"context_key"`
	ArmID      string `gorm:"column:arm_id;size:50;not null;uniqueIndex:idx_arm_stats_key" json:"arm_id"`
	Position   int    `gorm:"column:position;not null;default:0;uniqueIndex:idx_arm_stats_key" json:"position"`
	Pulls      int64  `gorm:"column:pulls;not null;default:0" json:"pulls"`
	Rewards    int64  `gorm:"column:rewards;not null;default:0" json:"rewards"`
}

func (ArmStats) TableName() string {
	return "arm_stats"
}

func (s ArmStats) Key() StatKey {
	return StatKey{
		TenantID:   s.TenantID,
		ContextKey: s.ContextKey,
		ArmID:      s.ArmID,
		Position:   s.Position,
	}
}

// Recommendation is the single-mode response payload.
type Recommendation struct {
	ArmID string `json:"arm_id"`
	Name  string `json:"name"`
}

// RankedRecommendation is one slot of the ranked-mode response payload.
type RankedRecommendation struct {
	ArmID    string `json:"arm_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}
