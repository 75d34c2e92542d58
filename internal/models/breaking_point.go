package models

import (
	"time"

	"github.com/google/uuid"
)

// BreakingPointStatus is owned by the diagnostic workflow; the bounty engine
// only derives from it.
type BreakingPointStatus string

const (
	BreakingPointOpen       BreakingPointStatus = "open"
	BreakingPointInProgress BreakingPointStatus = "in_progress"
	BreakingPointResolved   BreakingPointStatus = "resolved"
)

// BreakingPoint is a diagnosed weakness with baseline/target/current
// measurements, produced by the coach diagnostic workflow. Read-only input.
type BreakingPoint struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PlayerID            uuid.UUID           `gorm:"type:uuid;not null;index" json:"player_id"`
	Category            string              `gorm:"type:varchar(50)" json:"category"`
	SpecificArea        string              `gorm:"type:varchar(255)" json:"specific_area"`
	BaselineMeasurement *float64            `json:"baseline_measurement,omitempty"`
	TargetMeasurement   *float64            `json:"target_measurement,omitempty"`
	CurrentMeasurement  *float64            `json:"current_measurement,omitempty"`
	Status              BreakingPointStatus `gorm:"type:varchar(20);default:'open'" json:"status"`
	CreatedAt           time.Time           `gorm:"not null;index:,sort:desc" json:"created_at"`
	ResolvedDate        *time.Time          `json:"resolved_date,omitempty"`
}

// TableName specifies the table name for GORM
func (BreakingPoint) TableName() string {
	return "breaking_points"
}

// Baseline returns the baseline measurement, zero when absent.
func (bp *BreakingPoint) Baseline() float64 {
	if bp.BaselineMeasurement != nil {
		return *bp.BaselineMeasurement
	}
	return 0
}

// Target returns the target measurement, zero when absent.
func (bp *BreakingPoint) Target() float64 {
	if bp.TargetMeasurement != nil {
		return *bp.TargetMeasurement
	}
	return 0
}

// Current returns the current measurement, falling back to the baseline and
// then zero, mirroring how snapshots are seeded before any follow-up test.
func (bp *BreakingPoint) Current() float64 {
	if bp.CurrentMeasurement != nil {
		return *bp.CurrentMeasurement
	}
	return bp.Baseline()
}
