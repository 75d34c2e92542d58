package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Test number groups used across the builders. Tests 1-4 measure distance,
// 5-7 club/ball speed, 8-11 approach PEI at 25/50/75/100m, 15-16 putting
// make rates at 3/6m, 17 chipping and 18 bunker PEI at 15m.
var (
	SGTestNumbers        = []int{8, 9, 10, 11, 15, 16, 17, 18}
	DistanceTestNumbers  = []int{1, 2, 3, 4}
	SpeedTestNumbers     = []int{5, 6, 7}
	ApproachTestNumbers  = []int{8, 9, 10, 11}
	PuttingTestNumbers   = []int{15, 16}
	ShortGameTestNumbers = []int{17, 18}
)

// TestResult is one measured outcome of a standardized test protocol.
// Rows are produced by the test-registration workflow and are read-only here.
type TestResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_player_test_date,priority:1" json:"player_id"`
	TestNumber int       `gorm:"not null;index" json:"test_number"`
	// Value is the test's headline number (meters, mph, PEI %, make rate %).
	Value float64 `gorm:"not null" json:"value"`
	// PEI carries the proximity efficiency index for tests that record one
	// alongside a raw value; nil when the protocol has no PEI component.
	PEI *float64 `json:"pei,omitempty"`
	// ShotValues keeps the per-shot measurements the headline value was
	// averaged from, when the protocol records individual shots.
	ShotValues pq.Float64Array `gorm:"type:float8[]" json:"shot_values,omitempty"`
	TestDate   time.Time       `gorm:"not null;index:idx_player_test_date,priority:2,sort:desc" json:"test_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TableName specifies the table name for GORM
func (TestResult) TableName() string {
	return "test_results"
}

// EffectiveValue prefers the PEI measurement when present, falling back to
// the raw value. Accuracy scoring reads tests 8-11 through this.
func (r *TestResult) EffectiveValue() float64 {
	if r.PEI != nil {
		return *r.PEI
	}
	return r.Value
}
