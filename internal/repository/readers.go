// Package repository defines the narrow read-only contracts the insights
// builders consume, plus their GORM implementations. Builders never touch
// the database directly, so tests can swap in in-memory doubles.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/akgolfgroup/player-insights/internal/models"
	"github.com/akgolfgroup/player-insights/pkg/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrPlayerNotFound is returned when a player id resolves to no row.
var ErrPlayerNotFound = errors.New("repository: player not found")

// TestResultReader fetches a player's test results newest-first. A nil or
// empty testNumbers slice means all tests; limit <= 0 means no limit.
type TestResultReader interface {
	ByPlayer(ctx context.Context, playerID uuid.UUID, testNumbers []int, limit int) ([]models.TestResult, error)
}

// PlayerReader resolves the player fields the builders need.
type PlayerReader interface {
	ByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error)
}

// BreakingPointReader fetches a player's breaking points newest-first.
type BreakingPointReader interface {
	ByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.BreakingPoint, error)
}

// Readers bundles the three read contracts for injection.
type Readers struct {
	TestResults    TestResultReader
	Players        PlayerReader
	BreakingPoints BreakingPointReader
}

// GormTestResultReader reads test results through GORM.
type GormTestResultReader struct {
	db *database.DB
}

func NewGormTestResultReader(db *database.DB) *GormTestResultReader {
	return &GormTestResultReader{db: db}
}

func (r *GormTestResultReader) ByPlayer(ctx context.Context, playerID uuid.UUID, testNumbers []int, limit int) ([]models.TestResult, error) {
	query := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("test_date DESC")

	if len(testNumbers) > 0 {
		query = query.Where("test_number IN ?", testNumbers)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var results []models.TestResult
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch test results: %w", err)
	}
	return results, nil
}

// GormPlayerReader reads players through GORM.
type GormPlayerReader struct {
	db *database.DB
}

func NewGormPlayerReader(db *database.DB) *GormPlayerReader {
	return &GormPlayerReader{db: db}
}

func (r *GormPlayerReader) ByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).
		Select("id", "gender", "category").
		First(&player, "id = ?", playerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}
	return &player, nil
}

// GormBreakingPointReader reads breaking points through GORM.
type GormBreakingPointReader struct {
	db *database.DB
}

func NewGormBreakingPointReader(db *database.DB) *GormBreakingPointReader {
	return &GormBreakingPointReader{db: db}
}

func (r *GormBreakingPointReader) ByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.BreakingPoint, error) {
	var points []models.BreakingPoint
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch breaking points: %w", err)
	}
	return points, nil
}

// NewGormReaders builds the full reader bundle on one connection.
func NewGormReaders(db *database.DB) Readers {
	return Readers{
		TestResults:    NewGormTestResultReader(db),
		Players:        NewGormPlayerReader(db),
		BreakingPoints: NewGormBreakingPointReader(db),
	}
}
