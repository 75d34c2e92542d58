package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender codes follow the federation registry: M (male), K (female).
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "K"
)

// Player represents a registered athlete. Only the fields the insights
// builders read are mapped; the full profile lives in the platform service.
type Player struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Gender    Gender    `gorm:"type:varchar(1);default:'M'" json:"gender"`
	Category  string    `gorm:"type:varchar(50)" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Player) TableName() string {
	return "players"
}

// NormalizedGender maps any unknown code to M, matching how the reference
// profiles are partitioned.
func (p *Player) NormalizedGender() Gender {
	if p != nil && p.Gender == GenderFemale {
		return GenderFemale
	}
	return GenderMale
}
