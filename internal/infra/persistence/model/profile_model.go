// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Both owner_id and username carry unique indexes; the
// database is the authoritative arbiter for both uniqueness invariants.
type ProfileModel struct {
	ID          uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID                             `gorm:"type:uuid;uniqueIndex:idx_profiles_owner;not null"`
	Username    string                                `gorm:"type:varchar(20);uniqueIndex:idx_profiles_username;not null"`
	Email       string                                `gorm:"type:varchar(255);not null"`
	FullName    string                                `gorm:"type:varchar(100)"`
	Headline    string                                `gorm:"type:varchar(150)"`
	Bio         string                                `gorm:"type:text"`
	Skills      datatypes.JSONSlice[string]           `gorm:"type:jsonb"`
	Projects    datatypes.JSON                        `gorm:"type:jsonb"`
	Experience  datatypes.JSON                        `gorm:"type:jsonb"`
	Education   datatypes.JSON                        `gorm:"type:jsonb"`
	SocialLinks datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	Theme       string                                `gorm:"type:varchar(50);default:minimal"`
	Published   bool                                  `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
