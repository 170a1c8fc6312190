package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold within their tenant.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// User represents the user model stored in the database. A user belongs
// to exactly one tenant.
type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Role         string    `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`
	TenantID     string    `json:"tenant_id" gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// BeforeCreate assigns a UUID primary key
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
