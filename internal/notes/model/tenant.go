package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription plans. The only transition is FREE -> PRO; there is no
// downgrade path.
const (
	PlanFree = "FREE"
	PlanPro  = "PRO"
)

// Tenant represents an isolated customer account. The tenant is the
// sole isolation boundary: every resource row carries a tenant_id and
// every read/write is filtered by it.
type Tenant struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Slug      string    `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Plan      string    `json:"plan" gorm:"type:varchar(20);not null;default:'FREE'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
