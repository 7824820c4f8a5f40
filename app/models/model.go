// Package models holds fields shared by all database models.
package models

import "time"

// CommonTimestampsField adds created_at / updated_at to a model.
type CommonTimestampsField struct {
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"column:updated_at;index" json:"updated_at,omitempty"`
}
