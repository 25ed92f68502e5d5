package models

import "time"

// Module is one of the fixed curriculum units of the learnership. Reference
// data: created by the seed, never mutated by runtime logic. Number doubles
// as the delivery order.
type Module struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Number        int             `json:"number" gorm:"uniqueIndex;not null" validate:"required,min=1"`
	Name          string          `json:"name" gorm:"not null" validate:"required"`
	TotalCredits  int             `json:"total_credits" gorm:"not null"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UnitStandards []*UnitStandard `json:"unit_standards,omitempty" gorm:"foreignKey:ModuleID;references:ID"`
}

// UnitStandard is the smallest gradable unit of the curriculum. Code is the
// SAQA identifier; a few entries pair two legacy codes as "A/B".
type UnitStandard struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Title     string    `json:"title" gorm:"not null" validate:"required"`
	Credits   int       `json:"credits" gorm:"not null" validate:"required,min=1"`
	ModuleID  string    `json:"module_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Sequence  int       `json:"sequence" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	Module    *Module   `json:"module,omitempty" gorm:"foreignKey:ModuleID;references:ID"`
}
