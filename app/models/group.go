package models

import "time"

// Group is a cohort of learners moving through the curriculum together. The
// rollout plan is stored against the group as an opaque JSON blob; see
// RolloutPlan for its shape.
type Group struct {
	ID            string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name          string       `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	StartDate     time.Time    `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate       time.Time    `json:"end_date" gorm:"not null;type:date" validate:"required"`
	Status        GroupStatus  `json:"status" gorm:"not null;default:'active'" validate:"required,oneof=active inactive completed"`
	FacilitatorID *string      `json:"facilitator_id,omitempty" gorm:"index;type:uuid"`
	RolloutPlan   *RolloutPlan `json:"rollout_plan,omitempty" gorm:"type:jsonb"`
	StudentCount  int          `json:"student_count" gorm:"-"`
	CreatedAt     time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time   `json:"deleted_at,omitempty" gorm:"index"`
	Facilitator   *User        `json:"facilitator,omitempty" gorm:"foreignKey:FacilitatorID;references:ID"`
	Students      []*Student   `json:"students,omitempty" gorm:"foreignKey:GroupID;references:ID"`
}
