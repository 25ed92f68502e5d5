package models

import "time"

// Student is a learner enrolled in exactly one group. Progress and
// TotalCreditsEarned are denormalized outputs of the progress recalculation;
// they are overwritten wholesale on every recompute and must never be treated
// as the source of truth.
type Student struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FirstName          string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName           string     `json:"last_name" gorm:"not null" validate:"required"`
	IDNumber           string     `json:"id_number" gorm:"uniqueIndex;not null" validate:"required"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Gender             Gender     `json:"gender,omitempty" gorm:"type:varchar(10)" validate:"omitempty,oneof=male female other"`
	GroupID            string     `json:"group_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	IsActive           bool       `json:"is_active" gorm:"default:true"`
	Progress           int        `json:"progress" gorm:"not null;default:0"`
	TotalCreditsEarned int        `json:"total_credits_earned" gorm:"not null;default:0"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Group              *Group     `json:"group,omitempty" gorm:"foreignKey:GroupID;references:ID"`
}

// FullName joins the student's names for display and logs.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
