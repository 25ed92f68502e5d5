package models

import "time"

// Assessment records one evaluation attempt of a student against a unit
// standard. Several assessments may exist per (student, unit standard) pair:
// formative plus summative, and re-attempts after NOT_YET_COMPETENT.
// AssessedAt is set only once the result leaves PENDING.
type Assessment struct {
	ID             string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID      string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	UnitStandardID *string          `json:"unit_standard_id,omitempty" gorm:"index;type:uuid"`
	Type           AssessmentType   `json:"type" gorm:"not null;type:varchar(12)" validate:"required,oneof=FORMATIVE SUMMATIVE INTEGRATED"`
	Result         AssessmentResult `json:"result,omitempty" gorm:"type:varchar(20)" validate:"omitempty,oneof=COMPETENT NOT_YET_COMPETENT PENDING"`
	Score          *float64         `json:"score,omitempty" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0"`
	DueDate        *time.Time       `json:"due_date,omitempty" gorm:"type:date"`
	AssessedAt     *time.Time       `json:"assessed_at,omitempty" gorm:"type:date"`
	MarkedBy       *string          `json:"marked_by,omitempty" gorm:"type:uuid"`
	CreatedAt      time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time       `json:"deleted_at,omitempty" gorm:"index"`
	Student        *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	UnitStandard   *UnitStandard    `json:"unit_standard,omitempty" gorm:"foreignKey:UnitStandardID;references:ID"`
	MarkedByUser   *User            `json:"marked_by_user,omitempty" gorm:"foreignKey:MarkedBy;references:ID"`
}

// IsCompetent reports whether the assessment has been marked competent.
func (a *Assessment) IsCompetent() bool {
	return a.Result == Competent
}
