package students

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

func existingStudent() *models.Student {
	return &models.Student{
		ID:        "stu-1",
		FirstName: "Sipho",
		LastName:  "Dlamini",
		IDNumber:  "9001015009087",
		Email:     "sipho@example.com",
		Phone:     "0821234567",
		Gender:    models.Male,
		GroupID:   "grp-1",
		IsActive:  true,
	}
}

func TestApplyStudentUpdatePartialKeepsFields(t *testing.T) {
	// A group move alone must not touch names, id number or active state.
	updated := applyStudentUpdate(existingStudent(), studentUpdateRequest{GroupID: "grp-2"})

	assert.Equal(t, "grp-2", updated.GroupID)
	assert.Equal(t, "Sipho", updated.FirstName)
	assert.Equal(t, "Dlamini", updated.LastName)
	assert.Equal(t, "9001015009087", updated.IDNumber)
	assert.Equal(t, "sipho@example.com", updated.Email)
	assert.True(t, updated.IsActive)
}

func TestApplyStudentUpdateOmittedIsActiveStaysTrue(t *testing.T) {
	updated := applyStudentUpdate(existingStudent(), studentUpdateRequest{FirstName: "Thabo"})

	assert.Equal(t, "Thabo", updated.FirstName)
	assert.True(t, updated.IsActive)
}

func TestApplyStudentUpdateExplicitDeactivate(t *testing.T) {
	inactive := false
	updated := applyStudentUpdate(existingStudent(), studentUpdateRequest{IsActive: &inactive})

	assert.False(t, updated.IsActive)
	assert.Equal(t, "Sipho", updated.FirstName)
}

func TestApplyStudentUpdateDoesNotMutateExisting(t *testing.T) {
	existing := existingStudent()
	applyStudentUpdate(existing, studentUpdateRequest{FirstName: "Thabo", GroupID: "grp-2"})

	assert.Equal(t, "Sipho", existing.FirstName)
	assert.Equal(t, "grp-1", existing.GroupID)
}

func TestApplyStudentUpdateFullReplace(t *testing.T) {
	active := true
	updated := applyStudentUpdate(existingStudent(), studentUpdateRequest{
		FirstName: "Zanele",
		LastName:  "Mokoena",
		IDNumber:  "9505230012083",
		Email:     "zanele@example.com",
		Phone:     "0839876543",
		Gender:    models.Female,
		GroupID:   "grp-3",
		IsActive:  &active,
	})

	assert.Equal(t, "Zanele", updated.FirstName)
	assert.Equal(t, "Mokoena", updated.LastName)
	assert.Equal(t, "9505230012083", updated.IDNumber)
	assert.Equal(t, models.Female, updated.Gender)
	assert.Equal(t, "grp-3", updated.GroupID)
	assert.True(t, updated.IsActive)
}
