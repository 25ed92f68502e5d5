package models

// AssessmentType defines the kind of evaluation an assessment records.
type AssessmentType string

const (
	Formative  AssessmentType = "FORMATIVE"
	Summative  AssessmentType = "SUMMATIVE"
	Integrated AssessmentType = "INTEGRATED"
)

// IsSummative reports whether the type counts as a certifying assessment.
func (t AssessmentType) IsSummative() bool {
	return t == Summative || t == Integrated
}

// Valid reports whether t is one of the known assessment types.
func (t AssessmentType) Valid() bool {
	return t == Formative || t == Summative || t == Integrated
}

// AssessmentResult defines the outcome of a marked assessment.
// An empty string means the assessment has never been graded.
type AssessmentResult string

const (
	Competent       AssessmentResult = "COMPETENT"
	NotYetCompetent AssessmentResult = "NOT_YET_COMPETENT"
	Pending         AssessmentResult = "PENDING"
)

// Valid reports whether r is one of the known results.
func (r AssessmentResult) Valid() bool {
	return r == Competent || r == NotYetCompetent || r == Pending
}

// UnitStandardStatus is the group-level completion state of a unit standard.
type UnitStandardStatus string

const (
	StatusNotStarted    UnitStandardStatus = "not-started"
	StatusInProgress    UnitStandardStatus = "in-progress"
	StatusSummativeDone UnitStandardStatus = "summative-done"
	StatusComplete      UnitStandardStatus = "complete"
)

// ScheduleStatus classifies a group against its rollout plan.
type ScheduleStatus string

const (
	ScheduleAhead   ScheduleStatus = "ahead"
	ScheduleOnTrack ScheduleStatus = "on-track"
	ScheduleBehind  ScheduleStatus = "behind"
)

// GroupStatus defines the lifecycle state of a training group.
type GroupStatus string

const (
	GroupActive    GroupStatus = "active"
	GroupInactive  GroupStatus = "inactive"
	GroupCompleted GroupStatus = "completed"
)

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Valid reports whether s is one of the known attendance states.
func (s AttendanceStatus) Valid() bool {
	return s == Present || s == Absent || s == Late || s == Excused
}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
