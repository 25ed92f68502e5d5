package models

// RolloutPlan is the computed calendar schedule for a group, persisted as a
// jsonb blob on the groups table. Regeneration replaces the blob wholesale.
// Module ranges are contiguous in module order: each module starts the day
// after the previous one ends.
type RolloutPlan struct {
	GroupName   string        `json:"groupName"`
	StartDate   PlanDate      `json:"startDate"`
	EndDate     PlanDate      `json:"endDate"`
	NumLearners int           `json:"numLearners"`
	Modules     []*ModulePlan `json:"modules"`
}

// ModulePlan is the scheduled window for one curriculum module.
type ModulePlan struct {
	ModuleNumber  int                 `json:"moduleNumber"`
	StartDate     PlanDate            `json:"startDate"`
	EndDate       PlanDate            `json:"endDate"`
	UnitStandards []*UnitStandardPlan `json:"unitStandards"`
}

// UnitStandardPlan is the scheduled window for one unit standard within its
// module. Credits are copied from the curriculum for display; the curriculum
// record stays authoritative for any credit arithmetic. AssessingDate is when
// formative work is due, SummativeDate when the certifying assessment is due.
type UnitStandardPlan struct {
	ID            string   `json:"id"`
	Code          string   `json:"code"`
	Title         string   `json:"title"`
	StartDate     PlanDate `json:"startDate"`
	EndDate       PlanDate `json:"endDate"`
	SummativeDate PlanDate `json:"summativeDate"`
	AssessingDate PlanDate `json:"assessingDate"`
	Credits       int      `json:"credits"`
}

// FindModule returns the plan entry for a module number, or nil.
func (p *RolloutPlan) FindModule(number int) *ModulePlan {
	for _, mp := range p.Modules {
		if mp.ModuleNumber == number {
			return mp
		}
	}
	return nil
}

// LessonSession is one generated teaching day for a unit standard. Sessions
// are a best-effort scheduling aid derived from the plan, not authoritative
// data; regenerating a plan regenerates them.
type LessonSession struct {
	UnitStandardCode string   `json:"unit_standard_code"`
	Date             PlanDate `json:"date"`
	Objective        string   `json:"objective"`
}
