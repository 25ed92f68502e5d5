package services

import (
	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

// ReconcileCurriculum compares a stored rollout plan against the curriculum
// reference data and reports the mismatches in one pass. The hot-path
// aggregators silently skip unknown codes; this report is where they get
// surfaced, once, instead of on every read.
func ReconcileCurriculum(groupID string, plan *models.RolloutPlan, curriculum []*models.Module) *models.ReconciliationReport {
	report := &models.ReconciliationReport{
		GroupID:          groupID,
		UnknownPlanCodes: []string{},
		MissingFromPlan:  []string{},
	}

	known := make(map[string]bool)
	for _, m := range curriculum {
		for _, us := range m.UnitStandards {
			known[us.Code] = true
		}
	}

	inPlan := make(map[string]bool)
	if plan != nil {
		for _, mp := range plan.Modules {
			for _, usp := range mp.UnitStandards {
				inPlan[usp.Code] = true
				if !known[usp.Code] {
					report.UnknownPlanCodes = append(report.UnknownPlanCodes, usp.Code)
				}
			}
		}
	}

	for _, m := range curriculum {
		for _, us := range m.UnitStandards {
			if !inPlan[us.Code] {
				report.MissingFromPlan = append(report.MissingFromPlan, us.Code)
			}
		}
	}

	report.Clean = len(report.UnknownPlanCodes) == 0 && len(report.MissingFromPlan) == 0
	return report
}
