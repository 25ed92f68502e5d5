package services

import (
	"fmt"
	"sort"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

// GeneratePlan computes a fresh rollout plan for a group. Modules are walked
// in module-number order; each module starts the day after the previous one
// ends, so the ranges are contiguous and never overlap. Duration weights are
// applied with calendar-aware arithmetic (months first, then days).
//
// When the computed plan runs past the group's end date the plan is still
// returned in full; the overrun comes back as a warning for the caller to
// surface, never an error.
func GeneratePlan(group *models.Group, weights []config.ModuleWeight, curriculum []*models.Module) (*models.RolloutPlan, []string) {
	plan := &models.RolloutPlan{
		GroupName:   group.Name,
		StartDate:   models.NewPlanDate(group.StartDate),
		NumLearners: group.StudentCount,
	}

	byNumber := make(map[int]*models.Module, len(curriculum))
	for _, m := range curriculum {
		byNumber[m.Number] = m
	}

	ordered := make([]config.ModuleWeight, len(weights))
	copy(ordered, weights)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ModuleNumber < ordered[j].ModuleNumber })

	var warnings []string
	cursor := plan.StartDate
	for i, w := range ordered {
		start := cursor
		if i > 0 {
			start = cursor.AddDays(1)
		}
		end := start.AddMonthsDays(w.Months, w.ExtraDays)

		mp := &models.ModulePlan{
			ModuleNumber: w.ModuleNumber,
			StartDate:    start,
			EndDate:      end,
		}

		if m, ok := byNumber[w.ModuleNumber]; ok {
			mp.UnitStandards = scheduleUnitStandards(m.UnitStandards, start, end)
		} else {
			warnings = append(warnings, fmt.Sprintf("module %d has no curriculum entry; scheduled without unit standards", w.ModuleNumber))
		}

		plan.Modules = append(plan.Modules, mp)
		cursor = end
	}

	plan.EndDate = cursor
	if !group.EndDate.IsZero() && plan.EndDate.After(models.NewPlanDate(group.EndDate)) {
		warnings = append(warnings, fmt.Sprintf("rollout plan ends %s, after the group end date %s", plan.EndDate, models.NewPlanDate(group.EndDate)))
	}
	return plan, warnings
}

// scheduleUnitStandards splits a module's date range into one contiguous
// sub-range per unit standard, in delivery sequence. The assessing date falls
// a few days before each sub-range ends and the summative date on the end
// itself, keeping start <= assessing <= summative <= end.
func scheduleUnitStandards(standards []*models.UnitStandard, moduleStart, moduleEnd models.PlanDate) []*models.UnitStandardPlan {
	n := len(standards)
	if n == 0 {
		return nil
	}

	span := moduleStart.DaysUntil(moduleEnd)
	if span < 0 {
		span = 0
	}

	plans := make([]*models.UnitStandardPlan, 0, n)
	cursor := moduleStart
	for i, us := range standards {
		start := cursor
		if i > 0 {
			start = cursor.AddDays(1)
		}
		end := moduleStart.AddDays((i + 1) * span / n)
		if i == n-1 {
			end = moduleEnd
		}
		if end.Before(start) {
			end = start
		}

		assessing := end.AddDays(-3)
		if assessing.Before(start) {
			assessing = start
		}

		plans = append(plans, &models.UnitStandardPlan{
			ID:            us.ID,
			Code:          us.Code,
			Title:         us.Title,
			StartDate:     start,
			EndDate:       end,
			AssessingDate: assessing,
			SummativeDate: end,
			Credits:       us.Credits,
		})
		cursor = end
	}
	return plans
}

// RefreshUnitStandardSet re-maps an existing plan onto a new curriculum
// definition without regenerating dates. Unit standards are matched by code:
// surviving codes keep their facilitator-entered dates, new codes come in as
// date-less placeholders, and codes dropped from the curriculum disappear.
// Credits are always realigned to the curriculum, which stays authoritative.
func RefreshUnitStandardSet(existing *models.RolloutPlan, curriculum []*models.Module) *models.RolloutPlan {
	refreshed := &models.RolloutPlan{}
	if existing != nil {
		refreshed.GroupName = existing.GroupName
		refreshed.StartDate = existing.StartDate
		refreshed.EndDate = existing.EndDate
		refreshed.NumLearners = existing.NumLearners
	}

	oldByCode := make(map[string]*models.UnitStandardPlan)
	if existing != nil {
		for _, mp := range existing.Modules {
			for _, usp := range mp.UnitStandards {
				oldByCode[usp.Code] = usp
			}
		}
	}

	for _, m := range curriculum {
		mp := &models.ModulePlan{ModuleNumber: m.Number}
		if existing != nil {
			if old := existing.FindModule(m.Number); old != nil {
				mp.StartDate = old.StartDate
				mp.EndDate = old.EndDate
			}
		}

		for _, us := range m.UnitStandards {
			usp := &models.UnitStandardPlan{
				ID:      us.ID,
				Code:    us.Code,
				Title:   us.Title,
				Credits: us.Credits,
			}
			if old, ok := oldByCode[us.Code]; ok {
				usp.StartDate = old.StartDate
				usp.EndDate = old.EndDate
				usp.AssessingDate = old.AssessingDate
				usp.SummativeDate = old.SummativeDate
			}
			mp.UnitStandards = append(mp.UnitStandards, usp)
		}
		refreshed.Modules = append(refreshed.Modules, mp)
	}
	return refreshed
}

// DistributeLessonDays spreads content objectives over the teaching days of a
// unit standard's date range, skipping weekends. Best effort: with more
// objectives than weekdays the remainder wraps onto the same days round-robin.
func DistributeLessonDays(usp *models.UnitStandardPlan, objectives []string) []*models.LessonSession {
	if len(objectives) == 0 || !usp.StartDate.Valid() || !usp.EndDate.Valid() {
		return nil
	}

	var weekdays []models.PlanDate
	for d := usp.StartDate; !d.After(usp.EndDate); d = d.AddDays(1) {
		wd := d.Time.Weekday()
		if wd != 0 && wd != 6 {
			weekdays = append(weekdays, d)
		}
	}
	if len(weekdays) == 0 {
		return nil
	}

	sessions := make([]*models.LessonSession, 0, len(objectives))
	if len(objectives) <= len(weekdays) {
		// Spread the objectives evenly across the available days.
		for i, obj := range objectives {
			day := weekdays[i*len(weekdays)/len(objectives)]
			sessions = append(sessions, &models.LessonSession{
				UnitStandardCode: usp.Code,
				Date:             day,
				Objective:        obj,
			})
		}
		return sessions
	}

	for i, obj := range objectives {
		sessions = append(sessions, &models.LessonSession{
			UnitStandardCode: usp.Code,
			Date:             weekdays[i%len(weekdays)],
			Objective:        obj,
		})
	}
	return sessions
}
