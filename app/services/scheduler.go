package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/sirashofficial/learnership-management-sub003/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:00 AM, after the day's marking has settled
			if now.Hour() == 2 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [02:00]...")

				if err := RecalculateAllProgress(db); err != nil {
					log.Printf("Error in nightly progress sweep: %v", err)
				}
			}
		}
	}()
}

// RecalculateAllProgress recomputes the denormalized progress fields for
// every student in every active group. The per-student recalculation is a
// full recompute, so this sweep also heals any drift left behind by partial
// updates or direct data fixes.
func RecalculateAllProgress(db *sql.DB) error {
	log.Println("Starting nightly progress recalculation...")

	groups, err := database.GetActiveGroups(db)
	if err != nil {
		return err
	}

	count := 0
	for _, g := range groups {
		students, err := database.GetStudentsByGroup(db, g.ID)
		if err != nil {
			log.Printf("Failed to load students for group %s: %v", g.Name, err)
			continue
		}
		for _, s := range students {
			if _, err := RecalculateStudentProgress(db, s.ID); err != nil {
				log.Printf("Failed to recalculate progress for %s: %v", s.FullName(), err)
				continue
			}
			count++
		}
	}

	log.Printf("Nightly progress recalculation completed. Updated %d students.", count)
	return nil
}
