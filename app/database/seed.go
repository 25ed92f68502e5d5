package database

import (
	"database/sql"
	"log"
)

type seedUnitStandard struct {
	Code    string
	Title   string
	Credits int
}

type seedModule struct {
	Number        int
	Name          string
	UnitStandards []seedUnitStandard
}

// curriculumSeed is the single authoritative curriculum table. Credit values
// here override anything found in historical rollout blobs; the numbers sum
// to the 138 credits of the qualification.
var curriculumSeed = []seedModule{
	{
		Number: 1,
		Name:   "Personal Effectiveness in a Business Environment",
		UnitStandards: []seedUnitStandard{
			{Code: "7480", Title: "Demonstrate understanding of rational and irrational numbers and number systems", Credits: 2},
			{Code: "13915", Title: "Demonstrate knowledge and understanding of HIV/AIDS in a workplace", Credits: 4},
			{Code: "13912", Title: "Apply knowledge of self and team in order to develop a plan to enhance team performance", Credits: 5},
			{Code: "13911", Title: "Apply the organisation's code of conduct in a work environment", Credits: 4},
		},
	},
	{
		Number: 2,
		Name:   "Business Communication",
		UnitStandards: []seedUnitStandard{
			{Code: "13913", Title: "Apply basic business principles", Credits: 6},
			{Code: "13914", Title: "Conduct basic financial transactions", Credits: 4},
			{Code: "13909", Title: "Communicate verbally and non-verbally in the workplace", Credits: 4},
			{Code: "13917", Title: "Interpret basic financial statements", Credits: 6},
		},
	},
	{
		Number: 3,
		Name:   "Customer Service and Teamwork",
		UnitStandards: []seedUnitStandard{
			{Code: "13910", Title: "Induct a new member into a team", Credits: 6},
			{Code: "13916", Title: "Identify and discuss different types of business and their legal implications", Credits: 4},
			{Code: "7468", Title: "Use mathematics to investigate and monitor the financial aspects of personal, business and national issues", Credits: 5},
			{Code: "119567", Title: "Perform basic business calculations", Credits: 8},
		},
	},
	{
		Number: 4,
		Name:   "Business Administration Practice",
		UnitStandards: []seedUnitStandard{
			{Code: "13937", Title: "Monitor and control the receiving and satisfaction of visitors", Credits: 8},
			{Code: "110082", Title: "Maintain a secure working environment", Credits: 4},
			{Code: "13929", Title: "Co-ordinate meetings, minor events and travel arrangements", Credits: 6},
			{Code: "13932", Title: "Prepare and process documents for financial and banking processes", Credits: 6},
		},
	},
	{
		Number: 5,
		Name:   "Financial and Office Administration",
		UnitStandards: []seedUnitStandard{
			{Code: "13931", Title: "Monitor and control the maintenance of office equipment", Credits: 9},
			{Code: "13935", Title: "Plan and conduct basic research in an office environment", Credits: 5},
			{Code: "13940", Title: "Monitor and maintain records in an office environment", Credits: 8},
			{Code: "110021", Title: "Achieve personal effectiveness in business environment", Credits: 4},
		},
	},
	{
		Number: 6,
		Name:   "Workplace Project and Integration",
		UnitStandards: []seedUnitStandard{
			{Code: "13938", Title: "Monitor and control office supplies", Credits: 10},
			{Code: "13941", Title: "Present information in report format", Credits: 8},
			{Code: "13945", Title: "Describe and assist in the control of fraud in an office environment", Credits: 6},
			{Code: "13947/13948", Title: "Process incoming and outgoing telephone calls; process numerical and text data", Credits: 6},
		},
	},
}

// SeedCurriculum installs the canonical modules and unit standards. Existing
// rows are left alone except for credit values, which are realigned to the
// canonical table so historical duplicates cannot survive a deploy.
func SeedCurriculum(db *sql.DB) error {
	log.Println("Seeding curriculum reference data...")

	for _, m := range curriculumSeed {
		total := 0
		for _, us := range m.UnitStandards {
			total += us.Credits
		}

		var moduleID string
		err := db.QueryRow(`
			INSERT INTO modules (number, name, total_credits)
			VALUES ($1, $2, $3)
			ON CONFLICT (number) DO UPDATE SET name = EXCLUDED.name, total_credits = EXCLUDED.total_credits
			RETURNING id
		`, m.Number, m.Name, total).Scan(&moduleID)
		if err != nil {
			return err
		}

		for seq, us := range m.UnitStandards {
			_, err := db.Exec(`
				INSERT INTO unit_standards (code, title, credits, module_id, sequence)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (code) DO UPDATE SET title = EXCLUDED.title, credits = EXCLUDED.credits,
					module_id = EXCLUDED.module_id, sequence = EXCLUDED.sequence
			`, us.Code, us.Title, us.Credits, moduleID, seq+1)
			if err != nil {
				return err
			}
		}
	}

	for _, role := range []string{"admin", "facilitator"} {
		if _, err := db.Exec(`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role); err != nil {
			return err
		}
	}

	log.Println("Curriculum seed completed")
	return nil
}
