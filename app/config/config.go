package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB     *sql.DB
	Engine EngineConfig
}

// ModuleWeight is the planned duration of one module. Fractional-month
// durations are expressed as whole months plus extra days so the planner can
// apply them with calendar-aware arithmetic ("+1.5 months" means +1 calendar
// month then +15 days, not +45 days).
type ModuleWeight struct {
	ModuleNumber int
	Months       int
	ExtraDays    int
}

// ToleranceBand is the ahead/on-track/behind classification band, in
// percentage points of credit progress relative to time progress.
type ToleranceBand struct {
	AheadAbove  float64
	BehindBelow float64
}

// EngineConfig carries the tunables of the progress and rollout engine.
type EngineConfig struct {
	// TotalCreditsRequired is the credit total of the full qualification.
	TotalCreditsRequired int
	// ModuleWeights is applied in module-number order by the planner.
	ModuleWeights []ModuleWeight
	// Schedule is the group schedule classification band.
	Schedule ToleranceBand
}

var AppConfig *Config

// DefaultEngineConfig returns the engine tunables for the current
// qualification, with an env override for the credit total.
func DefaultEngineConfig() EngineConfig {
	total := 138
	if v := os.Getenv("TOTAL_CREDITS_REQUIRED"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			total = n
		}
	}
	return EngineConfig{
		TotalCreditsRequired: total,
		ModuleWeights: []ModuleWeight{
			{ModuleNumber: 1, Months: 1},
			{ModuleNumber: 2, Months: 1, ExtraDays: 15},
			{ModuleNumber: 3, Months: 1, ExtraDays: 15},
			{ModuleNumber: 4, Months: 1, ExtraDays: 15},
			{ModuleNumber: 5, Months: 2},
			{ModuleNumber: 6, Months: 2},
		},
		Schedule: ToleranceBand{AheadAbove: 10, BehindBelow: -5},
	}
}

// InitDB opens the PostgreSQL pool and installs the global AppConfig.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := envOr("DB_HOST", "localhost")
		port := envOr("DB_PORT", "5432")
		user := envOr("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := envOr("DB_NAME", "learnership")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable connect_timeout=60", host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection: %v", err)
	}

	AppConfig = &Config{
		DB:     db,
		Engine: DefaultEngineConfig(),
	}
	log.Println("Database connected successfully")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// GetEngine returns the engine tunables.
func GetEngine() EngineConfig {
	return AppConfig.Engine
}
