package database

import (
	"fmt"
	"log"

	"regeve-backend/internal/config"
	"regeve-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Organizer{},
		&models.Voter{},
		&models.Election{},
		&models.Position{},
		&models.Candidate{},
		&models.Vote{},
		&models.Tally{},
		&models.Winner{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Constraints gorm tags cannot express. Position titles are unique per
	// election case-insensitively; candidate contact fields are unique across
	// the whole election, whatsapp only when provided.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_positions_election_title ON positions (election_id, lower(title))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_candidates_election_email ON candidates (election_id, email)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_candidates_election_phone ON candidates (election_id, phone)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_candidates_election_whatsapp ON candidates (election_id, whatsapp) WHERE whatsapp <> ''`,
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("failed to create index: %v", err)
		}
	}

	log.Println("database migrated")
}
