package services

import (
	"fmt"
	"testing"
	"time"

	"regeve-backend/internal/database"
	"regeve-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database with the production schema,
// unique indexes included, so constraint-backed behavior is exercised for
// real. TranslateError makes unique violations surface as
// gorm.ErrDuplicatedKey, matching the Postgres driver.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One connection keeps concurrent test writers serialized by database/sql
	// instead of tripping SQLite table locks; the unique indexes still decide
	// who wins.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.AutoMigrate(db)
	return db
}

func seedOrganizer(t *testing.T, db *gorm.DB) models.Organizer {
	t.Helper()
	organizer := models.Organizer{Username: "organizer-" + t.Name(), PasswordHash: "x"}
	require.NoError(t, db.Create(&organizer).Error)
	return organizer
}

func seedVoter(t *testing.T, db *gorm.DB, username string) models.Voter {
	t.Helper()
	voter := models.Voter{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(&voter).Error)
	return voter
}

func seedElection(t *testing.T, db *gorm.DB, organizerID uint, start, end time.Time) models.Election {
	t.Helper()
	election := models.Election{
		OrganizerID: organizerID,
		Name:        "Annual General Election",
		Category:    "college",
		Type:        "general",
		StartTime:   start,
		EndTime:     end,
	}
	require.NoError(t, db.Create(&election).Error)
	return election
}

func seedPosition(t *testing.T, db *gorm.DB, electionID uint, title string) models.Position {
	t.Helper()
	position := models.Position{ElectionID: electionID, Title: title}
	require.NoError(t, db.Create(&position).Error)
	return position
}

func seedCandidate(t *testing.T, db *gorm.DB, electionID, positionID uint, name, email, phone string) models.Candidate {
	t.Helper()
	candidate := models.Candidate{
		ElectionID: electionID,
		PositionID: positionID,
		Name:       name,
		Email:      email,
		Phone:      phone,
	}
	require.NoError(t, db.Create(&candidate).Error)
	return candidate
}
