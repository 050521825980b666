package services

import (
	"testing"
	"time"

	"regeve-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateElectionRejectsInvertedWindow(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	svc := NewElectionService(db)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	_, err := svc.CreateElection(organizer.ID, "Council", "college", "general", start, start)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.CreateElection(organizer.ID, "Council", "college", "general", start, start.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.CreateElection(organizer.ID, "Council", "college", "general", start, start.Add(time.Hour))
	assert.NoError(t, err)
}

func TestCreateElectionRequiresName(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	svc := NewElectionService(db)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.CreateElection(organizer.ID, "   ", "", "", start, start.Add(time.Hour))
	assert.ErrorIs(t, err, ErrMissingField)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "name", fieldErr.Field)
}

func TestCreatePositionRejectsCaseInsensitiveDuplicate(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	svc := NewElectionService(db)

	_, err := svc.CreatePosition(election.ID, organizer.ID, "President")
	require.NoError(t, err)

	_, err = svc.CreatePosition(election.ID, organizer.ID, "  president ")
	assert.ErrorIs(t, err, ErrDuplicatePosition)

	_, err = svc.CreatePosition(election.ID, organizer.ID, "Secretary")
	assert.NoError(t, err)
}

func TestDeletePositionKeepsLastOne(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	svc := NewElectionService(db)

	president := seedPosition(t, db, election.ID, "President")
	secretary := seedPosition(t, db, election.ID, "Secretary")

	require.NoError(t, svc.DeletePosition(secretary.ID, organizer.ID))
	assert.ErrorIs(t, svc.DeletePosition(president.ID, organizer.ID), ErrLastPosition)
}

func TestDeletePositionCascadesCandidates(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	svc := NewElectionService(db)

	president := seedPosition(t, db, election.ID, "President")
	seedPosition(t, db, election.ID, "Secretary")
	seedCandidate(t, db, election.ID, president.ID, "Jane", "jane@example.com", "111")

	require.NoError(t, svc.DeletePosition(president.ID, organizer.ID))

	var count int64
	db.Model(&models.Candidate{}).Where("position_id = ?", president.ID).Count(&count)
	assert.Zero(t, count)
}

func TestDeletePositionRejectedWhileVotesExist(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	svc := NewElectionService(db)

	president := seedPosition(t, db, election.ID, "President")
	seedPosition(t, db, election.ID, "Secretary")
	candidate := seedCandidate(t, db, election.ID, president.ID, "Jane", "jane@example.com", "111")
	voter := seedVoter(t, db, "voter1")

	ballots := NewBallotService(db)
	ballots.now = func() time.Time { return start.Add(time.Minute) }
	_, err := ballots.CastVote(president.ID, candidate.ID, voter.ID, "key-1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePosition(president.ID, organizer.ID), ErrVotesExist)

	// The rejected delete rolls back as a whole: the guard and the deletes
	// share one transaction, so candidates and tallies survive intact.
	var candidateCount, tallyCount int64
	db.Model(&models.Candidate{}).Where("position_id = ?", president.ID).Count(&candidateCount)
	db.Model(&models.Tally{}).Where("position_id = ?", president.ID).Count(&tallyCount)
	assert.EqualValues(t, 1, candidateCount)
	assert.EqualValues(t, 1, tallyCount)
}

func TestListPositionsInsertionOrderWithCounts(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	svc := NewElectionService(db)

	president := seedPosition(t, db, election.ID, "President")
	seedPosition(t, db, election.ID, "Secretary")
	seedCandidate(t, db, election.ID, president.ID, "Jane", "jane@example.com", "111")
	seedCandidate(t, db, election.ID, president.ID, "John", "john@example.com", "222")

	positions, err := svc.ListPositions(election.ID)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "President", positions[0].Title)
	assert.Equal(t, 2, positions[0].CandidateCount)
	assert.Equal(t, "Secretary", positions[1].Title)
	assert.Equal(t, 0, positions[1].CandidateCount)
}

func TestGetElectionDerivesStatus(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	svc := NewElectionService(db)

	start := time.Now().Add(time.Hour)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))

	state, err := svc.GetElection(election.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ElectionStatusScheduled, state.Status)
	assert.Greater(t, state.RemainingSeconds, int64(0))

	_, err = svc.GetElection(99999)
	assert.ErrorIs(t, err, ErrElectionNotFound)
}
