package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareWinnerNoCandidates(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	position := seedPosition(t, db, election.ID, "President")
	svc := NewWinnerService(db)

	_, err := svc.DeclareWinner(position.ID, 1, organizer.ID)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestDeclareWinnerCandidateMustBelongToPosition(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	president := seedPosition(t, db, election.ID, "President")
	secretary := seedPosition(t, db, election.ID, "Secretary")
	seedCandidate(t, db, election.ID, president.ID, "Jane", "jane@example.com", "111")
	outsider := seedCandidate(t, db, election.ID, secretary.ID, "John", "john@example.com", "222")
	svc := NewWinnerService(db)

	_, err := svc.DeclareWinner(president.ID, outsider.ID, organizer.ID)
	assert.ErrorIs(t, err, ErrCandidateNotInPosition)
}

func TestDeclareWinnerExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	position := seedPosition(t, db, election.ID, "President")
	jane := seedCandidate(t, db, election.ID, position.ID, "Jane", "jane@example.com", "111")
	john := seedCandidate(t, db, election.ID, position.ID, "John", "john@example.com", "222")
	svc := NewWinnerService(db)

	winner, err := svc.DeclareWinner(position.ID, jane.ID, organizer.ID)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, winner.CandidateID)
	assert.False(t, winner.DeclaredAt.IsZero())

	_, err = svc.DeclareWinner(position.ID, john.ID, organizer.ID)
	assert.ErrorIs(t, err, ErrAlreadyDeclared)

	got, err := svc.GetWinner(position.ID)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, got.CandidateID)
	assert.Equal(t, "Jane", got.Candidate.Name)
}

func TestGetWinnerBeforeDeclaration(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	position := seedPosition(t, db, election.ID, "President")
	svc := NewWinnerService(db)

	_, err := svc.GetWinner(position.ID)
	assert.ErrorIs(t, err, ErrNoWinner)

	_, err = svc.GetWinner(99999)
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestListWinners(t *testing.T) {
	db := newTestDB(t)
	organizer := seedOrganizer(t, db)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	election := seedElection(t, db, organizer.ID, start, start.Add(time.Hour))
	president := seedPosition(t, db, election.ID, "President")
	secretary := seedPosition(t, db, election.ID, "Secretary")
	jane := seedCandidate(t, db, election.ID, president.ID, "Jane", "jane@example.com", "111")
	seedCandidate(t, db, election.ID, secretary.ID, "John", "john@example.com", "222")
	svc := NewWinnerService(db)

	_, err := svc.DeclareWinner(president.ID, jane.ID, organizer.ID)
	require.NoError(t, err)

	winners, err := svc.ListWinners(election.ID)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, president.ID, winners[0].PositionID)
	assert.Equal(t, "Jane", winners[0].Candidate.Name)
}
