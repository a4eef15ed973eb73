package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from JobStatus
		to   JobStatus
		want bool
	}{
		{"pending to quoted", JobStatusPending, JobStatusQuoted, true},
		{"pending to canceled", JobStatusPending, JobStatusCanceled, true},
		{"pending to accepted skips quoting", JobStatusPending, JobStatusAccepted, false},
		{"quoted to accepted", JobStatusQuoted, JobStatusAccepted, true},
		{"quoted to in progress skips acceptance", JobStatusQuoted, JobStatusInProgress, false},
		{"accepted to in progress", JobStatusAccepted, JobStatusInProgress, true},
		{"accepted back to pending", JobStatusAccepted, JobStatusPending, false},
		{"in progress to completed", JobStatusInProgress, JobStatusCompleted, true},
		{"in progress to canceled", JobStatusInProgress, JobStatusCanceled, true},
		{"completed is terminal", JobStatusCompleted, JobStatusCanceled, false},
		{"canceled is terminal", JobStatusCanceled, JobStatusPending, false},
		{"same status is not a transition", JobStatusQuoted, JobStatusQuoted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestJobStatus_Terminal(t *testing.T) {
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusCanceled.Terminal())
	assert.False(t, JobStatusPending.Terminal())
	assert.False(t, JobStatusInProgress.Terminal())
}

func TestJobStatus_AllowsLocationUpdates(t *testing.T) {
	assert.True(t, JobStatusAccepted.AllowsLocationUpdates())
	assert.True(t, JobStatusInProgress.AllowsLocationUpdates())
	assert.False(t, JobStatusPending.AllowsLocationUpdates())
	assert.False(t, JobStatusQuoted.AllowsLocationUpdates())
	assert.False(t, JobStatusCompleted.AllowsLocationUpdates())
	assert.False(t, JobStatusCanceled.AllowsLocationUpdates())
}

func TestTimerAction_CanFollow(t *testing.T) {
	tests := []struct {
		name   string
		prev   TimerAction
		action TimerAction
		want   bool
	}{
		{"start opens the timer", "", TimerActionStart, true},
		{"pause before start", "", TimerActionPause, false},
		{"end before start", "", TimerActionEnd, false},
		{"pause after start", TimerActionStart, TimerActionPause, true},
		{"end after start", TimerActionStart, TimerActionEnd, true},
		{"double start", TimerActionStart, TimerActionStart, false},
		{"resume after pause", TimerActionPause, TimerActionResume, true},
		{"double pause", TimerActionPause, TimerActionPause, false},
		{"end while paused", TimerActionPause, TimerActionEnd, false},
		{"pause after resume", TimerActionResume, TimerActionPause, true},
		{"end after resume", TimerActionResume, TimerActionEnd, true},
		{"end is terminal", TimerActionEnd, TimerActionStart, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.CanFollow(tt.prev))
		})
	}
}

func TestTimerAction_Valid(t *testing.T) {
	assert.True(t, TimerActionStart.Valid())
	assert.True(t, TimerActionEnd.Valid())
	assert.False(t, TimerAction("RESTART").Valid())
	assert.False(t, TimerAction("").Valid())
}

func TestJobTotals_Recompute(t *testing.T) {
	totals := JobTotals{Labor: 100, Parts: 40, Fees: 10, Discounts: 30}
	totals.Recompute()
	assert.InDelta(t, 120, totals.GrandTotal, 0.001)
}

func TestJobTotals_Recompute_ClampsAtZero(t *testing.T) {
	totals := JobTotals{Labor: 20, Discounts: 100}
	totals.Recompute()
	assert.Zero(t, totals.GrandTotal)
}

func TestJob_Counterpart(t *testing.T) {
	customerID := uuid.New()
	mechanicID := uuid.New()

	job := &Job{CustomerID: customerID}

	_, ok := job.Counterpart(customerID)
	assert.False(t, ok, "no counterpart before a mechanic is assigned")

	job.MechanicID = &mechanicID

	got, ok := job.Counterpart(customerID)
	assert.True(t, ok)
	assert.Equal(t, mechanicID, got)

	got, ok = job.Counterpart(mechanicID)
	assert.True(t, ok)
	assert.Equal(t, customerID, got)

	_, ok = job.Counterpart(uuid.New())
	assert.False(t, ok, "strangers have no counterpart")
}

func TestJob_IsParticipant(t *testing.T) {
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &Job{CustomerID: customerID, MechanicID: &mechanicID}

	assert.True(t, job.IsParticipant(customerID))
	assert.True(t, job.IsParticipant(mechanicID))
	assert.False(t, job.IsParticipant(uuid.New()))
}
