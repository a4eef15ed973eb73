package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the canonical status enumeration for jobs. The uppercase string
// form is used both in memory and at rest; serialization never re-cases it.
type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusQuoted     JobStatus = "QUOTED"
	JobStatusAccepted   JobStatus = "ACCEPTED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCanceled   JobStatus = "CANCELED"
)

// jobTransitions is the legal transition table. COMPLETED and CANCELED are
// terminal: they have no outgoing edges.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:    {JobStatusQuoted, JobStatusCanceled},
	JobStatusQuoted:     {JobStatusAccepted, JobStatusCanceled},
	JobStatusAccepted:   {JobStatusInProgress, JobStatusCanceled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCanceled},
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	for _, next := range jobTransitions[s] {
		if next == target {
			return true
		}
	}

	return false
}

// Terminal reports whether no further transitions are legal out of s.
func (s JobStatus) Terminal() bool {
	return len(jobTransitions[s]) == 0
}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusQuoted, JobStatusAccepted,
		JobStatusInProgress, JobStatusCompleted, JobStatusCanceled:
		return true
	}

	return false
}

// AllowsLocationUpdates reports whether mechanic location pings are accepted
// in this status. Location tracking is bounded to the active-job window.
func (s JobStatus) AllowsLocationUpdates() bool {
	return s == JobStatusAccepted || s == JobStatusInProgress
}

// JobUrgency is the customer-declared priority of a service request.
type JobUrgency string

const (
	JobUrgencyLow       JobUrgency = "LOW"
	JobUrgencyNormal    JobUrgency = "NORMAL"
	JobUrgencyHigh      JobUrgency = "HIGH"
	JobUrgencyEmergency JobUrgency = "EMERGENCY"
)

// JobTotals is the cost breakdown of a job. GrandTotal is always
// labor + parts + fees - discounts, clamped at zero.
type JobTotals struct {
	Labor      float64 `json:"labor"`
	Parts      float64 `json:"parts"`
	Fees       float64 `json:"fees"`
	Discounts  float64 `json:"discounts"`
	GrandTotal float64 `json:"grand_total"`
}

// Recompute derives GrandTotal from the subtotals. Discounts exceeding the
// remaining cost clamp the total to zero rather than producing a negative
// amount owed.
func (t *JobTotals) Recompute() {
	total := t.Labor + t.Parts + t.Fees - t.Discounts
	if total < 0 {
		total = 0
	}
	t.GrandTotal = total
}

// Job is the central state-machine entity: one unit of requested and performed
// mechanical service.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      JobStatus  `json:"status"`
	Urgency     JobUrgency `json:"urgency"`

	CustomerID uuid.UUID  `json:"customer_id"`
	MechanicID *uuid.UUID `json:"mechanic_id"` // nil until a quote is accepted; cleared again on cancel

	VehicleInfo string `json:"vehicle_info"`

	// Service location, as given by the customer.
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// Live mechanic position, only meaningful while ACCEPTED or IN_PROGRESS.
	MechanicLat *float64   `json:"mechanic_lat"`
	MechanicLng *float64   `json:"mechanic_lng"`
	ETA         *time.Time `json:"eta"`

	Totals JobTotals `json:"totals"`

	ScheduledFor *time.Time `json:"scheduled_for"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	PaidAt       *time.Time `json:"paid_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsParticipant reports whether the given user takes part in this job.
func (j *Job) IsParticipant(userID uuid.UUID) bool {
	if j.CustomerID == userID {
		return true
	}

	return j.MechanicID != nil && *j.MechanicID == userID
}

// Counterpart returns the other participant of the job relative to userID.
// The second return value is false when the job has no counterpart yet
// (no mechanic assigned) or userID is not a participant.
func (j *Job) Counterpart(userID uuid.UUID) (uuid.UUID, bool) {
	if j.CustomerID == userID {
		if j.MechanicID == nil {
			return uuid.Nil, false
		}

		return *j.MechanicID, true
	}
	if j.MechanicID != nil && *j.MechanicID == userID {
		return j.CustomerID, true
	}

	return uuid.Nil, false
}

// JobPart is one line of the parts-used list, ordered by creation.
type JobPart struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}

// TimerAction is one step of the on-site work timer.
type TimerAction string

const (
	TimerActionStart  TimerAction = "START"
	TimerActionPause  TimerAction = "PAUSE"
	TimerActionResume TimerAction = "RESUME"
	TimerActionEnd    TimerAction = "END"
)

// timerSuccessors encodes the legal ordering of timer actions. The empty key
// is the state before any entry exists; END has no successors.
var timerSuccessors = map[TimerAction][]TimerAction{
	"":                {TimerActionStart},
	TimerActionStart:  {TimerActionPause, TimerActionEnd},
	TimerActionPause:  {TimerActionResume},
	TimerActionResume: {TimerActionPause, TimerActionEnd},
}

// Valid reports whether a is a known timer action.
func (a TimerAction) Valid() bool {
	switch a {
	case TimerActionStart, TimerActionPause, TimerActionResume, TimerActionEnd:
		return true
	}

	return false
}

// CanFollow reports whether a is a legal next action after prev. prev is the
// empty string when the timer has no entries yet.
func (a TimerAction) CanFollow(prev TimerAction) bool {
	for _, next := range timerSuccessors[prev] {
		if next == a {
			return true
		}
	}

	return false
}

// TimerEntry is one step of the job's work timer. Entries are append-only and
// ordered by creation; the sequence always begins with START and stops at END.
type TimerEntry struct {
	ID        uuid.UUID   `json:"id"`
	JobID     uuid.UUID   `json:"job_id"`
	ActorID   uuid.UUID   `json:"actor_id"`
	Action    TimerAction `json:"action"`
	CreatedAt time.Time   `json:"created_at"`
}

// JobPhoto is one photo attached to a job, referencing an already-uploaded
// URL. Uploads themselves happen outside this service.
type JobPhoto struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	UploaderID uuid.UUID `json:"uploader_id"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	CreatedAt  time.Time `json:"created_at"`
}

// TimelineEntry records one job lifecycle event for audit and client display.
type TimelineEntry struct {
	ID         uuid.UUID  `json:"id"`
	JobID      uuid.UUID  `json:"job_id"`
	ActorID    *uuid.UUID `json:"actor_id"` // nil for system-driven entries
	FromStatus JobStatus  `json:"from_status"`
	ToStatus   JobStatus  `json:"to_status"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
}
