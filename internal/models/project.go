package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the lifecycle state of a bankroll project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectFailed    ProjectStatus = "FAILED"
)

// EventResult is the settled outcome of a single project event.
type EventResult string

const (
	EventPending EventResult = "PENDING"
	EventWon     EventResult = "WON"
	EventLost    EventResult = "LOST"
	EventVoid    EventResult = "VOID"
)

// Project is a user-defined bankroll plan: a starting bankroll, a profit
// target and a fixed number of events to reach it.
type Project struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	UserID          string        `db:"user_id" json:"user_id" validate:"required"`
	Name            string        `db:"name" json:"name" validate:"required"`
	BankrollStart   float64       `db:"bankroll_start" json:"bankroll_start" validate:"gt=0"`
	BankrollCurrent float64       `db:"bankroll_current" json:"bankroll_current"`
	TargetProfit    float64       `db:"target_profit" json:"target_profit" validate:"gte=0"`
	TotalEvents     int           `db:"total_events" json:"total_events" validate:"gt=0"`
	EventsPlayed    int           `db:"events_played" json:"events_played"`
	EventsWon       int           `db:"events_won" json:"events_won"`
	EventsLost      int           `db:"events_lost" json:"events_lost"`
	Status          ProjectStatus `db:"status" json:"status"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// RemainingEvents returns how many events are left to play, minimum zero.
func (p *Project) RemainingEvents() int {
	remaining := p.TotalEvents - p.EventsPlayed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Terminal reports whether the project has reached a final state.
func (p *Project) Terminal() bool {
	return p.Status == ProjectCompleted || p.Status == ProjectFailed
}

// Event is a single planned bet inside a project.
type Event struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	ProjectID   uuid.UUID   `db:"project_id" json:"project_id"`
	PlayerSlug  string      `db:"player_slug" json:"player_slug"`
	PlayerName  string      `db:"player_name" json:"player_name"`
	Threshold   float64     `db:"threshold" json:"threshold"`
	Odds        float64     `db:"odds" json:"odds" validate:"gt=1"`
	Stake       float64     `db:"stake" json:"stake" validate:"gte=0"`
	Probability float64     `db:"probability" json:"probability" validate:"gte=0,lte=1"`
	Confidence  Confidence  `db:"confidence" json:"confidence"`
	Result      EventResult `db:"result" json:"result"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	SettledAt   *time.Time  `db:"settled_at" json:"settled_at,omitempty"`
}

// Payout returns the bankroll delta produced by settling the event.
func (e *Event) Payout() float64 {
	switch e.Result {
	case EventWon:
		return e.Stake * (e.Odds - 1)
	case EventLost:
		return -e.Stake
	default:
		return 0
	}
}
