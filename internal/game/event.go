package game

import "github.com/playperu/tycoon/internal/tycoon"

type EventType string

const (
	EventGameStarted   EventType = "game_started"
	EventDecisionPhase EventType = "decision_phase"
	EventChoiceApplied EventType = "choice_applied"
	EventTurnAdvanced  EventType = "turn_advanced"
	EventRoundEnded    EventType = "round_ended"
	EventAnalysisReady EventType = "analysis_ready"
	EventRoundStarted  EventType = "round_started"
	EventGameOver      EventType = "game_over"
	EventGameReset     EventType = "game_reset"
)

// Event describes a state change. Round is 1-based; TeamID is the active
// team where one applies, otherwise -1.
type Event struct {
	Type     EventType        `json:"type"`
	Phase    tycoon.Phase     `json:"phase"`
	Round    int              `json:"round,omitempty"`
	TeamID   int              `json:"teamId"`
	Cue      tycoon.Cue       `json:"cue,omitempty"`
	Unlocked []tycoon.BadgeID `json:"unlockedBadges,omitempty"`
}

// Notifier receives events after the state change is committed. It is
// called with the game lock held: it must not block and must not call back
// into the Game.
type Notifier interface {
	Notify(Event)
}

type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

type discard struct{}

func (discard) Notify(Event) {}
