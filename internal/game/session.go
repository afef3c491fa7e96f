package game

import "github.com/playperu/tycoon/internal/tycoon"

// Session is the complete, serializable state of one game.
type Session struct {
	Phase      tycoon.Phase  `json:"phase"`
	Teams      []tycoon.Team `json:"teams"`
	RoundIndex int           `json:"roundIndex"`
	TeamIndex  int           `json:"teamIndex"`
	LastTurn   *TurnResult   `json:"lastTurn"`
	Analysis   Analysis      `json:"analysis"`
}

// TurnResult is the outcome of the active team's choice, kept until the
// turn is acknowledged.
type TurnResult struct {
	TeamID      int              `json:"teamId"`
	TeamName    string           `json:"teamName"`
	TeamTag     string           `json:"teamTag"`
	ChoiceID    string           `json:"choiceId"`
	ChoiceLabel string           `json:"choiceLabel"`
	Feedback    string           `json:"feedback"`
	Impact      tycoon.Impact    `json:"impact"`
	Unlocked    []tycoon.BadgeID `json:"unlockedBadges"`
	Cue         tycoon.Cue       `json:"cue"`
}

// Analysis is the market commentary for the round in summary. Pending is
// true between entering the summary and the provider answering.
type Analysis struct {
	Round   int    `json:"round"`
	Pending bool   `json:"pending"`
	Text    string `json:"text"`
}

func newSession() Session {
	return Session{Phase: tycoon.PhaseSetup, Teams: []tycoon.Team{}}
}

func (s Session) clone() Session {
	c := s
	c.Teams = make([]tycoon.Team, len(s.Teams))
	for i, t := range s.Teams {
		c.Teams[i] = t.Clone()
	}
	if s.LastTurn != nil {
		lt := *s.LastTurn
		lt.Unlocked = append([]tycoon.BadgeID{}, s.LastTurn.Unlocked...)
		c.LastTurn = &lt
	}
	return c
}
