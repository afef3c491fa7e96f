// Package game runs the turn and round state machine of a tycoon session:
//
//	SETUP -> SCENARIO_INTRO -> TEAM_TURN -> ROUND_SUMMARY -> SCENARIO_INTRO | GAME_OVER
//
// Every team makes exactly one choice per round. A choice is applied
// immediately but the turn only advances once the result has been
// acknowledged, so the outcome can be shown first. Entering the round
// summary starts the market analysis in the background; its text is
// written into the session when it arrives, unless the session moved on.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/playperu/tycoon/internal/analysis"
	"github.com/playperu/tycoon/internal/tycoon"
)

// MinTeams is the smallest number of teams a game can start with.
const MinTeams = 2

const (
	defaultAnalysisTimeout = 15 * time.Second
	fallbackAnalysis       = "Analysts are crunching the numbers. Competition is heating up!"
)

type Options struct {
	// Scenarios defaults to the built-in catalog.
	Scenarios []tycoon.Scenario
	// Roster defaults to the built-in roster.
	Roster []tycoon.RosterEntry
	// MaxTeams defaults to the roster size and may not exceed it.
	MaxTeams        int
	Analyst         analysis.Provider
	AnalysisTimeout time.Duration
	Notifier        Notifier
	Logger          *slog.Logger
}

// Game owns a single session. All methods are safe for concurrent use;
// mutations are applied one at a time.
type Game struct {
	scenarios []tycoon.Scenario
	roster    []tycoon.RosterEntry
	maxTeams  int
	analyst   analysis.Provider
	timeout   time.Duration
	notifier  Notifier
	logger    *slog.Logger

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu      sync.Mutex
	session Session
	// generation identifies the analysis the session is waiting for.
	generation     uint64
	cancelAnalysis context.CancelFunc
}

func New(opts Options) (*Game, error) {
	if opts.Scenarios == nil {
		opts.Scenarios = tycoon.Scenarios()
	}
	if opts.Roster == nil {
		opts.Roster = tycoon.Roster()
	}
	if err := tycoon.ValidateCatalog(opts.Scenarios); err != nil {
		return nil, err
	}
	if len(opts.Roster) < MinTeams {
		return nil, fmt.Errorf("roster has %d teams, need at least %d: %w", len(opts.Roster), MinTeams, tycoon.ErrConfiguration)
	}
	if opts.MaxTeams == 0 {
		opts.MaxTeams = len(opts.Roster)
	}
	if opts.MaxTeams < MinTeams || opts.MaxTeams > len(opts.Roster) {
		return nil, fmt.Errorf("max teams %d outside [%d, %d]: %w", opts.MaxTeams, MinTeams, len(opts.Roster), tycoon.ErrConfiguration)
	}
	if opts.Analyst == nil {
		opts.Analyst = analysis.NewCanned(nil)
	}
	if opts.AnalysisTimeout <= 0 {
		opts.AnalysisTimeout = defaultAnalysisTimeout
	}
	if opts.Notifier == nil {
		opts.Notifier = discard{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Game{
		scenarios: opts.Scenarios,
		roster:    opts.Roster,
		maxTeams:  opts.MaxTeams,
		analyst:   opts.Analyst,
		timeout:   opts.AnalysisTimeout,
		notifier:  opts.Notifier,
		logger:    opts.Logger,
		ctx:       ctx,
		stop:      stop,
		session:   newSession(),
	}, nil
}

// StartGame creates teamCount teams from the roster and opens round one.
func (g *Game) StartGame(teamCount int) error {
	return g.apply(func() (Event, error) {
		if err := g.require("start game", tycoon.PhaseSetup); err != nil {
			return Event{}, err
		}
		if teamCount < MinTeams || teamCount > g.maxTeams {
			return Event{}, fmt.Errorf("team count %d outside [%d, %d]: %w", teamCount, MinTeams, g.maxTeams, tycoon.ErrConfiguration)
		}

		teams := make([]tycoon.Team, teamCount)
		for i := range teams {
			teams[i] = tycoon.NewTeam(i, g.roster[i].Name, g.roster[i].Tag)
		}
		g.session = Session{
			Phase:      tycoon.PhaseScenarioIntro,
			Teams:      teams,
			RoundIndex: 0,
			TeamIndex:  0,
		}
		return g.event(EventGameStarted, -1, tycoon.CueStart), nil
	})
}

// BeginDecisionPhase hands the current scenario to the first team.
func (g *Game) BeginDecisionPhase() error {
	return g.apply(func() (Event, error) {
		if err := g.require("begin decision phase", tycoon.PhaseScenarioIntro); err != nil {
			return Event{}, err
		}
		g.session.Phase = tycoon.PhaseTeamTurn
		return g.event(EventDecisionPhase, g.activeTeamID(), tycoon.CueClick), nil
	})
}

// SelectChoice applies the active team's choice. The result stays in the
// session until AcknowledgeResult; a second selection before that fails.
func (g *Game) SelectChoice(choiceID string) error {
	return g.apply(func() (Event, error) {
		const op = "select choice"
		if err := g.require(op, tycoon.PhaseTeamTurn); err != nil {
			return Event{}, err
		}
		if g.session.LastTurn != nil {
			return Event{}, &tycoon.TransitionError{Op: op, Phase: g.session.Phase, Reason: "previous result not acknowledged"}
		}

		sc := g.scenarios[g.session.RoundIndex]
		choice, ok := sc.Choice(choiceID)
		if !ok {
			return Event{}, fmt.Errorf("choice %q is not offered by scenario %d: %w", choiceID, sc.ID, tycoon.ErrInvalidChoice)
		}

		team := &g.session.Teams[g.session.TeamIndex]
		out, err := team.ApplyChoice(choice)
		if err != nil {
			return Event{}, err
		}

		cue := tycoon.CueFor(out)
		g.session.LastTurn = &TurnResult{
			TeamID:      team.ID,
			TeamName:    team.Name,
			TeamTag:     team.Tag,
			ChoiceID:    choice.ID,
			ChoiceLabel: choice.Label,
			Feedback:    choice.Feedback,
			Impact:      out.Impact,
			Unlocked:    out.Unlocked,
			Cue:         cue,
		}

		ev := g.event(EventChoiceApplied, team.ID, cue)
		ev.Unlocked = append([]tycoon.BadgeID{}, out.Unlocked...)
		return ev, nil
	})
}

// AcknowledgeResult clears the pending turn result and moves on to the
// next team, or closes the round after the last team. Calling it without a
// pending result fails with ErrInvalidTransition.
func (g *Game) AcknowledgeResult() error {
	return g.apply(func() (Event, error) {
		const op = "acknowledge result"
		if err := g.require(op, tycoon.PhaseTeamTurn); err != nil {
			return Event{}, err
		}
		if g.session.LastTurn == nil {
			return Event{}, &tycoon.TransitionError{Op: op, Phase: g.session.Phase, Reason: "no result to acknowledge"}
		}

		unlocked := g.session.LastTurn.Unlocked
		g.session.LastTurn = nil

		if g.session.TeamIndex < len(g.session.Teams)-1 {
			g.session.TeamIndex++
			return g.event(EventTurnAdvanced, g.activeTeamID(), tycoon.CueClick), nil
		}

		g.session.Phase = tycoon.PhaseRoundSummary
		g.startAnalysis()
		return g.event(EventRoundEnded, -1, tycoon.RoundEndCue(unlocked)), nil
	})
}

// ProceedToNextRound leaves the round summary for the next scenario, or
// ends the game after the last one. Commentary still pending for the
// finished round is discarded.
func (g *Game) ProceedToNextRound() error {
	return g.apply(func() (Event, error) {
		if err := g.require("proceed to next round", tycoon.PhaseRoundSummary); err != nil {
			return Event{}, err
		}
		g.supersedeAnalysis()
		g.session.Analysis = Analysis{}

		if g.session.RoundIndex < len(g.scenarios)-1 {
			g.session.RoundIndex++
			g.session.TeamIndex = 0
			g.session.Phase = tycoon.PhaseScenarioIntro
			return g.event(EventRoundStarted, -1, tycoon.CueStart), nil
		}

		g.session.Phase = tycoon.PhaseGameOver
		return g.event(EventGameOver, -1, tycoon.CueMilestone), nil
	})
}

// Reset abandons the session from any phase and returns to setup.
func (g *Game) Reset() {
	_ = g.apply(func() (Event, error) {
		g.supersedeAnalysis()
		g.session = newSession()
		return g.event(EventGameReset, -1, tycoon.CueNone), nil
	})
}

// Snapshot returns a copy of the session.
func (g *Game) Snapshot() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.clone()
}

// Leaderboard ranks the session's teams by revenue.
func (g *Game) Leaderboard() []tycoon.Team {
	g.mu.Lock()
	defer g.mu.Unlock()
	return tycoon.Leaderboard(g.session.Teams)
}

// ActiveTeam returns the team whose turn it is. ok is false outside TEAM_TURN.
func (g *Game) ActiveTeam() (team tycoon.Team, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session.Phase != tycoon.PhaseTeamTurn {
		return tycoon.Team{}, false
	}
	return g.session.Teams[g.session.TeamIndex].Clone(), true
}

// CurrentScenario returns the scenario of the running round.
func (g *Game) CurrentScenario() (sc tycoon.Scenario, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.session.Phase.InRound() {
		return tycoon.Scenario{}, false
	}
	sc = g.scenarios[g.session.RoundIndex]
	sc.Choices = append([]tycoon.Choice{}, sc.Choices...)
	return sc, true
}

func (g *Game) Scenarios() []tycoon.Scenario {
	out := make([]tycoon.Scenario, len(g.scenarios))
	for i, s := range g.scenarios {
		s.Choices = append([]tycoon.Choice{}, s.Choices...)
		out[i] = s
	}
	return out
}

func (g *Game) MaxTeams() int { return g.maxTeams }

// Wait blocks until no market analysis is in flight.
func (g *Game) Wait() { g.wg.Wait() }

// Close cancels any in-flight analysis and waits for it to return.
func (g *Game) Close() {
	g.stop()
	g.wg.Wait()
}

// apply runs fn under the lock and publishes its event before releasing
// it, so observers see events in transition order. A failed fn must leave
// the session untouched.
func (g *Game) apply(fn func() (Event, error)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ev, err := fn()
	if err != nil {
		g.logger.Debug("game operation rejected", "error", err)
		return err
	}

	g.logger.Info("game transition",
		"event", ev.Type,
		"phase", ev.Phase,
		"round", ev.Round,
		"team_id", ev.TeamID,
	)
	g.notifier.Notify(ev)
	return nil
}

func (g *Game) require(op string, want tycoon.Phase) error {
	if g.session.Phase != want {
		return &tycoon.TransitionError{Op: op, Phase: g.session.Phase}
	}
	return nil
}

func (g *Game) activeTeamID() int {
	return g.session.Teams[g.session.TeamIndex].ID
}

func (g *Game) event(typ EventType, teamID int, cue tycoon.Cue) Event {
	ev := Event{Type: typ, Phase: g.session.Phase, TeamID: teamID, Cue: cue}
	if g.session.Phase.InRound() {
		ev.Round = g.session.RoundIndex + 1
	}
	return ev
}

// startAnalysis marks the session's analysis pending and asks the provider
// for commentary on the round that just ended. Must hold g.mu.
func (g *Game) startAnalysis() {
	g.supersedeAnalysis()
	gen := g.generation
	round := g.session.RoundIndex + 1
	teams := analysis.SnapshotTeams(g.session.Teams)
	scenario := analysis.SnapshotScenario(g.scenarios[g.session.RoundIndex])
	g.session.Analysis = Analysis{Round: round, Pending: true}

	ctx, cancel := context.WithTimeout(g.ctx, g.timeout)
	g.cancelAnalysis = cancel

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer cancel()

		text := g.analyst.Analyze(ctx, teams, scenario, round)
		if strings.TrimSpace(text) == "" {
			text = fallbackAnalysis
		}
		g.finishAnalysis(gen, round, text)
	}()
}

func (g *Game) finishAnalysis(gen uint64, round int, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.generation {
		g.logger.Debug("discarding superseded market analysis", "round", round)
		return
	}
	g.session.Analysis = Analysis{Round: round, Text: text}
	g.cancelAnalysis = nil

	g.logger.Info("market analysis ready", "round", round)
	g.notifier.Notify(g.event(EventAnalysisReady, -1, tycoon.CueNone))
}

// supersedeAnalysis invalidates any analysis in flight. Must hold g.mu.
func (g *Game) supersedeAnalysis() {
	g.generation++
	if g.cancelAnalysis != nil {
		g.cancelAnalysis()
		g.cancelAnalysis = nil
	}
}
