package tycoon

// Phase is a state of the game session.
type Phase string

const (
	PhaseSetup         Phase = "SETUP"
	PhaseScenarioIntro Phase = "SCENARIO_INTRO"
	PhaseTeamTurn      Phase = "TEAM_TURN"
	PhaseRoundSummary  Phase = "ROUND_SUMMARY"
	PhaseGameOver      Phase = "GAME_OVER"
)

// InRound reports whether the phase belongs to a running round, i.e. the
// session has a valid current scenario.
func (p Phase) InRound() bool {
	return p == PhaseScenarioIntro || p == PhaseTeamTurn || p == PhaseRoundSummary
}
