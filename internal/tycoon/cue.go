package tycoon

// Cue names the kind of feedback a presentation layer should play for an
// event. The engine only labels events; it never produces sound.
type Cue string

const (
	CueNone      Cue = ""
	CueStart     Cue = "start"
	CueClick     Cue = "click"
	CueMoney     Cue = "money"
	CueLoss      Cue = "loss"
	CueMilestone Cue = "milestone"
)

// CueFor picks the feedback for a completed turn.
func CueFor(o TurnOutcome) Cue {
	switch {
	case len(o.Unlocked) > 0:
		return CueMilestone
	case o.Impact.Revenue < 0:
		return CueLoss
	case o.Impact.Revenue > 2000 || o.Impact.Customers > 300:
		return CueMoney
	default:
		return CueClick
	}
}

// RoundEndCue is played when a round closes, unless the final turn of the
// round already celebrated a badge.
func RoundEndCue(lastTurnUnlocked []BadgeID) Cue {
	if len(lastTurnUnlocked) > 0 {
		return CueNone
	}
	return CueMilestone
}
