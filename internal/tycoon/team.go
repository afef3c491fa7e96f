package tycoon

import "fmt"

// TurnOutcome is what applying a choice did to a team.
type TurnOutcome struct {
	Impact   Impact    `json:"impact"`
	Unlocked []BadgeID `json:"unlockedBadges"`
}

// ApplyChoice adds the choice's impact to the team's metrics, records the
// choice label in the history and unlocks any badge whose threshold is now
// met. Metrics are never clamped; negative values are valid. Badges are
// never revoked.
//
// The caller is responsible for checking that the choice belongs to the
// active scenario and that t is the active team.
func (t *Team) ApplyChoice(c Choice) (TurnOutcome, error) {
	if t == nil {
		return TurnOutcome{}, fmt.Errorf("applying choice %q: nil team: %w", c.ID, ErrInvalidState)
	}

	t.Metrics.Revenue += c.Impact.Revenue
	t.Metrics.Customers += c.Impact.Customers
	t.Metrics.Infrastructure += float64(c.Impact.Infrastructure)
	t.Metrics.BrandAwareness += float64(c.Impact.BrandAwareness)

	t.History = append(t.History, c.Label)

	unlocked := evaluateBadges(t)
	t.Badges = append(t.Badges, unlocked...)

	return TurnOutcome{Impact: c.Impact, Unlocked: unlocked}, nil
}
