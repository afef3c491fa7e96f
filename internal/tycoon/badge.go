package tycoon

type BadgeID string

const (
	BadgeUnicorn        BadgeID = "UNICORN"
	BadgeViralSensation BadgeID = "VIRAL_SENSATION"
	BadgeTechTitan      BadgeID = "TECH_TITAN"
	BadgeBrandIcon      BadgeID = "BRAND_ICON"
	BadgeScalable       BadgeID = "SCALABLE"
)

// BadgeRule unlocks a badge the first time Met returns true for a team.
type BadgeRule struct {
	ID          BadgeID
	Label       string
	Description string
	Met         func(Metrics) bool
}

// Declaration order is the order newly unlocked badges are reported in.
var badgeRules = []BadgeRule{
	{
		ID:          BadgeUnicorn,
		Label:       "Unicorn Status",
		Description: "Achieved $40,000+ Revenue",
		Met:         func(m Metrics) bool { return m.Revenue >= 40000 },
	},
	{
		ID:          BadgeViralSensation,
		Label:       "Viral Sensation",
		Description: "Acquired 2,500+ Customers",
		Met:         func(m Metrics) bool { return m.Customers >= 2500 },
	},
	{
		ID:          BadgeTechTitan,
		Label:       "Tech Titan",
		Description: "Built 80+ Infrastructure",
		Met:         func(m Metrics) bool { return m.Infrastructure >= 80 },
	},
	{
		ID:          BadgeBrandIcon,
		Label:       "Brand Icon",
		Description: "Achieved 80+ Brand Awareness",
		Met:         func(m Metrics) bool { return m.BrandAwareness >= 80 },
	},
	{
		ID:          BadgeScalable,
		Label:       "Scalable Startup",
		Description: "Infrastructure ready for the big leagues",
		Met:         func(m Metrics) bool { return m.Infrastructure >= 60 },
	},
}

// BadgeRules returns the badge table in declaration order.
func BadgeRules() []BadgeRule {
	return append([]BadgeRule{}, badgeRules...)
}

func LookupBadge(id BadgeID) (BadgeRule, bool) {
	for _, r := range badgeRules {
		if r.ID == id {
			return r, true
		}
	}
	return BadgeRule{}, false
}

// evaluateBadges returns the badges whose rule holds for the team's current
// metrics and that the team does not hold yet.
func evaluateBadges(t *Team) []BadgeID {
	unlocked := []BadgeID{}
	for _, r := range badgeRules {
		if r.Met(t.Metrics) && !t.HasBadge(r.ID) {
			unlocked = append(unlocked, r.ID)
		}
	}
	return unlocked
}
