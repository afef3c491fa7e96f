// Package tycoon defines the core domain types of the business simulation:
// scenarios, choices, teams, badges and the rules that mutate them.
// It has no dependencies outside the standard library.
package tycoon

// Initial metrics every team starts the game with.
const (
	InitialRevenue        = 10000
	InitialCustomers      = 0
	InitialInfrastructure = 10
	InitialBrandAwareness = 10
)

// Metrics are a team's business figures. Infrastructure and BrandAwareness
// read as percentages but are never clamped: they may exceed 100 or drop
// below zero, and badge thresholds compare against the raw values.
type Metrics struct {
	Revenue        int     `json:"revenue"`
	Customers      int     `json:"customers"`
	Infrastructure float64 `json:"infrastructure"`
	BrandAwareness float64 `json:"brandAwareness"`
}

// Impact is the delta a choice applies to a team's metrics.
type Impact struct {
	Revenue        int `json:"revenue"`
	Customers      int `json:"customers"`
	Infrastructure int `json:"infrastructure"`
	BrandAwareness int `json:"brandAwareness"`
}

type Choice struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
	Feedback    string `json:"feedback"`
}

type Scenario struct {
	ID          int      `json:"id"`
	Unit        string   `json:"unit"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// Choice returns the choice with the given id, if the scenario offers it.
func (s Scenario) Choice(id string) (Choice, bool) {
	for _, c := range s.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

type Team struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Tag     string    `json:"tag"`
	Metrics Metrics   `json:"metrics"`
	Badges  []BadgeID `json:"badges"`
	History []string  `json:"history"`
}

// NewTeam returns a team with the initial metrics and no badges or history.
func NewTeam(id int, name, tag string) Team {
	return Team{
		ID:   id,
		Name: name,
		Tag:  tag,
		Metrics: Metrics{
			Revenue:        InitialRevenue,
			Customers:      InitialCustomers,
			Infrastructure: InitialInfrastructure,
			BrandAwareness: InitialBrandAwareness,
		},
		Badges:  []BadgeID{},
		History: []string{},
	}
}

// HasBadge reports whether the team already holds id.
func (t *Team) HasBadge(id BadgeID) bool {
	for _, b := range t.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// LastAction returns the most recent history entry, or "" if none.
func (t *Team) LastAction() string {
	if len(t.History) == 0 {
		return ""
	}
	return t.History[len(t.History)-1]
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	c := t
	c.Badges = append([]BadgeID{}, t.Badges...)
	c.History = append([]string{}, t.History...)
	return c
}

// RosterEntry is a fixed team identity handed out at game start.
type RosterEntry struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}
