package analysis

import (
	"context"
	"math/rand/v2"
	"sync"
)

// roundLines holds the commentary pool for each 1-based round.
var roundLines = map[int][]string{
	1: {
		"Everyone has left the shop floor behind. Marketplace sellers are ahead on cash, but owning the customer is the long game.",
		"Digital doors are open. Watch who builds a brand and who just rents shelf space.",
	},
	2: {
		"Business models are locked in. Inventory players are flush but one bad season away from a warehouse full of regret.",
		"Subscriptions promise steady revenue, as long as churn does not eat the margins.",
	},
	3: {
		"Platform bets are placed. The cloud-native crowd went quiet on sales, but their servers will not blink at a traffic spike.",
		"Stability beats features when the checkout page goes down on payday.",
	},
	4: {
		"Mobile shoppers have spoken. Fast, app-like experiences are pulling ahead while clunky sites bleed visitors.",
		"The app store is a club with a cover charge. Not everyone paid it this round.",
	},
	5: {
		"Ad budgets are flowing. Traffic is up across the board, but acquisition costs are creeping higher.",
		"Influencers moved the needle this round. Brand awareness is now a real differentiator.",
	},
	6: {
		"Fulfillment is the new battleground. Teams that automated are ready for double the volume.",
		"Shipping delays are the silent killer of repeat purchases. Logistics choices will show up next quarter.",
	},
	7: {
		"Borders are open. Regional fulfillment is turning local shops into global brands.",
		"International carts are filling up, and just as many are being abandoned at the shipping fee.",
	},
	8: {
		"A price war is never free. Margins are thin and the loyal fanbases are the ones holding up.",
		"Competition arrived with lower prices. Premium storytellers are weathering it best.",
	},
	9: {
		"AI is reshaping the market. Personalization is converting, while chatbots are testing customer patience.",
		"Predictive inventory is quietly building an efficiency moat for whoever invested in it.",
	},
	10: {
		"Security just became a brand value. Transparent teams earned trust that quiet patches cannot buy.",
		"The final round is in. Infrastructure, trust and revenue all count when the investors call.",
	},
}

var fallbackLines = []string{
	"Analysts are crunching the numbers. Competition is heating up!",
	"The market is reacting to recent infrastructure investments.",
	"Volatility is high and the leaderboard could flip at any moment.",
}

// Canned picks commentary at random from a fixed per-round table.
type Canned struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCanned returns a canned provider. A nil rng uses a randomly seeded source.
func NewCanned(rng *rand.Rand) *Canned {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Canned{rng: rng}
}

func (c *Canned) Analyze(_ context.Context, _ []TeamSnapshot, _ ScenarioSnapshot, round int) string {
	lines, ok := roundLines[round]
	if !ok {
		lines = fallbackLines
	}

	c.mu.Lock()
	i := c.rng.IntN(len(lines))
	c.mu.Unlock()
	return lines[i]
}

func (c *Canned) Check(context.Context) error { return nil }
