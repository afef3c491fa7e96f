package tycoon

import "fmt"

var roster = []RosterEntry{
	{Name: "Alpha Corp", Tag: "blue"},
	{Name: "Beta Ltd", Tag: "red"},
	{Name: "Gamma Inc", Tag: "green"},
	{Name: "Delta Co", Tag: "purple"},
}

// Roster returns the fixed team identities in the order they are handed out.
func Roster() []RosterEntry {
	return append([]RosterEntry{}, roster...)
}

// Scenarios returns a copy of the built-in scenario sequence, one per round.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		s.Choices = append([]Choice{}, s.Choices...)
		out[i] = s
	}
	return out
}

// ValidateCatalog checks that a scenario sequence can drive a game: at least
// one scenario, every scenario offers a choice, and choice ids are unique
// within their scenario.
func ValidateCatalog(catalog []Scenario) error {
	if len(catalog) == 0 {
		return fmt.Errorf("empty scenario catalog: %w", ErrConfiguration)
	}
	for _, s := range catalog {
		if len(s.Choices) == 0 {
			return fmt.Errorf("scenario %d has no choices: %w", s.ID, ErrConfiguration)
		}
		seen := make(map[string]bool, len(s.Choices))
		for _, c := range s.Choices {
			if c.ID == "" {
				return fmt.Errorf("scenario %d has a choice without id: %w", s.ID, ErrConfiguration)
			}
			if seen[c.ID] {
				return fmt.Errorf("scenario %d repeats choice %q: %w", s.ID, c.ID, ErrConfiguration)
			}
			seen[c.ID] = true
		}
	}
	return nil
}

var scenarios = []Scenario{
	{
		ID:          1,
		Unit:        "Unit 1: Introduction to E-commerce",
		Title:       "The Digital Leap",
		Description: "Your traditional retail business is seeing declining foot traffic. How do you enter the digital market?",
		Choices: []Choice{
			{
				ID:          "marketplace",
				Label:       "Join a Marketplace",
				Description: "List products on Amazon/eBay. Low cost, high reach, low control.",
				Impact:      Impact{Revenue: 5000, Customers: 500, Infrastructure: 5, BrandAwareness: 10},
				Feedback:    "Immediate sales boost, but you are struggling to build your own brand identity.",
			},
			{
				ID:          "website",
				Label:       "Build Own Website",
				Description: "Launch a custom domain store. Higher cost, full control, slower start.",
				Impact:      Impact{Revenue: 1000, Customers: 100, Infrastructure: 20, BrandAwareness: 25},
				Feedback:    "Slow initial sales, but you own the customer data and brand experience.",
			},
			{
				ID:          "hybrid",
				Label:       "Hybrid Strategy",
				Description: "A small website plus social media selling.",
				Impact:      Impact{Revenue: 3000, Customers: 300, Infrastructure: 15, BrandAwareness: 15},
				Feedback:    "A balanced start, catching trends early but spreading resources thin.",
			},
		},
	},
	{
		ID:          2,
		Unit:        "Unit 2: Business Models",
		Title:       "Defining the Model",
		Description: "You need to decide how you source and sell products. This defines your operational structure.",
		Choices: []Choice{
			{
				ID:          "inventory",
				Label:       "Inventory Model",
				Description: "Buy stock, warehouse it, ship it. High margin, high risk.",
				Impact:      Impact{Revenue: 8000, Customers: 200, Infrastructure: 10, BrandAwareness: 20},
				Feedback:    "Margins are great, but warehousing costs are eating into cash flow.",
			},
			{
				ID:          "dropship",
				Label:       "Dropshipping",
				Description: "Supplier ships directly. Low risk, low margin, high competition.",
				Impact:      Impact{Revenue: 4000, Customers: 400, Infrastructure: 5, BrandAwareness: 5},
				Feedback:    "Easy to scale product range, but customer complaints about shipping times are up.",
			},
			{
				ID:          "subscription",
				Label:       "Subscription Box",
				Description: "Curated monthly deliveries. Recurring revenue, high churn risk.",
				Impact:      Impact{Revenue: 6000, Customers: 150, Infrastructure: 15, BrandAwareness: 30},
				Feedback:    "Predictable monthly revenue! You need to keep the content fresh to stop cancellations.",
			},
		},
	},
	{
		ID:          3,
		Unit:        "Unit 3: Infrastructure",
		Title:       "Platform Foundation",
		Description: "Traffic is growing. Your current setup is crashing. Where do you invest?",
		Choices: []Choice{
			{
				ID:          "saas",
				Label:       "SaaS Platform",
				Description: "Move to Shopify/BigCommerce. Monthly fee, reliable, less customizable.",
				Impact:      Impact{Revenue: 2000, Customers: 200, Infrastructure: 25, BrandAwareness: 10},
				Feedback:    "Stability is excellent. You launched new features quickly.",
			},
			{
				ID:          "opensource",
				Label:       "Custom Open Source",
				Description: "Magento/WooCommerce on own servers. High control, high maintenance.",
				Impact:      Impact{Revenue: 1000, Customers: 100, Infrastructure: 40, BrandAwareness: 10},
				Feedback:    "You spent a lot on developers, but the site is perfectly tailored to your niche.",
			},
			{
				ID:          "cloud",
				Label:       "Cloud Native Headless",
				Description: "Separate front-end/back-end on AWS. Ultimate scale, extremely complex.",
				Impact:      Impact{Revenue: 0, Customers: 0, Infrastructure: 50, BrandAwareness: 5},
				Feedback:    "It took months to build, effectively pausing growth, but now you can scale infinitely.",
			},
		},
	},
	{
		ID:          4,
		Unit:        "Unit 3: Mobile Commerce",
		Title:       "The Mobile Wave",
		Description: "60% of your visitors are on mobile devices. Bounce rates are high.",
		Choices: []Choice{
			{
				ID:          "responsive",
				Label:       "Responsive Redesign",
				Description: "Optimize current site for all screens. Cost effective.",
				Impact:      Impact{Revenue: 5000, Customers: 500, Infrastructure: 10, BrandAwareness: 10},
				Feedback:    "Conversion rate improved across the board. A safe, solid choice.",
			},
			{
				ID:          "nativeapp",
				Label:       "Native App",
				Description: "Build iOS and Android apps. High engagement, high barrier to entry.",
				Impact:      Impact{Revenue: 3000, Customers: 100, Infrastructure: 30, BrandAwareness: 40},
				Feedback:    "Few people downloaded it, but those who did spend 3x more than web users.",
			},
			{
				ID:          "pwa",
				Label:       "Progressive Web App",
				Description: "App-like experience in browser. Fast, modern, indexable.",
				Impact:      Impact{Revenue: 4500, Customers: 400, Infrastructure: 20, BrandAwareness: 20},
				Feedback:    "Great performance boost and SEO benefits without the App Store friction.",
			},
		},
	},
	{
		ID:          5,
		Unit:        "Unit 4: Marketing Strategy",
		Title:       "Customer Acquisition",
		Description: "Organic growth is plateauing. You need a proactive strategy to bring in new customers.",
		Choices: []Choice{
			{
				ID:          "ads",
				Label:       "Paid Advertising Blitz",
				Description: "Heavy investment in Google & Social Ads. Immediate traffic.",
				Impact:      Impact{Revenue: 6000, Customers: 1000, Infrastructure: 0, BrandAwareness: 20},
				Feedback:    "Traffic spiked immediately! Customer Acquisition Cost is high, but revenue is flowing.",
			},
			{
				ID:          "content",
				Label:       "SEO & Content Marketing",
				Description: "Blog posts, videos, and organic search focus. Slow burn.",
				Impact:      Impact{Revenue: 2000, Customers: 300, Infrastructure: 0, BrandAwareness: 40},
				Feedback:    "It is slow going, but you are building a loyal audience who trust your brand authority.",
			},
			{
				ID:          "influencer",
				Label:       "Influencer Partnerships",
				Description: "Pay creators to promote your products to their niche audiences.",
				Impact:      Impact{Revenue: 4500, Customers: 600, Infrastructure: 0, BrandAwareness: 50},
				Feedback:    "One viral post did wonders for your brand image, though some traffic was low quality.",
			},
		},
	},
	{
		ID:          6,
		Unit:        "Unit 5: Supply Chain Management",
		Title:       "The Fulfillment Crunch",
		Description: "Orders are piling up. Your current shipping process is too slow and causing complaints.",
		Choices: []Choice{
			{
				ID:          "3pl",
				Label:       "Outsource to 3PL",
				Description: "Use a Third-Party Logistics provider. They handle storage and shipping.",
				Impact:      Impact{Revenue: 3000, Customers: 400, Infrastructure: 30, BrandAwareness: 10},
				Feedback:    "Shipping is faster and you have less headache, but your margins took a hit.",
			},
			{
				ID:          "warehouse",
				Label:       "Lease Bigger Warehouse",
				Description: "Keep it in-house but scale up. High fixed cost, total control.",
				Impact:      Impact{Revenue: 2000, Customers: 200, Infrastructure: 40, BrandAwareness: 20},
				Feedback:    "You have total control over the unboxing experience, but rent is expensive.",
			},
			{
				ID:          "automation",
				Label:       "Warehouse Automation",
				Description: "Invest in robots and software to optimize your current space.",
				Impact:      Impact{Revenue: 1000, Customers: 100, Infrastructure: 60, BrandAwareness: 10},
				Feedback:    "Efficiency is through the roof. You are ready to handle double the volume.",
			},
		},
	},
	{
		ID:          7,
		Unit:        "Unit 6: Global E-commerce",
		Title:       "Crossing Borders",
		Description: "International visitors are trying to buy, but shipping and currency are barriers.",
		Choices: []Choice{
			{
				ID:          "crossborder",
				Label:       "Direct Cross-Border",
				Description: "Ship from home, calculate duties at checkout. High shipping cost.",
				Impact:      Impact{Revenue: 3000, Customers: 200, Infrastructure: 10, BrandAwareness: 30},
				Feedback:    "International sales are happening, but cart abandonment is high due to shipping fees.",
			},
			{
				ID:          "local_fulfillment",
				Label:       "Regional Fulfillment Centers",
				Description: "Stock inventory in key international markets (EU, Asia).",
				Impact:      Impact{Revenue: 5000, Customers: 600, Infrastructure: 40, BrandAwareness: 40},
				Feedback:    "Delivery speeds globally rival local shops. You are becoming a global brand.",
			},
			{
				ID:          "marketplaces_global",
				Label:       "Global Marketplaces",
				Description: "Use Amazon Global Selling or Alibaba to reach locals.",
				Impact:      Impact{Revenue: 4000, Customers: 300, Infrastructure: 5, BrandAwareness: 10},
				Feedback:    "Easy entry into new markets, but you are just another commodity on their platform.",
			},
		},
	},
	{
		ID:          8,
		Unit:        "Scaling & Competition",
		Title:       "Market Saturation",
		Description: "A global competitor just entered your niche with lower prices.",
		Choices: []Choice{
			{
				ID:          "price",
				Label:       "Price War",
				Description: "Cut prices to match them. Protect market share, kill margins.",
				Impact:      Impact{Revenue: 8000, Customers: 800, Infrastructure: 0, BrandAwareness: -10},
				Feedback:    "You kept the customers, but you are barely breaking even.",
			},
			{
				ID:          "niche",
				Label:       "Hyper-Niche Branding",
				Description: "Focus on premium quality and storytelling. Lose volume, gain value.",
				Impact:      Impact{Revenue: 4000, Customers: -100, Infrastructure: 10, BrandAwareness: 40},
				Feedback:    "You lost bargain hunters, but your loyal fanbase loves the new premium direction.",
			},
			{
				ID:          "loyalty",
				Label:       "Loyalty Program",
				Description: "Invest in retention and rewards to keep existing users.",
				Impact:      Impact{Revenue: 5000, Customers: 200, Infrastructure: 20, BrandAwareness: 20},
				Feedback:    "Repeat purchase rate skyrocketed. It is cheaper to keep customers than find new ones.",
			},
		},
	},
	{
		ID:          9,
		Unit:        "Unit 7: Emerging Technologies",
		Title:       "The AI Advantage",
		Description: "The market is shifting towards hyper-personalization using AI.",
		Choices: []Choice{
			{
				ID:          "personalization",
				Label:       "AI Personalization Engine",
				Description: "Dynamic website content based on user behavior.",
				Impact:      Impact{Revenue: 6000, Customers: 200, Infrastructure: 20, BrandAwareness: 10},
				Feedback:    "Conversion rates jumped significantly. Customers feel you \"get\" them.",
			},
			{
				ID:          "chatbots",
				Label:       "Smart Service Bots",
				Description: "24/7 AI customer support to handle queries instantly.",
				Impact:      Impact{Revenue: 2000, Customers: 100, Infrastructure: 30, BrandAwareness: -10},
				Feedback:    "Support costs are down, but some customers are frustrated by talking to robots.",
			},
			{
				ID:          "predictive",
				Label:       "Predictive Inventory AI",
				Description: "Forecast demand to optimize stock levels and cash flow.",
				Impact:      Impact{Revenue: 4000, Customers: 0, Infrastructure: 50, BrandAwareness: 0},
				Feedback:    "Stockouts are a thing of the past. Your operational efficiency is elite.",
			},
		},
	},
	{
		ID:          10,
		Unit:        "Security & Ethics",
		Title:       "Data Breach Scare",
		Description: "A vulnerability was found in a plugin you use. No data lost yet.",
		Choices: []Choice{
			{
				ID:          "patch",
				Label:       "Quiet Patch",
				Description: "Fix it quickly without announcing. Low cost, high risk if discovered.",
				Impact:      Impact{Revenue: 1000, Customers: 0, Infrastructure: 10, BrandAwareness: 0},
				Feedback:    "Problem solved cheaply. Hope no one finds out you were vulnerable.",
			},
			{
				ID:          "audit",
				Label:       "Full Security Audit",
				Description: "Halt dev, audit everything, announce commitment to security.",
				Impact:      Impact{Revenue: -2000, Customers: 100, Infrastructure: 40, BrandAwareness: 30},
				Feedback:    "Expensive downtime, but customers trust you more than ever.",
			},
			{
				ID:          "cyber",
				Label:       "Cyber Insurance & 3rd Party",
				Description: "Outsource payment processing completely to reduce scope.",
				Impact:      Impact{Revenue: -500, Customers: 0, Infrastructure: 20, BrandAwareness: 10},
				Feedback:    "You reduced liability, but transaction fees are slightly higher now.",
			},
		},
	},
}
