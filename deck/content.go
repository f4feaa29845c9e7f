package deck

// New builds the deck. Every call returns fresh values; nothing is shared
// between decks or between panel builds.
func New() Deck {
	return Deck{
		Page: Page{
			Title:  "AI Compliance Platform - Implementation Strategy",
			Icon:   "🚀",
			Layout: LayoutWide,
		},
		Header: Header{
			Title:    "🚀 AI Compliance Platform",
			Subtitle: "Streamlined Implementation Strategy",
		},
		Tabs: []Tab{
			{ID: "overview", Icon: "📋", Label: "Overview", Panel: overviewPanel},
			{ID: "strategy", Icon: "🎯", Label: "Strategy Shift", Panel: strategyPanel},
			{ID: "org-setup", Icon: "1️⃣", Label: "Org Setup", Panel: orgSetupPanel},
			{ID: "team", Icon: "2️⃣", Label: "Team Engagement", Panel: teamPanel},
			{ID: "partners", Icon: "3️⃣", Label: "Partner Acquisition", Panel: partnerPanel},
			{ID: "demo", Icon: "4️⃣", Label: "Demo Development", Panel: demoPanel},
			{ID: "build", Icon: "5️⃣", Label: "Full Build", Panel: buildPanel},
			{ID: "pilot", Icon: "6️⃣", Label: "Partner Pilot", Panel: pilotPanel},
			{ID: "timeline", Icon: "📊", Label: "Timeline", Panel: timelinePanel},
			{ID: "budget", Icon: "💰", Label: "Budget", Panel: budgetPanel},
		},
		Footer: Footer{
			Note: "*💡 Remember: Partner feedback drives product success. Secure partners early, build with confidence.*",
		},
	}
}
