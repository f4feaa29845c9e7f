package deck

func overviewPanel() Panel {
	return Panel{
		Heading: "Executive Summary",
		Blocks: stack(
			cols(
				stack(
					Callout{
						Kind:  CalloutHighlight,
						Title: "🎯 Core Objective",
						Body: "Build an AI-powered campaign finance compliance platform that reduces processing time " +
							"from hours to seconds while maintaining >95% accuracy.",
					},
					Subheading{Text: "Key Success Metrics"},
					cols(
						stack(
							Metric{Label: "Processing Time", Value: "<30 sec", Delta: "vs 3+ hours manual"},
							Metric{Label: "Accuracy Target", Value: ">95%", Delta: "vs manual processing"},
						),
						stack(
							Metric{Label: "System Uptime", Value: ">99%", Delta: "Production SLA"},
							Metric{Label: "Time to Market", Value: "24 weeks", Delta: "With partner validation"},
						),
					),
				),
				stack(
					Callout{
						Kind:  CalloutHighlight,
						Title: "🤝 Partner-First Approach",
						Body: "Secure innovation partners BEFORE full build to ensure product-market fit, " +
							"gain testimonials, and accelerate customer acquisition.",
					},
					Subheading{Text: "Implementation Phases"},
					Markdown{Source: `1. **Organizational Setup** (Week 1)
2. **Outsourced Team Engagement** (Weeks 1-2)
3. **Partner Acquisition** (Weeks 2-6) *← Key Change*
4. **Demo Development** (Weeks 2-6)
5. **Full Application Build** (Weeks 8-20)
6. **Partner Pilot Program** (Weeks 18-22)
`},
				),
			),
		),
	}
}

func strategyPanel() Panel {
	return Panel{
		Heading: "🎯 Critical Strategy Shift: Partner-First Development",
		Blocks: stack(
			Callout{
				Kind:  CalloutHighlight,
				Title: "⚠️ Key Change: Find Partners BEFORE Full Build",
				Body:  "We're moving partner acquisition from Week 8 to Week 2-6, running parallel with demo development.",
			},
			cols(
				stack(
					Subheading{Text: "Why Partner-First?"},
					Markdown{Source: `### 📈 **Increases First Client Probability**
- Partner becomes invested in our success
- They've shaped the product to their needs
- Lower barrier to adoption

### 🎯 **Ensures Product-Market Fit**
- Build features at least one company needs
- Avoid assumptions about requirements
- Real-world validation before scale

### 🗣️ **Testimonials & Referrals = Growth**
- Most powerful sales tool in B2B
- Peer recommendations drive decisions
- Case studies prove ROI
`},
				),
				stack(
					Subheading{Text: "Innovation Partner Benefits"},
					Callout{Kind: CalloutInfo, Body: `**What Partners Get:**
- 🆓 6 months free usage
- 🚀 First access to new features
- 🎯 Product shaped to their needs
- 💰 Reduced pricing after pilot
- 🏆 Competitive advantage

**What We Get:**
- ✅ Product validation
- 📊 Real usage data
- 🗣️ Testimonials
- 🤝 2-3 referrals
- 📈 Case study rights`},
					Callout{Kind: CalloutSuccess, Body: "**Target:** Secure 1-2 innovation partners by Week 6"},
				),
			),
		),
	}
}

func orgSetupPanel() Panel {
	return Panel{
		Heading: "Phase 1: Organizational Setup (Week 1)",
		Blocks: stack(
			cols(
				stack(
					Subheading{Text: "📧 Google Workspace Configuration"},
					Markdown{Source: `**Domain Setup**
- Register primary domain
- Configure email routing
- Set up 2FA for all accounts

**Shared Drive Structure**
~~~
/Development
/Compliance Docs
/Demo Materials
/Partner Feedback
/Legal & Contracts
~~~

**Document Templates**
- Partnership agreements
- NDAs
- Innovation partner terms
- Feedback collection forms
`},
				),
				stack(
					Subheading{Text: "🏗️ Key Infrastructure Decisions"},
					Table{Columns: []Column{
						strs("Decision", "Cloud Provider", "Database", "API Services", "Frontend", "Monitoring", "CI/CD"),
						strs("Options",
							"AWS vs GCP vs Azure",
							"PostgreSQL vs MongoDB",
							"Claude + OCR + Embeddings",
							"React vs Vue vs Angular",
							"DataDog vs New Relic",
							"GitHub Actions vs GitLab",
						),
						strs("Priority", "Critical", "Critical", "Critical", "High", "Medium", "Medium"),
					}},
					Callout{Kind: CalloutWarning, Body: "⚠️ **Action Required:** Cloud provider choice affects all downstream decisions"},
				),
			),
		),
	}
}

func teamPanel() Panel {
	return Panel{
		Heading: "Phase 2: Outsourced Team Engagement (Weeks 1-2)",
		Blocks: stack(
			cols(
				stack(
					Subheading{Text: "📝 Contract Components"},
					Markdown{Source: `**Scope of Work**
- Cloud infrastructure setup
- API integration framework
- Basic data pipeline
- Dev/staging environments
- Cost monitoring setup

**Timeline & Payment**
- 4-6 week initial engagement
- Milestone-based payments
- Option to extend for full build

**IP & Legal**
- All work product owned by company
- Standard NDA required
- Code review rights
`},
				),
				stack(
					Subheading{Text: "🚀 Kickoff Tasks"},
					Table{Columns: []Column{
						strs("Task",
							"Cloud platform access",
							"API keys provisioning",
							"Architecture review",
							"Development env setup",
							"Weekly sync schedule",
							"Code repository setup",
						),
						strs("Owner", "CTO", "CTO", "Both", "Team", "CTO", "Team"),
						nums("Day", 1, 1, 2, 3, 1, 2),
					}},
					Callout{Kind: CalloutInfo, Body: "💡 **Tip:** Set up daily standups for first week, then move to 3x/week"},
				),
			),
		),
	}
}

func partnerPanel() Panel {
	return Panel{
		Heading: "Phase 3: Partner Acquisition (Weeks 2-6) 🆕",
		Blocks: stack(
			Callout{Kind: CalloutSuccess, Body: "🎯 **Goal:** Secure 1-2 innovation partners BEFORE full build begins"},
			cols(
				stack(
					Subheading{Text: "📋 Target Partner Profile"},
					Markdown{Source: `**Must-Have Criteria**
- ✅ Processing 500+ contributions/month
- ✅ Multiple jurisdiction reporting
- ✅ Currently using 3+ FTEs for compliance
- ✅ Willing to provide weekly feedback

**Nice-to-Have**
- Industry thought leader
- Connected to other potential clients
- Willing to be public reference
- Has budget for solution (post-pilot)
`},
					Subheading{Text: "🎁 Innovation Partner Offer"},
					Callout{
						Kind:  CalloutHighlight,
						Title: "Partnership Terms",
						Body: `- **6 months free** usage during development
- **50% discount** for year 1 after launch
- **Priority support** and feature requests
- **Co-marketing** opportunities`,
					},
				),
				stack(
					Subheading{Text: "📊 Partner Commitments"},
					Markdown{Source: `**Time Investment**
- Weekly 30-min feedback sessions
- Monthly strategic review (1 hour)
- Access to compliance team for questions

**Data & Testing**
- Provide anonymized test data
- Side-by-side accuracy testing
- Real-world use case validation

**Growth Support**
- Case study participation
- 2-3 qualified referrals
- Speaking opportunities/webinars
`},
					Subheading{Text: "🔄 Outreach Process"},
					Table{Columns: []Column{
						strs("Week", "2", "3", "4", "5", "6"),
						strs("Activity",
							"Identify 20 targets",
							"Initial outreach (10)",
							"Demo meetings (5)",
							"Deep dives (3)",
							"Close 1-2 partners",
						),
						strs("Success Metric",
							"List complete",
							"50% response rate",
							"5 demos scheduled",
							"3 interested",
							"Terms signed",
						),
					}},
				),
			),
		),
	}
}
