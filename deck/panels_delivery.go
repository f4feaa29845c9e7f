package deck

func demoPanel() Panel {
	return Panel{
		Heading: "Phase 4: CTO-Led Demo Development (Weeks 2-6)",
		Blocks: stack(
			Callout{Kind: CalloutInfo, Body: "📌 **Note:** Demo development runs parallel with partner acquisition"},
			cols(
				stack(
					Subheading{Text: "🎯 Core AI Showcase Features"},
					Markdown{Source: `**Processing Pipeline Demo**
1. Upload contribution check (PDF/Image)
2. OCR extraction with confidence scores
3. Automated data validation
4. Multi-jurisdiction compliance check
5. Generate formatted reports

**Intelligence Features**
- RAG-powered Q&A on regulations
- Political activity classification
- Anomaly detection
- Trend analysis
`},
					Subheading{Text: "📊 Mock Visualizations"},
					Markdown{Source: `- Processing speed comparison chart
- Compliance dashboard (multi-state)
- Risk scoring heatmap
- Monthly trend analysis
- Audit trail viewer
`},
				),
				stack(
					Subheading{Text: "🗂️ Demo Data Strategy"},
					Table{Columns: []Column{
						strs("Data Type",
							"Sample contributions",
							"Jurisdiction rules",
							"Test scenarios",
							"Error cases",
							"Edge cases",
						),
						strs("Quantity",
							"20-30 samples",
							"4 states",
							"10 scenarios",
							"5 common errors",
							"5 edge cases",
						),
						strs("Purpose",
							"Show variety",
							"Prove flexibility",
							"Validate accuracy",
							"Error handling",
							"Robustness",
						),
					}},
					Callout{Kind: CalloutWarning, Body: "⚠️ **Important:** Pre-compute results for smooth demo flow"},
					Subheading{Text: "🎨 Demo Flow (30 min)"},
					Markdown{Source: `1. **Problem Statement** (3 min)
2. **Live Processing Demo** (10 min)
3. **Compliance Q&A** (5 min)
4. **Dashboard Tour** (5 min)
5. **ROI Discussion** (5 min)
6. **Q&A** (2 min)
`},
				),
			),
		),
	}
}

func buildPanel() Panel {
	return Panel{
		Heading: "Phase 5: Full Application Build (Weeks 8-20)",
		Blocks: stack(
			Callout{Kind: CalloutSuccess, Body: "✅ **Prerequisites:** Innovation partner(s) secured with clear requirements"},
			cols(
				stack(
					Subheading{Text: "🏗️ Production Pipeline"},
					Markdown{Source: `**Core Processing System**
- Robust file ingestion (all formats)
- Production-grade OCR pipeline
- Data validation & cleansing
- Error handling & retry logic

**Compliance Engine**
- Multi-jurisdiction rule engine
- RAG implementation at scale
- Classification models
- Audit trail generation

**Reporting System**
- Automated report generation
- Custom templates per jurisdiction
- Export capabilities (PDF, Excel, API)
- Scheduled reporting
`},
				),
				stack(
					Subheading{Text: "⚙️ Infrastructure Scaling"},
					Markdown{Source: `**Performance & Reliability**
- Auto-scaling for variable loads
- Queue management for peaks
- Database optimization
- Caching strategy

**Security & Compliance**
- SOC 2 preparation
- Data encryption at rest/transit
- Access control & audit logs
- GDPR/CCPA compliance

**Monitoring & Operations**
- Real-time performance monitoring
- Alert system setup
- Backup & disaster recovery
- Cost optimization
`},
				),
			),
			Subheading{Text: "📅 Build Sprint Plan"},
			Table{Columns: []Column{
				strs("Sprint", "Sprint 1", "Sprint 2", "Sprint 3", "Sprint 4", "Sprint 5", "Sprint 6"),
				strs("Weeks", "8-10", "10-12", "12-14", "14-16", "16-18", "18-20"),
				strs("Focus",
					"Core pipeline & infrastructure",
					"Compliance engine & RAG",
					"Partner integrations",
					"Reporting & visualizations",
					"Performance & security",
					"Testing & refinement",
				),
				strs("Partner Checkpoint",
					"Data format validation",
					"Rule accuracy review",
					"Integration testing",
					"Report format approval",
					"UAT begins",
					"Final sign-off",
				),
			}},
		),
	}
}

func pilotPanel() Panel {
	return Panel{
		Heading: "Phase 6: Partner Pilot Program (Weeks 18-22)",
		Blocks: stack(
			cols(
				stack(
					Subheading{Text: "🚀 Pilot Structure"},
					Markdown{Source: `**Week 18-19: Soft Launch**
- Single jurisdiction focus
- Side-by-side with manual process
- Daily accuracy checks
- Immediate issue resolution

**Week 20-21: Expansion**
- Add additional jurisdictions
- Increase volume gradually
- Reduce manual oversight
- Performance optimization

**Week 22: Full Production**
- All jurisdictions live
- Manual process phased out
- Full automation active
- Success metrics achieved
`},
				),
				stack(
					Subheading{Text: "📊 Success Criteria"},
					Table{Columns: []Column{
						strs("Metric",
							"Processing Speed",
							"Accuracy Rate",
							"System Uptime",
							"User Satisfaction",
							"Cost Reduction",
						),
						strs("Target", "<30 seconds", ">95%", ">99%", ">4.5/5", ">70%"),
						strs("Measurement",
							"Per contribution",
							"vs manual audit",
							"Weekly average",
							"NPS survey",
							"vs current FTE cost",
						),
					}},
					Subheading{Text: "🏆 Pilot Deliverables"},
					Markdown{Source: `- ✅ Performance report
- ✅ ROI analysis
- ✅ Case study draft
- ✅ Reference agreement
- ✅ Testimonial video
- ✅ 2-3 warm referrals
`},
				),
			),
		),
	}
}

func timelinePanel() Panel {
	return Panel{
		Heading: "📊 Integrated Timeline",
		Blocks: stack(
			Callout{Kind: CalloutHighlight, Title: "🔄 Revised Timeline with Early Partner Engagement"},
			Table{Columns: []Column{
				strs("Phase",
					"Org Setup",
					"Team Contracts",
					"Partner Outreach",
					"Demo Development",
					"Partner Selection",
					"Full Build",
					"Pilot Program",
					"Production Launch",
				),
				nums("Start Week", 1, 1, 2, 2, 5, 8, 18, 24),
				nums("End Week", 1, 2, 6, 6, 6, 20, 22, 24),
				nums("Duration", 1, 2, 5, 5, 2, 13, 5, 1),
				strs("Owner", "CTO", "CTO", "CTO/Sales", "CTO/Team", "CTO", "Team/CTO", "Partner/Team", "All"),
			}},
			cols(
				stack(Metric{Label: "Total Duration", Value: "24 weeks", Delta: "~6 months"}),
				stack(Metric{Label: "Partner Secured By", Value: "Week 6", Delta: "Before full build"}),
				stack(Metric{Label: "Production Launch", Value: "Week 24", Delta: "With case study"}),
			),
			Subheading{Text: "🎯 Critical Milestones"},
			Table{Columns: []Column{
				nums("Week", 1, 2, 6, 8, 18, 24),
				strs("Milestone",
					"Infrastructure decision made",
					"Outsourced team onboarded",
					"Innovation partner(s) secured",
					"Full build begins with requirements",
					"Pilot program starts",
					"Production launch with testimonials",
				),
				strs("Success Criteria",
					"Cloud platform selected",
					"First code committed",
					"Contracts signed",
					"Requirements documented",
					"Partner using system",
					"Case study published",
				),
			}},
		),
	}
}

func budgetPanel() Panel {
	return Panel{
		Heading: "💰 Budget Considerations",
		Blocks: stack(
			cols(
				stack(
					Subheading{Text: "📊 Cost Breakdown"},
					Table{Columns: []Column{
						strs("Category",
							"Outsourced Dev Team",
							"Infrastructure/APIs",
							"Legal (contracts)",
							"Demo Development",
							"Marketing/Sales",
							"Buffer (20%)",
						),
						strs("Monthly Cost", "$20,000", "$4,000", "-", "$2,000", "$3,000", "$6,000"),
						strs("6-Month Total", "$120,000", "$24,000", "$8,000", "$6,000", "$18,000", "$35,000"),
					}},
					Metric{Label: "Total 6-Month Budget", Value: "$211,000", Delta: "Including 20% buffer"},
				),
				stack(
					Subheading{Text: "💡 ROI Projections"},
					Markdown{Source: `**Cost Savings for Partners**
- Current: 3 FTEs @ $180k/year = $540k
- With Platform: $60k/year
- **Annual Savings: $480k**

**Revenue Projections**
- Innovation Partners: 2 @ $0 (6 months)
- Year 1 Customers: 10 @ $60k = $600k
- Year 2 Target: 50 @ $60k = $3M

**Break-even: Month 8**
`},
					Callout{Kind: CalloutSuccess, Body: "💰 **Payback Period:** <4 months after launch"},
				),
			),
			Subheading{Text: "🎯 Immediate Action Items"},
			Markdown{Source: `1. **Today:** Choose cloud provider (AWS/GCP/Azure)
2. **This Week:** Finalize outsourced team contract
3. **This Week:** Create target partner list (20 organizations)
4. **Next Week:** Begin partner outreach campaign
5. **Next Week:** Start demo development sprint
`},
		),
	}
}
