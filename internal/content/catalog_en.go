package content

var catalogEN = Catalog{
	HowItWorks: []Item{
		{OrderLabel: "01", Title: "Upload Your Photos", Description: "Photograph every room and send everything through the platform in minutes, straight from your phone.", Icon: "📸"},
		{OrderLabel: "02", Title: "AI Analyzes the Property", Description: "Mariah identifies rooms, materials and the condition of every item in your photos.", Icon: "🤖"},
		{OrderLabel: "03", Title: "Professional Report Generated", Description: "Get a complete, standardized inspection report ready for review and signature.", Icon: "📄"},
		{OrderLabel: "04", Title: "Download and Share", Description: "Export to PDF and share with owners, tenants and agencies in one click.", Icon: "📤"},
	},
	Features: []Item{
		{Title: "Reports in Minutes", Description: "What used to take hours of typing is ready while you are still at the property.", Icon: "⚡"},
		{Title: "Detailed AI Analysis", Description: "Every photo is described with room, finishes and any damage found.", Icon: "🎯"},
		{Title: "Move-in and Move-out", Description: "Ready-made templates for both ends of a lease, with the same quality bar.", Icon: "🏠"},
		{Title: "Automatic Comparison", Description: "Compare move-out against move-in and highlight what changed.", Icon: "📊"},
		{Title: "Protected Data", Description: "Photos and reports are stored encrypted and only your team can access them.", Icon: "🔒"},
		{Title: "Built for Mobile", Description: "The whole inspection happens in your phone's browser, nothing to install.", Icon: "📱"},
	},
	Plans: []Plan{
		{
			Name:        "Single",
			PriceMinor:  4990,
			Currency:    "BRL",
			Period:      "per report",
			Description: "For agents who run an inspection every now and then.",
			Features:    []string{"1 complete report", "Unlimited photos", "PDF export"},
			CTALabel:    "Get started",
		},
		{
			Name:        "Professional",
			PriceMinor:  19900,
			Currency:    "BRL",
			Period:      "per month",
			Description: "For inspectors who need speed every single day.",
			Features:    []string{"Up to 20 reports a month", "Move-in/move-out comparison", "Your brand on the report", "Priority support"},
			Highlight:   true,
			CTALabel:    "Go Professional",
		},
		{
			Name:        "Agency",
			PriceMinor:  49900,
			Currency:    "BRL",
			Period:      "per month",
			Description: "For teams managing whole property portfolios.",
			Features:    []string{"Unlimited reports", "Multiple users", "Portfolio dashboard", "Dedicated account manager"},
			CTALabel:    "Talk to sales",
		},
	},
	CTA: []Item{
		{Title: "No credit card", Description: "Create your account and generate your first report with no strings attached.", Icon: "💳"},
		{Title: "Ready in minutes", Description: "From photo upload to final PDF in under ten minutes.", Icon: "⏱️"},
		{Title: "Cancel anytime", Description: "No lock-in and no fees.", Icon: "✅"},
	},
	FAQ: []FAQEntry{
		{
			Question: "Is the report generated by Mariah valid?",
			Answer:   "Yes. The report follows the format used by the market and can be **reviewed and signed** by the inspector before it is attached to the lease.",
		},
		{
			Question: "How many photos can I upload?",
			Answer:   "There is no limit per report. We recommend:\n\n- one overview photo per room\n- close-ups of every damage",
		},
		{
			Question: "Do I need to install an app?",
			Answer:   "No. Mariah runs in the browser on your phone or computer.",
		},
		{
			Question: "How does cancellation work?",
			Answer:   "Cancel at any time under *My Account*. Your plan stays active until the end of the paid period.",
		},
	},
}
