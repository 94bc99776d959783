package content

import "github.com/preston-bernstein/money-dungeon-web/internal/domain"

// Link is a hero call-to-action button.
type Link struct {
	Label   string
	Href    string
	Primary bool
}

// HeroCopy is the copy of the hero banner and its quest card.
type HeroCopy struct {
	Brand      string
	Tagline    string
	Lead       string
	Actions    []Link
	QuestTitle string
	QuestSteps []string
	QuestNote  string
}

const (
	AnnouncementLead = "New lessons arriving soon. Last updated"
	FAQHeading       = "FAQ"
)

var hero = HeroCopy{
	Brand:   SiteName,
	Tagline: "Learn. Play. Prosper.",
	Lead:    "Turn financial literacy into an adventure. Play money learning games, follow step by step lessons, and build real world skills in budgeting, saving, credit, taxes, and investing.",
	Actions: []Link{
		{Label: "Play Money Games", Href: "#games", Primary: true},
		{Label: "Start Financial Lessons", Href: "#learn"},
	},
	QuestTitle: "Today’s Quest",
	QuestSteps: []string{
		"Set a simple 50-30-20 budget",
		"Calculate one month emergency fund",
		"Try a 60 second compound interest demo",
	},
	QuestNote: "No spam. Unsubscribe any time.",
}

// Hero returns the hero copy. Slices are shared and must not be modified.
func Hero() HeroCopy {
	return hero
}

var sections = buildSections()

// Sections returns the body sections between the hero and the FAQ, in render
// order. Section payloads are shared and must not be modified.
func Sections() []domain.Section {
	out := make([]domain.Section, len(sections))
	copy(out, sections)
	return out
}

func gameCards() []domain.Card {
	cards := make([]domain.Card, 0, len(games))
	for _, g := range games {
		cards = append(cards, domain.Card{Label: g.Name, Description: g.Description})
	}
	return cards
}

func buildSections() []domain.Section {
	return []domain.Section{
		{
			Kind: domain.SectionCards,
			Tone: domain.ToneEmerald,
			Cards: []domain.Card{
				{Label: "Game Based Learning", Description: "Interactive money games make budgeting, saving, and investing clear and memorable."},
				{Label: "Real World Skills", Description: "Set goals, track spending, read statements, and compare financial products with confidence."},
				{Label: "Short Lessons", Description: "Bite size guides and checklists that fit a busy day, with quizzes that reinforce key ideas."},
			},
		},
		{
			ID:      "games",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneAmber,
			Heading: "Money Learning Games",
			Intro:   "Learn by doing. These mini games teach the core of personal finance with immediate feedback and simple goals.",
			Cards:   gameCards(),
		},
		{
			ID:      "learn",
			Kind:    domain.SectionLessonPaths,
			Heading: "Financial Education Lessons",
			Intro:   "Follow structured learning paths. Each path includes short readings, checklists, and a quick quiz.",
			Groups: []domain.CardGroup{
				{Title: "Budgeting Basics", Items: []string{"50-30-20 rule", "Zero based budget", "Cash flow calendar"}},
				{Title: "Saving and Goals", Items: []string{"Emergency fund", "Sinking funds", "Automation checklist"}},
				{Title: "Debt and Credit", Items: []string{"APR vs. APY", "Credit utilization", "Payoff methods"}},
				{Title: "Investing 101", Items: []string{"Index funds", "Risk tolerance", "Time horizon"}},
				{Title: "Banking Smart", Items: []string{"Checking vs. savings", "Fees and interest", "Transfers and holds"}},
				{Title: "Taxes Simplified", Items: []string{"Income types", "Deductions basics", "Withholding overview"}},
			},
		},
		{
			ID:      "tools",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneEmerald,
			Heading: "Free Money Tools",
			Intro:   "Simple calculators and planners help you apply lessons right away. Export results and build a weekly habit.",
			Cards: []domain.Card{
				{Label: "Budget Planner", Description: "Track income, fixed costs, and flexible spending with savings targets."},
				{Label: "Interest Calculator", Description: "Compare simple and compound interest with monthly contributions."},
				{Label: "Debt Payoff Helper", Description: "Snowball vs. avalanche comparisons with timeline previews."},
			},
		},
		{
			ID:      "who",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneAmber,
			Heading: "Who Will Benefit",
			Cards: []domain.Card{
				{Label: "Students", Description: "Get clear on money basics before your first job. Build smart habits early."},
				{Label: "Busy Adults", Description: "Short lessons and quick wins that fit a packed week."},
				{Label: "Parents and Teachers", Description: "Use games and printables to teach financial literacy with confidence."},
			},
		},
		{
			ID:      "glossary",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneNeutral,
			Heading: "Money Glossary",
			Intro:   "Clear definitions help you read statements, compare offers, and make decisions.",
			Cards: []domain.Card{
				{Label: "APR", Description: "The yearly cost of borrowing, including interest and some fees."},
				{Label: "APY", Description: "The yearly rate of return that accounts for compounding."},
				{Label: "Principal", Description: "The original amount of money borrowed or invested."},
				{Label: "Asset Allocation", Description: "The mix of investments that balances risk and return."},
			},
		},
		{
			Kind: domain.SectionHighlights,
			Highlights: []domain.Highlight{
				{Headline: "Practical", Caption: "Action steps you can use today"},
				{Headline: "Understandable", Caption: "Plain language and real examples"},
				{Headline: "Flexible", Caption: "Short sessions and steady progress"},
			},
		},
		{
			ID:      "budget-methods",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneEmerald,
			Heading: "Budget Methods Compared",
			Intro:   "Learn the difference between the 50-30-20 rule, zero based budgeting, envelope budgeting, and pay-yourself-first. Pick a method that matches your income, fixed expenses, and savings goals.",
			Cards: []domain.Card{
				{Label: "50-30-20", Description: "Simple split of needs, wants, and savings. Great for beginners."},
				{Label: "Zero Based", Description: "Give every dollar a job. Strong control for variable spending."},
				{Label: "Envelopes", Description: "Allocate by category. Visual guardrails for groceries and dining."},
				{Label: "Pay Yourself First", Description: "Automate savings at payday. Build emergency funds faster."},
			},
		},
		{
			ID:      "compound-interest",
			Kind:    domain.SectionBullets,
			Heading: "Compound Interest, APY, and Growth",
			Intro:   "Understand how principal, rate, compounding frequency, and time work together. Compare APY vs APR and see why starting early matters for long term goals.",
			Bullets: []string{
				"Simple vs compound interest with monthly deposits",
				"APY and compounding frequency explained",
				"Inflation and real return basics",
			},
			Tip: "Quick tip: automate a small recurring transfer to capture compounding without decision fatigue.",
		},
		{
			ID:      "credit-score",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneAmber,
			Heading: "Credit Score Factors and Healthy Habits",
			Intro:   "Build a strong credit profile by focusing on payment history, utilization, age of accounts, mix of credit, and new inquiries.",
			Cards: []domain.Card{
				{Label: "Payment History", Description: "On time payments protect score strength."},
				{Label: "Utilization", Description: "Keep balances below 30 percent of limits."},
				{Label: "Age", Description: "Older accounts help; avoid unnecessary closures."},
				{Label: "Mix", Description: "Installment and revolving accounts add depth."},
				{Label: "Inquiries", Description: "Batch rate shopping within short windows."},
			},
		},
		{
			ID:      "taxes-basics",
			Kind:    domain.SectionBullets,
			Heading: "Taxes Made Simple",
			Intro:   "Learn income types, filing status, deductions vs credits, and withholding. Understand how marginal brackets work and why tax planning is part of a good budget.",
			Bullets: []string{
				"W-2, 1099, and interest income at a glance",
				"Standard deduction vs itemizing",
				"Refunds, balances due, and paycheck adjustments",
			},
		},
		{
			ID:      "investing-myths",
			Kind:    domain.SectionMythFacts,
			Heading: "Investing Myths vs Facts",
			Intro:   "Clear up common misunderstandings about risk, diversification, time horizon, and fees. Use low cost, diversified approaches that match your goals.",
			Pairs: []domain.MythFact{
				{
					Myth: "You need a lot of money to start investing.",
					Fact: "Small automated contributions build real balances over time through compounding.",
				},
				{
					Myth: "Timing the market is required for success.",
					Fact: "Time in the market and diversification matter more than perfect entry points.",
				},
			},
		},
		{
			ID:      "financial-safety",
			Kind:    domain.SectionBullets,
			Heading: "Financial Safety and Fraud Prevention",
			Intro:   "Protect accounts and identity with simple safeguards. Review statements, use strong passwords, and recognize common scam patterns.",
			Bullets: []string{
				"Two factor authentication and secure password managers",
				"Freeze credit when not applying for new credit",
				"Verify senders and avoid urgent payment requests",
			},
		},
		{
			ID:      "kids-teens",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneAmber,
			Heading: "Kids and Teens Money Lab",
			Intro:   "Fun activities that teach earning, saving, sharing, and smart spending. Use allowance trackers, goal jars, and simple interest games.",
			Cards: []domain.Card{
				{Label: "Allowance Tracker", Description: "Connect chores to goals and savings."},
				{Label: "Goal Jar Game", Description: "Split between spend, save, and give."},
				{Label: "Mini Market", Description: "Practice price comparison and change."},
			},
		},
		{
			ID:      "classroom",
			Kind:    domain.SectionBullets,
			Heading: "Classroom Resources for Financial Literacy",
			Intro:   "Ready to use lesson outlines, printable worksheets, and quick quizzes that help teachers introduce budgeting, saving, credit, and investing.",
			Bullets: []string{
				"Bell-ringer warmups and exit tickets",
				"Group budgeting challenges with roles",
				"Rubrics and answer keys for fast grading",
			},
		},
		{
			ID:      "money-habits",
			Kind:    domain.SectionCallout,
			Heading: "Money Habits Playbook",
			Intro:   "Build consistent habits that lower stress and improve savings. Use automation, weekly reviews, and small guardrails that prevent overspending.",
			Tip:     "Starter habits: schedule a 10 minute money check every Sunday, then raise your automated transfer by one percent after each paycheck.",
		},
		{
			ID:      "banking-fees",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneEmerald,
			Heading: "Smart Banking and Lower Fees",
			Intro:   "Learn how checking, savings, and high-yield accounts work. Spot common fees and choose features that match your habits.",
			Cards: []domain.Card{
				{Label: "Direct Deposit", Description: "Faster access to paychecks and easy automation."},
				{Label: "ATM Network", Description: "Reduce out-of-network fees with partner access."},
				{Label: "Alerts", Description: "Balance and transaction alerts prevent overdrafts."},
			},
		},
		{
			ID:      "glossary-extended",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneNeutral,
			Heading: "Money Glossary, Extended",
			Cards: []domain.Card{
				{Label: "Emergency Fund", Description: "Cash buffer for surprise expenses and income gaps."},
				{Label: "Dollar-Cost Averaging", Description: "Invest fixed amounts on a schedule to reduce timing risk."},
				{Label: "Expense Ratio", Description: "Annual fund fee that reduces your return."},
				{Label: "Sinking Fund", Description: "Save for known future costs like travel or car repairs."},
			},
		},
		{
			ID:      "roadmap",
			Kind:    domain.SectionCallout,
			Heading: "Editorial Roadmap",
			Intro:   "Coming soon: interactive quizzes, printable planners, video walkthroughs, and deeper guides on budgeting, credit scores, index funds, and tax basics.",
			Tip:     "Check the Money Learning Games section for new releases and updates.",
		},
		{
			ID:      "debt-management",
			Kind:    domain.SectionBullets,
			Heading: "Debt Management and Payoff Strategies",
			Intro:   "Learn how to reduce debt stress and save money on interest. Compare the snowball and avalanche methods, balance transfers, and refinancing options.",
			Bullets: []string{
				"Snowball: pay off smallest debts first for quick wins",
				"Avalanche: tackle highest interest rates to save more",
				"Consolidation and balance transfer cards explained",
			},
		},
		{
			ID:      "retirement",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneEmerald,
			Heading: "Retirement Accounts and Planning",
			Intro:   "Understand the basics of 401(k), IRA, and Roth IRA accounts. Learn about employer matches, contribution limits, and early withdrawal penalties.",
			Cards: []domain.Card{
				{Label: "401(k)", Description: "Employer sponsored plan, often includes matching contributions."},
				{Label: "Traditional IRA", Description: "Tax deferred contributions with income phaseouts."},
				{Label: "Roth IRA", Description: "Tax free growth and withdrawals in retirement."},
			},
		},
		{
			ID:      "side-hustles",
			Kind:    domain.SectionBullets,
			Heading: "Side Hustles and Income Growth",
			Intro:   "Boost your income with part-time work, freelancing, or digital projects. Use extra cash to accelerate savings, pay down debt, or invest.",
			Bullets: []string{
				"Freelance services like writing, design, or tutoring",
				"Reselling and e-commerce basics",
				"Small business tax considerations",
			},
		},
		{
			ID:      "emergency-prep",
			Kind:    domain.SectionCallout,
			Heading: "Emergency Funds and Preparedness",
			Intro:   "Build a financial safety net for medical bills, job loss, or unexpected repairs. Start small and grow toward three to six months of expenses.",
			Tip:     "Tip: automate a fixed transfer every payday into a separate high-yield savings account.",
		},
		{
			ID:      "insurance",
			Kind:    domain.SectionBullets,
			Heading: "Insurance and Risk Management",
			Intro:   "Learn how health, auto, home, renters, and life insurance work. Protect your savings by transferring large risks to affordable policies.",
			Bullets: []string{
				"Deductibles and premiums explained",
				"When term life insurance makes sense",
				"Why renters insurance is affordable protection",
			},
		},
		{
			ID:      "inflation",
			Kind:    domain.SectionCallout,
			Heading: "Inflation and Buying Power",
			Intro:   "See how inflation reduces the value of money over time. Learn strategies to protect purchasing power with interest bearing accounts and investments.",
			Tip:     "Inflation example: $100 today may buy only $82 of goods ten years later at 2% annual inflation.",
		},
		{
			ID:      "student-loans",
			Kind:    domain.SectionBullets,
			Heading: "College Costs and Student Loan Strategies",
			Intro:   "Compare federal vs private loans, repayment plans, and forgiveness programs. Learn how to lower costs with scholarships, grants, and community college transfers.",
			Bullets: []string{
				"Income driven repayment explained",
				"Public Service Loan Forgiveness basics",
				"Interest subsidies and deferment rules",
			},
		},
		{
			ID:      "advanced-investing",
			Kind:    domain.SectionCards,
			Tone:    domain.ToneAmber,
			Heading: "Advanced Investing Concepts",
			Intro:   "Move beyond the basics with diversification, asset allocation, ETFs, and rebalancing. Understand risk vs return and how to plan long term.",
			Cards: []domain.Card{
				{Label: "ETFs", Description: "Low-cost funds that track indexes with built-in diversification."},
				{Label: "Rebalancing", Description: "Adjust allocations back to targets as markets shift."},
				{Label: "Risk Tolerance", Description: "Match investments to your age, goals, and comfort."},
			},
		},
		{
			ID:      "teens",
			Kind:    domain.SectionBullets,
			Heading: "Financial Literacy for Teens",
			Intro:   "Lessons on budgeting allowance, opening a first bank account, using debit safely, and avoiding debt traps. Build lifelong habits early.",
			Bullets: []string{
				"Set savings goals with clear timelines",
				"Learn basics of credit before college",
				"Track spending with simple apps or journals",
			},
		},
		{
			Kind:    domain.SectionCallToAction,
			Heading: "Start your money quest",
			Intro:   "Play a game, take a lesson, and make one smart change this week.",
		},
	}
}
