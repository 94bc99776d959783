package content

import "github.com/preston-bernstein/money-dungeon-web/internal/domain"

var faqs = []domain.FAQEntry{
	{
		Question: "What is Money Dungeon?",
		Answer:   "An educational site with money learning games and step by step lessons on budgeting, saving, investing, credit, taxes, and personal finance basics.",
	},
	{
		Question: "Who is it for?",
		Answer:   "Beginners, students, and busy adults who want practical, bite size financial literacy. Parents and teachers can use it in class or at home.",
	},
	{
		Question: "Are the games free?",
		Answer:   "Yes. Core games and lessons are free. Premium printables and extended challenges may arrive later.",
	},
	{
		Question: "What will I learn first?",
		Answer:   "Budget setup, emergency fund planning, debt payoff methods, how interest works, and how to compare savings and investment options.",
	},
}

var games = []domain.Game{
	{Name: "Budget Boss", Description: "Create a monthly plan, sort needs and wants, and keep savings on track."},
	{Name: "Save the Treasure", Description: "Build an emergency fund by balancing fixed bills and variable expenses."},
	{Name: "Interest Quest", Description: "See how simple and compound interest grow money across months and years."},
	{Name: "Credit Score Climb", Description: "Make on time payments, manage utilization, and handle credit safely."},
	{Name: "Tax Trail", Description: "Understand income, deductions, and basic filing choices with clean examples."},
	{Name: "Investors’ Lab", Description: "Compare risk and reward, diversify, and test long term thinking."},
}

// FAQs returns a copy of the FAQ table in display order.
func FAQs() []domain.FAQEntry {
	out := make([]domain.FAQEntry, len(faqs))
	copy(out, faqs)
	return out
}

// Games returns a copy of the game cards in display order.
func Games() []domain.Game {
	out := make([]domain.Game, len(games))
	copy(out, games)
	return out
}

// GameListings derives the ItemList entries from the game cards so both views
// share one ordering.
func GameListings() []domain.GameListing {
	out := make([]domain.GameListing, 0, len(games))
	for _, g := range games {
		out = append(out, domain.GameListing{Name: g.Name})
	}
	return out
}
