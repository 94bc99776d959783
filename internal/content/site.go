// Package content holds the literal copy of the landing page. Every table is
// built once at package init and must be treated as read-only.
package content

const (
	SiteName    = "Money Dungeon"
	SiteURL     = "https://moneydungeon.com/"
	Title       = "Money Dungeon | Money Learning Games and Financial Education"
	Description = "Money Dungeon offers fun money learning games and practical financial education. Learn budgeting, saving, investing, credit, taxes, and personal finance basics with interactive lessons and quizzes."
	Keywords    = "money games, money learning games, financial education, personal finance, budgeting, saving, investing, credit score, taxes, compound interest, kids finance, teen money, financial literacy"
	Robots      = "index, follow, max-image-preview:large"
	ThemeColor  = "#0E7A5F"

	OGImagePath = "og-image.jpg"
	LogoPath    = "logo.png"

	GamesListName = "Money Learning Games"

	// FooterFallback is shown when the environment provides no message.
	FooterFallback = "Built for clear financial literacy"
)

// OGImageURL is the absolute Open Graph image location.
func OGImageURL() string {
	return SiteURL + OGImagePath
}

// LogoURL is the absolute organization logo location.
func LogoURL() string {
	return SiteURL + LogoPath
}

// SearchTarget is the WebSite SearchAction URL template.
func SearchTarget() string {
	return SiteURL + "?q={search_term_string}"
}
