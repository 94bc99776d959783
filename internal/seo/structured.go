package seo

import (
	"encoding/json"

	"github.com/preston-bernstein/money-dungeon-web/internal/content"
	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
)

const schemaContext = "https://schema.org"

// StructuredData is the JSON-LD document embedded in the page.
type StructuredData struct {
	Context string `json:"@context"`
	Graph   []any  `json:"@graph"`
}

type WebSite struct {
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	PotentialAction SearchAction `json:"potentialAction"`
}

type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo string `json:"logo"`
}

type FAQPage struct {
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type ItemList struct {
	Type            string     `json:"@type"`
	Name            string     `json:"name"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
}

// BuildStructuredData assembles the WebSite, Organization, FAQPage and
// ItemList nodes. FAQ and game order is preserved; positions start at 1.
func BuildStructuredData(faqs []domain.FAQEntry, games []domain.GameListing) StructuredData {
	return StructuredData{
		Context: schemaContext,
		Graph: []any{
			WebSite{
				Type: "WebSite",
				Name: content.SiteName,
				URL:  content.SiteURL,
				PotentialAction: SearchAction{
					Type:       "SearchAction",
					Target:     content.SearchTarget(),
					QueryInput: "required name=search_term_string",
				},
			},
			Organization{
				Type: "Organization",
				Name: content.SiteName,
				URL:  content.SiteURL,
				Logo: content.LogoURL(),
			},
			faqPage(faqs),
			itemList(content.GamesListName, games),
		},
	}
}

// SiteStructuredData builds the graph from the site content tables.
func SiteStructuredData() StructuredData {
	return BuildStructuredData(content.FAQs(), content.GameListings())
}

func faqPage(faqs []domain.FAQEntry) FAQPage {
	questions := make([]Question, 0, len(faqs))
	for _, f := range faqs {
		questions = append(questions, Question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
		})
	}
	return FAQPage{Type: "FAQPage", MainEntity: questions}
}

func itemList(name string, games []domain.GameListing) ItemList {
	items := make([]ListItem, 0, len(games))
	for i, g := range games {
		items = append(items, ListItem{Type: "ListItem", Position: i + 1, Name: g.Name})
	}
	return ItemList{Type: "ItemList", Name: name, ItemListElement: items}
}

// Marshal encodes the graph. encoding/json escapes <, > and & so the output
// can sit inside a script element.
func (d StructuredData) Marshal() ([]byte, error) {
	return json.Marshal(d)
}
