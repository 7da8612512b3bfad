package lostfound

import (
	"strings"

	"github.com/adalundhe/hostelbuddy/core/extraction"
)

// ItemCategory classifies the item a query is about.
type ItemCategory string

const (
	// CategoryElectronics covers phones, laptops, chargers, and similar devices.
	CategoryElectronics ItemCategory = "electronics"
	// CategoryClothing covers garments, shoes, and wearable accessories.
	CategoryClothing ItemCategory = "clothing"
	// CategoryBooks covers textbooks, notebooks, and course materials.
	CategoryBooks ItemCategory = "books"
	// CategoryAccessories covers watches, jewelry, bags, and wallets.
	CategoryAccessories ItemCategory = "accessories"
	// CategoryDocuments covers ID cards, certificates, and important papers.
	CategoryDocuments ItemCategory = "documents"
	// CategoryKeys covers room, bike, locker, and vehicle keys.
	CategoryKeys ItemCategory = "keys"
	// CategoryOther covers items outside the named categories.
	CategoryOther ItemCategory = "other"
)

// Analysis is the structured reading of a lost/found query.
type Analysis struct {
	ItemCategory         ItemCategory
	IsLostItem           bool
	IsFoundItem          bool
	UrgencyLevel         string
	SuggestedSearchAreas []string
}

// Schema describes the fields the model must extract from a
// lost-and-found query.
var Schema = extraction.Schema{
	Name:        "lost_found_analysis",
	Description: "Analysis of lost or found item query",
	Fields: []extraction.Field{
		{
			Name:        "item_category",
			Description: "Category: electronics, clothing, books, accessories, documents, keys, or other",
			Enum:        []string{"electronics", "clothing", "books", "accessories", "documents", "keys", "other"},
			Required:    true,
		},
		{
			Name:        "is_lost_item",
			Description: "Is this about a LOST item? Yes or No",
			Required:    true,
		},
		{
			Name:        "is_found_item",
			Description: "Is this about a FOUND item? Yes or No",
			Required:    true,
		},
		{
			Name:        "urgency_level",
			Description: "Urgency: low, medium, high (high for important documents/electronics)",
			Enum:        []string{"low", "medium", "high"},
		},
		{
			Name:        "suggested_search_areas",
			Description: "Comma-separated list of areas to search based on item type and context",
		},
	},
}

// AnalysisFromResult maps an extraction result onto an Analysis.
func AnalysisFromResult(res extraction.Result) Analysis {
	var areas []string
	for _, area := range strings.Split(res.Get("suggested_search_areas"), ",") {
		if trimmed := strings.TrimSpace(area); trimmed != "" {
			areas = append(areas, trimmed)
		}
	}

	return Analysis{
		ItemCategory:         ItemCategory(strings.ToLower(res.Get("item_category"))),
		IsLostItem:           res.Flag("is_lost_item"),
		IsFoundItem:          res.Flag("is_found_item"),
		UrgencyLevel:         strings.ToLower(res.Get("urgency_level")),
		SuggestedSearchAreas: areas,
	}
}
