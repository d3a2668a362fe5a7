package httphandler

import "github.com/niksmo/storefront/internal/core/domain"

type (
	HomePage struct {
		NewCollection DisplaySet     `json:"new_collection"`
		Products      DisplaySet     `json:"products"`
		Contact       ContactChannel `json:"contact"`
		Showcase      []ShowcaseItem `json:"showcase"`
	}

	DisplaySet struct {
		Source string        `json:"source"`
		Items  []DisplayItem `json:"items"`
	}

	DisplayItem struct {
		ID       string `json:"id,omitempty"`
		Name     string `json:"name"`
		Price    string `json:"price"`
		Category string `json:"category"`
		Image    string `json:"image"`
		Alt      string `json:"alt"`
		Link     string `json:"link,omitempty"`
		Rating   string `json:"rating,omitempty"`
	}

	ShowcaseItem struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}

	ContactChannel struct {
		Available bool   `json:"available"`
		Number    string `json:"number,omitempty"`
		Link      string `json:"link,omitempty"`
		Notice    string `json:"notice,omitempty"`
	}

	RegionStats struct {
		Region string `json:"region"`
		Live   int64  `json:"live"`
		Empty  int64  `json:"empty"`
		Failed int64  `json:"failed"`
	}
)

func fromHomePage(p domain.HomePage) HomePage {
	showcase := make([]ShowcaseItem, len(p.Showcase))
	for i, s := range p.Showcase {
		showcase[i] = ShowcaseItem(s)
	}
	return HomePage{
		NewCollection: fromDisplaySet(p.NewCollection),
		Products:      fromDisplaySet(p.Products),
		Contact:       fromContact(p.Contact),
		Showcase:      showcase,
	}
}

func fromDisplaySet(s domain.DisplaySet) DisplaySet {
	items := make([]DisplayItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = DisplayItem(item)
	}
	return DisplaySet{Source: string(s.Source), Items: items}
}

func fromContact(c domain.ContactChannel) ContactChannel {
	return ContactChannel(c)
}

func fromRegionStats(vs []domain.RegionStats) []RegionStats {
	stats := make([]RegionStats, len(vs))
	for i, v := range vs {
		stats[i] = RegionStats(v)
	}
	return stats
}
