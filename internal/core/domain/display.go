package domain

import "time"

type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Region names of the homepage.
const (
	RegionNewCollection = "new_collection"
	RegionProducts      = "products"
	RegionContact       = "contact"
)

type (
	// A DisplayItem is one card of a storefront grid.
	DisplayItem struct {
		ID       string
		Name     string
		Price    string
		Category string
		Image    string
		Alt      string
		Link     string
		Rating   string
	}

	// A DisplaySet is the content of one grid: either the live products
	// or the static fallback items, never both.
	DisplaySet struct {
		Source   Source
		Items    []DisplayItem
		Products []Product
	}

	ShowcaseItem struct {
		Title       string
		Description string
		Image       string
	}

	HomePage struct {
		NewCollection DisplaySet
		Products      DisplaySet
		Contact       ContactChannel
		Showcase      []ShowcaseItem
	}
)

type Outcome string

const (
	OutcomeLive   Outcome = "live"
	OutcomeEmpty  Outcome = "empty"
	OutcomeFailed Outcome = "failed"
)

// A QueryOutcome describes how a single region read ended.
type QueryOutcome struct {
	Region     string
	Outcome    Outcome
	Count      int
	Duration   time.Duration
	ObservedAt time.Time
}

// RegionStats counts outcomes of a region.
type RegionStats struct {
	Region string
	Live   int64
	Empty  int64
	Failed int64
}
