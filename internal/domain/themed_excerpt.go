package domain

import "time"

// ThemedExcerpt is a span of a gazette classified under a theme.
type ThemedExcerpt struct {
	ExcerptID      string     `json:"excerpt_id"`
	Theme          string     `json:"theme"`
	TerritoryID    string     `json:"territory_id"`
	Date           Date       `json:"date"`
	ScrapedAt      *time.Time `json:"scraped_at,omitempty"`
	URL            string     `json:"url"`
	TxtURL         *string    `json:"txt_url,omitempty"`
	TerritoryName  string     `json:"territory_name,omitempty"`
	StateCode      string     `json:"state_code,omitempty"`
	Edition        *string    `json:"edition,omitempty"`
	IsExtraEdition *bool      `json:"is_extra_edition,omitempty"`
	Subthemes      []string   `json:"subthemes"`
	Entities       []string   `json:"entities"`
	Excerpt        string     `json:"excerpt"`
}

// ThemedExcerptRequest carries the filters of a search inside one theme.
type ThemedExcerptRequest struct {
	Theme          string
	Entities       []string
	Subthemes      []string
	TerritoryIDs   []string
	PublishedSince *Date
	PublishedUntil *Date
	ScrapedSince   *time.Time
	ScrapedUntil   *time.Time
	Querystring    string
	PreTags        []string
	PostTags       []string
	Size           int
	Offset         int
	SortBy         SortBy
}

// Entity groups the instances of one entity category of a theme.
type Entity struct {
	Type            string   `json:"type"`
	TypeDescription string   `json:"type_description"`
	Instances       []string `json:"instances"`
}
