package domain

import "time"

// SortBy selects how search results are ordered.
type SortBy string

const (
	SortByRelevance      SortBy = "relevance"
	SortByDescendingDate SortBy = "descending_date"
	SortByAscendingDate  SortBy = "ascending_date"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortByRelevance, SortByDescendingDate, SortByAscendingDate:
		return true
	}
	return false
}

// Gazette is one published municipal official gazette as returned by search.
type Gazette struct {
	TerritoryID    string     `json:"territory_id"`
	Date           Date       `json:"date"`
	ScrapedAt      *time.Time `json:"scraped_at,omitempty"`
	URL            string     `json:"url"`
	TxtURL         *string    `json:"txt_url,omitempty"`
	FileChecksum   string     `json:"file_checksum"`
	TerritoryName  string     `json:"territory_name,omitempty"`
	StateCode      string     `json:"state_code,omitempty"`
	Excerpts       []string   `json:"excerpts"`
	Edition        *string    `json:"edition,omitempty"`
	IsExtraEdition *bool      `json:"is_extra_edition,omitempty"`
}

// GazetteRequest carries the filters of a gazette search.
type GazetteRequest struct {
	TerritoryIDs     []string
	PublishedSince   *Date
	PublishedUntil   *Date
	ScrapedSince     *time.Time
	ScrapedUntil     *time.Time
	Querystring      string
	ExcerptSize      int
	NumberOfExcerpts int
	PreTags          []string
	PostTags         []string
	Size             int
	Offset           int
	SortBy           SortBy
}
