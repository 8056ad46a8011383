package dto

import (
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
)

const (
	DefaultExcerptSize      = 500
	DefaultNumberOfExcerpts = 1
	DefaultSize             = 10
	DefaultOffset           = 0
	DefaultSortBy           = domain.SortByRelevance
)

// DefaultTags is the highlight delimiter used when the caller sends none.
var DefaultTags = []string{""}

// GazetteQuery holds the validated query parameters of GET /gazettes.
type GazetteQuery struct {
	TerritoryIDs     []string
	PublishedSince   *domain.Date
	PublishedUntil   *domain.Date
	ScrapedSince     *time.Time
	ScrapedUntil     *time.Time
	Querystring      string
	ExcerptSize      int
	NumberOfExcerpts int
	PreTags          []string
	PostTags         []string
	Size             int
	Offset           int
	SortBy           domain.SortBy
}

func NewGazetteQuery() GazetteQuery {
	return GazetteQuery{
		ExcerptSize:      DefaultExcerptSize,
		NumberOfExcerpts: DefaultNumberOfExcerpts,
		PreTags:          DefaultTags,
		PostTags:         DefaultTags,
		Size:             DefaultSize,
		Offset:           DefaultOffset,
		SortBy:           DefaultSortBy,
	}
}

// ThemedExcerptQuery holds the validated query parameters of GET /gazettes/by_theme/{theme}.
type ThemedExcerptQuery struct {
	Entities       []string
	Subthemes      []string
	TerritoryIDs   []string
	PublishedSince *domain.Date
	PublishedUntil *domain.Date
	ScrapedSince   *time.Time
	ScrapedUntil   *time.Time
	Querystring    string
	PreTags        []string
	PostTags       []string
	Size           int
	Offset         int
	SortBy         domain.SortBy
}

func NewThemedExcerptQuery() ThemedExcerptQuery {
	return ThemedExcerptQuery{
		PreTags:  DefaultTags,
		PostTags: DefaultTags,
		Size:     DefaultSize,
		Offset:   DefaultOffset,
		SortBy:   DefaultSortBy,
	}
}

type GazetteSearchResponse struct {
	TotalGazettes int64            `json:"total_gazettes"`
	Gazettes      []domain.Gazette `json:"gazettes"`
}

type ThemedExcerptSearchResponse struct {
	TotalExcerpts int64                  `json:"total_excerpts"`
	Excerpts      []domain.ThemedExcerpt `json:"excerpts"`
}

type ThemesResponse struct {
	Themes []string `json:"themes"`
}

type SubthemesResponse struct {
	Subthemes []string `json:"subthemes"`
}

type EntitiesResponse struct {
	Entities []domain.Entity `json:"entities"`
}
