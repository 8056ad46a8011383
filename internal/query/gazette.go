package query

import (
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
)

type GazetteQueryBuilder struct {
	fields GazetteFields
}

func NewGazetteQueryBuilder(fields GazetteFields) *GazetteQueryBuilder {
	return &GazetteQueryBuilder{fields: fields}
}

func (b *GazetteQueryBuilder) Fields() GazetteFields {
	return b.fields
}

// Build returns the search body for req.
func (b *GazetteQueryBuilder) Build(req domain.GazetteRequest) Document {
	clauses := BoolClauses{
		Must: []Document{
			SimpleQueryString(req.Querystring, []string{b.fields.Text}, b.fields.ExactSuffix),
		},
		Filter: []Document{
			DateRange(b.fields.Date, dateTime(req.PublishedSince), dateTime(req.PublishedUntil), domain.DateLayout),
			DateRange(b.fields.ScrapedAt, req.ScrapedSince, req.ScrapedUntil, domain.DateTimeLayout),
			Terms(b.fields.TerritoryID, req.TerritoryIDs),
		},
	}

	doc := Document{"query": queryOrMatchAll(clauses)}

	if sort := sortClause(b.fields.Date, req.SortBy, req.Querystring); sort != nil {
		doc["sort"] = []Document{sort}
	}

	Paginate(doc, req.Offset, req.Size)

	if req.Querystring != "" {
		doc["highlight"] = FieldHighlight(b.fields.Text, HighlightOptions{
			FragmentSize:      req.ExcerptSize,
			NumberOfFragments: req.NumberOfExcerpts,
			PreTags:           req.PreTags,
			PostTags:          req.PostTags,
			Type:              HighlightUnified,
		})
	}

	return doc
}

// EffectiveSort resolves the ordering actually applied: without a querystring
// relevance is meaningless and newest-first is used; unknown values mean relevance.
func EffectiveSort(sortBy domain.SortBy, querystring string) domain.SortBy {
	if querystring == "" {
		return domain.SortByDescendingDate
	}
	if !sortBy.IsValid() {
		return domain.SortByRelevance
	}
	return sortBy
}

func sortClause(dateField string, sortBy domain.SortBy, querystring string) Document {
	switch EffectiveSort(sortBy, querystring) {
	case domain.SortByDescendingDate:
		return Sort(dateField, OrderDesc)
	case domain.SortByAscendingDate:
		return Sort(dateField, OrderAsc)
	default:
		return nil
	}
}

func queryOrMatchAll(clauses BoolClauses) Document {
	if q := Bool(clauses); q != nil {
		return q
	}
	return MatchAll()
}

func dateTime(d *domain.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
