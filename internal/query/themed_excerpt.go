package query

import (
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
)

type ThemedExcerptQueryBuilder struct {
	fields ThemedExcerptFields
}

func NewThemedExcerptQueryBuilder(fields ThemedExcerptFields) *ThemedExcerptQueryBuilder {
	return &ThemedExcerptQueryBuilder{fields: fields}
}

func (b *ThemedExcerptQueryBuilder) Fields() ThemedExcerptFields {
	return b.fields
}

func (b *ThemedExcerptQueryBuilder) Build(req domain.ThemedExcerptRequest) Document {
	clauses := BoolClauses{
		Must: []Document{
			SimpleQueryString(req.Querystring, []string{b.fields.Text}, b.fields.ExactSuffix),
		},
		Filter: []Document{
			DateRange(b.fields.Date, dateTime(req.PublishedSince), dateTime(req.PublishedUntil), domain.DateLayout),
			DateRange(b.fields.ScrapedAt, req.ScrapedSince, req.ScrapedUntil, domain.DateTimeLayout),
			Terms(b.fields.TerritoryID, req.TerritoryIDs),
			Terms(b.fields.Entities, req.Entities),
			Terms(b.fields.Subthemes, req.Subthemes),
		},
	}

	// rank features only score; alone in a bool they would drop documents lacking them
	if !clauses.IsEmpty() {
		clauses.Should = []Document{
			RankFeature(b.fields.EmbeddingScore),
			RankFeature(b.fields.TfidfScore),
		}
	}

	doc := Document{"query": queryOrMatchAll(clauses)}

	if sort := sortClause(b.fields.Date, req.SortBy, req.Querystring); sort != nil {
		doc["sort"] = []Document{sort}
	}

	Paginate(doc, req.Offset, req.Size)

	if req.Querystring != "" {
		var matched []string
		if b.fields.ExactSuffix != "" {
			matched = []string{b.fields.Text, b.fields.Text + b.fields.ExactSuffix}
		}
		doc["highlight"] = FieldHighlight(b.fields.Text, HighlightOptions{
			FragmentSize:      b.fields.FragmentSize,
			NumberOfFragments: b.fields.NumberOfFragments,
			PreTags:           req.PreTags,
			PostTags:          req.PostTags,
			Type:              HighlightFVH,
			MatchedFields:     matched,
		})
	}

	return doc
}
