package query

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toJSON(t *testing.T, doc Document) string {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(b)
}

func defaultGazetteRequest() domain.GazetteRequest {
	return domain.GazetteRequest{
		ExcerptSize:      500,
		NumberOfExcerpts: 1,
		PreTags:          []string{""},
		PostTags:         []string{""},
		Size:             10,
		Offset:           0,
		SortBy:           domain.SortByRelevance,
	}
}

func TestPrimitives_EmptyInputsYieldNothing(t *testing.T) {
	assert.Nil(t, Bool(BoolClauses{}))
	assert.Nil(t, Bool(BoolClauses{Must: []Document{nil}, Filter: []Document{nil, nil}}))
	assert.Nil(t, DateRange("date", nil, nil, domain.DateLayout))
	assert.Nil(t, Terms("territory_id", nil))
	assert.Nil(t, Terms("territory_id", []string{}))
	assert.Nil(t, SimpleQueryString("", []string{"source_text"}, ".exact"))
}

func TestDateRange_OnlySuppliedBounds(t *testing.T) {
	since := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2020, 12, 31, 10, 30, 0, 0, time.UTC)

	assert.JSONEq(t, `{"range":{"date":{"gte":"2020-01-01"}}}`,
		toJSON(t, DateRange("date", &since, nil, domain.DateLayout)))
	assert.JSONEq(t, `{"range":{"scraped_at":{"lte":"2020-12-31T10:30:00"}}}`,
		toJSON(t, DateRange("scraped_at", nil, &until, domain.DateTimeLayout)))
	assert.JSONEq(t, `{"range":{"date":{"gte":"2020-01-01","lte":"2020-12-31"}}}`,
		toJSON(t, DateRange("date", &since, &until, domain.DateLayout)))
}

func TestDateRange_ZonedTimestampsAreSentInUTC(t *testing.T) {
	since, err := domain.ParseTimestamp("2020-01-01T10:00:00-03:00")
	require.NoError(t, err)
	until, err := domain.ParseTimestamp("2020-01-01T23:30:00")
	require.NoError(t, err)

	assert.JSONEq(t, `{"range":{"scraped_at":{"gte":"2020-01-01T13:00:00","lte":"2020-01-01T23:30:00"}}}`,
		toJSON(t, DateRange("scraped_at", &since, &until, domain.DateTimeLayout)))

	b := NewThemedExcerptQueryBuilder(DefaultThemedExcerptFields())
	doc := b.Build(domain.ThemedExcerptRequest{ScrapedSince: &since, Size: 10})
	assert.Contains(t, toJSON(t, doc), `"gte":"2020-01-01T13:00:00"`)
}

func TestSimpleQueryString(t *testing.T) {
	doc := SimpleQueryString(`“educação” + ‘escola’ | -saúde*`, []string{"source_text"}, ".exact")

	assert.JSONEq(t, `{"simple_query_string":{
		"query":"\"educação\" + 'escola' | -saúde*",
		"fields":["source_text"],
		"quote_field_suffix":".exact"}}`, toJSON(t, doc))

	noSuffix := SimpleQueryString("prefeitura", []string{"excerpt"}, "")
	assert.NotContains(t, noSuffix["simple_query_string"], "quote_field_suffix")
}

func TestSimpleQueryString_MalformedInputPassesThrough(t *testing.T) {
	doc := SimpleQueryString(`"unterminated (phrase ~`, []string{"source_text"}, "")

	body := doc["simple_query_string"].(Document)
	assert.Equal(t, `"unterminated (phrase ~`, body["query"])
}

func TestNormalizeQuotes(t *testing.T) {
	plain := []string{"", "prefeitura", `"licitação" + obras`, "it's fine", "a | b -c d* e~2 \"f g\"~3 (h)"}
	for _, s := range plain {
		assert.Equal(t, s, NormalizeQuotes(s))
	}

	assert.Equal(t, `"a" 'b'`, NormalizeQuotes(`“a” ‘b’`))
}

func TestFieldHighlight(t *testing.T) {
	unified := FieldHighlight("source_text", HighlightOptions{
		FragmentSize:      500,
		NumberOfFragments: 1,
		PreTags:           []string{"<b>"},
		PostTags:          []string{"</b>"},
		Type:              HighlightUnified,
		MatchedFields:     []string{"source_text", "source_text.exact"},
	})
	assert.JSONEq(t, `{"fields":{"source_text":{
		"fragment_size":500,"number_of_fragments":1,
		"pre_tags":["<b>"],"post_tags":["</b>"],"type":"unified"}}}`, toJSON(t, unified))

	fvh := FieldHighlight("excerpt", HighlightOptions{
		FragmentSize:      2000,
		NumberOfFragments: 1,
		Type:              HighlightFVH,
		MatchedFields:     []string{"excerpt", "excerpt.exact"},
	})
	assert.JSONEq(t, `{"fields":{"excerpt":{
		"fragment_size":2000,"number_of_fragments":1,"type":"fvh",
		"matched_fields":["excerpt","excerpt.exact"]}}}`, toJSON(t, fvh))
}

func TestGazetteQuery_EmptyRequestIsMatchAll(t *testing.T) {
	b := NewGazetteQueryBuilder(DefaultGazetteFields())

	doc := b.Build(defaultGazetteRequest())

	assert.JSONEq(t, `{
		"query":{"match_all":{}},
		"from":0,
		"size":10,
		"sort":[{"date":{"order":"desc"}}]
	}`, toJSON(t, doc))
}

func TestGazetteQuery_TerritoryDateRangeAndQuerystring(t *testing.T) {
	b := NewGazetteQueryBuilder(DefaultGazetteFields())
	since := domain.NewDate(2020, time.January, 1)
	until := domain.NewDate(2020, time.December, 31)

	req := defaultGazetteRequest()
	req.TerritoryIDs = []string{"4205902"}
	req.PublishedSince = &since
	req.PublishedUntil = &until
	req.Querystring = "prefeitura"

	doc := b.Build(req)

	assert.JSONEq(t, `{
		"query":{"bool":{
			"must":[{"simple_query_string":{"query":"prefeitura","fields":["source_text"],"quote_field_suffix":".exact"}}],
			"filter":[
				{"range":{"date":{"gte":"2020-01-01","lte":"2020-12-31"}}},
				{"terms":{"territory_id":["4205902"]}}
			]
		}},
		"from":0,
		"size":10,
		"highlight":{"fields":{"source_text":{
			"type":"unified","fragment_size":500,"number_of_fragments":1,
			"pre_tags":[""],"post_tags":[""]
		}}}
	}`, toJSON(t, doc))
	assert.NotContains(t, doc, "sort")
}

func TestGazetteQuery_Sorting(t *testing.T) {
	b := NewGazetteQueryBuilder(DefaultGazetteFields())

	tests := []struct {
		name        string
		sortBy      domain.SortBy
		querystring string
		wantSort    string
	}{
		{"relevance with query has no sort", domain.SortByRelevance, "obras", ""},
		{"descending date", domain.SortByDescendingDate, "obras", `[{"date":{"order":"desc"}}]`},
		{"ascending date", domain.SortByAscendingDate, "obras", `[{"date":{"order":"asc"}}]`},
		{"unknown degrades to relevance", domain.SortBy("popularity"), "obras", ""},
		{"relevance without query forced to date", domain.SortByRelevance, "", `[{"date":{"order":"desc"}}]`},
		{"ascending without query forced to date desc", domain.SortByAscendingDate, "", `[{"date":{"order":"desc"}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := defaultGazetteRequest()
			req.SortBy = tt.sortBy
			req.Querystring = tt.querystring

			doc := b.Build(req)

			if tt.wantSort == "" {
				assert.NotContains(t, doc, "sort")
				return
			}
			raw, err := json.Marshal(doc["sort"])
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantSort, string(raw))
		})
	}
}

func TestGazetteQuery_FiltersWithoutQuerystring(t *testing.T) {
	b := NewGazetteQueryBuilder(DefaultGazetteFields())
	scrapedSince := time.Date(2021, 5, 1, 8, 0, 0, 0, time.UTC)

	req := defaultGazetteRequest()
	req.ScrapedSince = &scrapedSince
	req.TerritoryIDs = []string{"3304557", "3550308"}
	req.Offset = 20
	req.Size = 5

	doc := b.Build(req)

	assert.JSONEq(t, `{
		"query":{"bool":{"filter":[
			{"range":{"scraped_at":{"gte":"2021-05-01T08:00:00"}}},
			{"terms":{"territory_id":["3304557","3550308"]}}
		]}},
		"sort":[{"date":{"order":"desc"}}],
		"from":20,
		"size":5
	}`, toJSON(t, doc))
}

func TestGazetteQuery_Deterministic(t *testing.T) {
	b := NewGazetteQueryBuilder(DefaultGazetteFields())
	req := defaultGazetteRequest()
	req.Querystring = `"secretaria de saúde" + contrato`
	req.TerritoryIDs = []string{"4205902"}

	first := toJSON(t, b.Build(req))
	second := toJSON(t, b.Build(req))

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"4205902"}, req.TerritoryIDs)
}

func TestThemedExcerptQuery_EmptyRequestIsMatchAll(t *testing.T) {
	b := NewThemedExcerptQueryBuilder(DefaultThemedExcerptFields())

	doc := b.Build(domain.ThemedExcerptRequest{Theme: "education", Size: 10, SortBy: domain.SortByRelevance})

	assert.JSONEq(t, `{
		"query":{"match_all":{}},
		"sort":[{"source_date":{"order":"desc"}}],
		"from":0,
		"size":10
	}`, toJSON(t, doc))
}

func TestThemedExcerptQuery_FullRequest(t *testing.T) {
	b := NewThemedExcerptQueryBuilder(DefaultThemedExcerptFields())
	since := domain.NewDate(2021, time.January, 1)

	doc := b.Build(domain.ThemedExcerptRequest{
		Theme:          "education",
		Entities:       []string{"Escola Municipal X"},
		Subthemes:      []string{"Merenda"},
		TerritoryIDs:   []string{"4205902"},
		PublishedSince: &since,
		Querystring:    "merenda",
		PreTags:        []string{"<em>"},
		PostTags:       []string{"</em>"},
		Size:           10,
		Offset:         10,
		SortBy:         domain.SortByRelevance,
	})

	assert.JSONEq(t, `{
		"query":{"bool":{
			"must":[{"simple_query_string":{"query":"merenda","fields":["excerpt"],"quote_field_suffix":".exact"}}],
			"filter":[
				{"range":{"source_date":{"gte":"2021-01-01"}}},
				{"terms":{"source_territory_id":["4205902"]}},
				{"terms":{"excerpt_entities":["Escola Municipal X"]}},
				{"terms":{"excerpt_subthemes":["Merenda"]}}
			],
			"should":[
				{"rank_feature":{"field":"excerpt_embedding_score"}},
				{"rank_feature":{"field":"excerpt_tfidf_score"}}
			]
		}},
		"from":10,
		"size":10,
		"highlight":{"fields":{"excerpt":{
			"type":"fvh","fragment_size":10000,"number_of_fragments":1,
			"pre_tags":["<em>"],"post_tags":["</em>"],
			"matched_fields":["excerpt","excerpt.exact"]
		}}}
	}`, toJSON(t, doc))
}

func TestThemedExcerptQuery_NoExactSuffixOmitsMatchedFields(t *testing.T) {
	fields := DefaultThemedExcerptFields()
	fields.ExactSuffix = ""
	b := NewThemedExcerptQueryBuilder(fields)

	doc := b.Build(domain.ThemedExcerptRequest{Querystring: "obra", Size: 10})

	hl := doc["highlight"].(Document)["fields"].(Document)["excerpt"].(Document)
	assert.NotContains(t, hl, "matched_fields")
	assert.Equal(t, HighlightFVH, hl["type"])
}

func TestThemedExcerptQuery_SubthemeOnlyKeepsRankFeaturesOptional(t *testing.T) {
	b := NewThemedExcerptQueryBuilder(DefaultThemedExcerptFields())

	doc := b.Build(domain.ThemedExcerptRequest{Subthemes: []string{"Merenda"}, Size: 10})

	boolBody := doc["query"].(Document)["bool"].(Document)
	assert.Len(t, boolBody["filter"], 1)
	assert.Len(t, boolBody["should"], 2)
	assert.NotContains(t, boolBody, "must")
}
