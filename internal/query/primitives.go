// Package query assembles Elasticsearch query documents from typed search requests.
//
// Every fragment constructor returns either a fragment or nil when its inputs are
// empty, so builders can collect fragments unconditionally and let Bool drop the
// empty ones. Builders are pure: the same request always yields an equal document.
package query

import (
	"strings"
	"time"
)

// Document is a JSON object in the backend's query DSL.
type Document = map[string]any

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	HighlightUnified = "unified"
	HighlightFVH     = "fvh"
)

var quoteReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// NormalizeQuotes maps typographic quotes onto their ASCII forms so that phrase
// syntax typed on smart-quoting clients keeps working.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

type BoolClauses struct {
	Must    []Document
	Should  []Document
	Filter  []Document
	MustNot []Document
}

func (c BoolClauses) IsEmpty() bool {
	return len(compact(c.Must)) == 0 &&
		len(compact(c.Should)) == 0 &&
		len(compact(c.Filter)) == 0 &&
		len(compact(c.MustNot)) == 0
}

// Bool composes the non-nil clauses. It returns nil when every list is empty.
func Bool(c BoolClauses) Document {
	body := Document{}
	for key, clauses := range map[string][]Document{
		"must":     c.Must,
		"should":   c.Should,
		"filter":   c.Filter,
		"must_not": c.MustNot,
	} {
		if kept := compact(clauses); len(kept) > 0 {
			body[key] = kept
		}
	}
	if len(body) == 0 {
		return nil
	}
	return Document{"bool": body}
}

func MatchAll() Document {
	return Document{"match_all": Document{}}
}

func MatchNone() Document {
	return Document{"match_none": Document{}}
}

// DateRange bounds field by since (gte) and until (lte), formatted with layout.
func DateRange(field string, since, until *time.Time, layout string) Document {
	if since == nil && until == nil {
		return nil
	}
	bounds := Document{}
	if since != nil {
		bounds["gte"] = since.UTC().Format(layout)
	}
	if until != nil {
		bounds["lte"] = until.UTC().Format(layout)
	}
	return Document{"range": Document{field: bounds}}
}

func Terms(field string, terms []string) Document {
	if len(terms) == 0 {
		return nil
	}
	values := make([]string, len(terms))
	copy(values, terms)
	return Document{"terms": Document{field: values}}
}

// SimpleQueryString searches fields with the backend's simple query string syntax.
// Phrases are matched against the exact-analyzed sibling fields named by exactSuffix.
// Malformed input is passed through; the backend ignores what it cannot parse.
func SimpleQueryString(q string, fields []string, exactSuffix string) Document {
	if q == "" {
		return nil
	}
	body := Document{
		"query":  NormalizeQuotes(q),
		"fields": append([]string(nil), fields...),
	}
	if exactSuffix != "" {
		body["quote_field_suffix"] = exactSuffix
	}
	return Document{"simple_query_string": body}
}

func RankFeature(field string) Document {
	return Document{"rank_feature": Document{"field": field}}
}

func Sort(field, order string) Document {
	return Document{field: Document{"order": order}}
}

// Paginate sets from and size on the top-level document. Negative values are left out.
func Paginate(doc Document, offset, size int) Document {
	if offset >= 0 {
		doc["from"] = offset
	}
	if size >= 0 {
		doc["size"] = size
	}
	return doc
}

type HighlightOptions struct {
	FragmentSize      int
	NumberOfFragments int
	PreTags           []string
	PostTags          []string
	Type              string
	MatchedFields     []string
}

// FieldHighlight builds a highlight definition for a single field.
// MatchedFields is only honoured by the fast vector highlighter.
func FieldHighlight(field string, opts HighlightOptions) Document {
	def := Document{
		"fragment_size":       opts.FragmentSize,
		"number_of_fragments": opts.NumberOfFragments,
	}
	if len(opts.PreTags) > 0 {
		def["pre_tags"] = append([]string(nil), opts.PreTags...)
	}
	if len(opts.PostTags) > 0 {
		def["post_tags"] = append([]string(nil), opts.PostTags...)
	}
	if opts.Type != "" {
		def["type"] = opts.Type
	}
	if opts.Type == HighlightFVH && len(opts.MatchedFields) > 0 {
		def["matched_fields"] = append([]string(nil), opts.MatchedFields...)
	}
	return Document{"fields": Document{field: def}}
}

func compact(docs []Document) []Document {
	kept := make([]Document, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			kept = append(kept, d)
		}
	}
	return kept
}
