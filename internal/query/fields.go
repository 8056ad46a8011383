package query

import (
	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/config/env"
)

// GazetteFields names the index fields the gazette query targets.
type GazetteFields struct {
	Text        string
	ExactSuffix string
	Date        string
	ScrapedAt   string
	TerritoryID string
}

func DefaultGazetteFields() GazetteFields {
	return GazetteFields{
		Text:        "source_text",
		ExactSuffix: ".exact",
		Date:        "date",
		ScrapedAt:   "scraped_at",
		TerritoryID: "territory_id",
	}
}

// ThemedExcerptFields names the index fields of a theme index, plus the fixed
// highlight sizing applied to every themed search.
type ThemedExcerptFields struct {
	Text              string
	ExactSuffix       string
	Date              string
	ScrapedAt         string
	TerritoryID       string
	Entities          string
	Subthemes         string
	EmbeddingScore    string
	TfidfScore        string
	FragmentSize      int
	NumberOfFragments int
}

func DefaultThemedExcerptFields() ThemedExcerptFields {
	return ThemedExcerptFields{
		Text:              "excerpt",
		ExactSuffix:       ".exact",
		Date:              "source_date",
		ScrapedAt:         "source_scraped_at",
		TerritoryID:       "source_territory_id",
		Entities:          "excerpt_entities",
		Subthemes:         "excerpt_subthemes",
		EmbeddingScore:    "excerpt_embedding_score",
		TfidfScore:        "excerpt_tfidf_score",
		FragmentSize:      10000,
		NumberOfFragments: 1,
	}
}

func LoadGazetteFieldsEnv() GazetteFields {
	d := DefaultGazetteFields()
	return GazetteFields{
		Text:        env.String("GAZETTE_CONTENT_FIELD", d.Text),
		ExactSuffix: env.String("GAZETTE_CONTENT_EXACT_FIELD_SUFFIX", d.ExactSuffix),
		Date:        env.String("GAZETTE_PUBLICATION_DATE_FIELD", d.Date),
		ScrapedAt:   env.String("GAZETTE_SCRAPED_AT_FIELD", d.ScrapedAt),
		TerritoryID: env.String("GAZETTE_TERRITORY_ID_FIELD", d.TerritoryID),
	}
}

func LoadThemedExcerptFieldsEnv() (ThemedExcerptFields, error) {
	d := DefaultThemedExcerptFields()

	fragmentSize, err := env.Int("THEMED_EXCERPT_FRAGMENT_SIZE", d.FragmentSize)
	if err != nil {
		return ThemedExcerptFields{}, apperr.NewConfigurationWrap("invalid themed excerpt highlight", err)
	}
	fragments, err := env.Int("THEMED_EXCERPT_NUMBER_OF_FRAGMENTS", d.NumberOfFragments)
	if err != nil {
		return ThemedExcerptFields{}, apperr.NewConfigurationWrap("invalid themed excerpt highlight", err)
	}
	if fragmentSize <= 0 || fragments <= 0 {
		return ThemedExcerptFields{}, apperr.NewConfiguration("themed excerpt fragment size and count must be positive")
	}

	return ThemedExcerptFields{
		Text:              env.String("THEMED_EXCERPT_CONTENT_FIELD", d.Text),
		ExactSuffix:       env.String("THEMED_EXCERPT_CONTENT_EXACT_FIELD_SUFFIX", d.ExactSuffix),
		Date:              env.String("THEMED_EXCERPT_PUBLICATION_DATE_FIELD", d.Date),
		ScrapedAt:         env.String("THEMED_EXCERPT_SCRAPED_AT_FIELD", d.ScrapedAt),
		TerritoryID:       env.String("THEMED_EXCERPT_TERRITORY_ID_FIELD", d.TerritoryID),
		Entities:          env.String("THEMED_EXCERPT_ENTITIES_FIELD", d.Entities),
		Subthemes:         env.String("THEMED_EXCERPT_SUBTHEMES_FIELD", d.Subthemes),
		EmbeddingScore:    env.String("THEMED_EXCERPT_EMBEDDING_SCORE_FIELD", d.EmbeddingScore),
		TfidfScore:        env.String("THEMED_EXCERPT_TFIDF_SCORE_FIELD", d.TfidfScore),
		FragmentSize:      fragmentSize,
		NumberOfFragments: fragments,
	}, nil
}
