package gateway

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/fileurl"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/query"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/storage"
)

const (
	excerptIDField        = "excerpt_id"
	excerptURLField       = "source_file_url"
	excerptTxtURLField    = "source_file_raw_txt"
	excerptNameField      = "source_territory_name"
	excerptStateField     = "source_state_code"
	excerptEditionField   = "source_edition_number"
	excerptExtraEditField = "source_is_extra_edition"
)

type ThemedExcerptGateway struct {
	searcher storage.Searcher
	builder  *query.ThemedExcerptQueryBuilder
	urls     *fileurl.Builder
}

func NewThemedExcerptGateway(
	searcher storage.Searcher,
	builder *query.ThemedExcerptQueryBuilder,
	urls *fileurl.Builder,
) (*ThemedExcerptGateway, error) {
	if searcher == nil || builder == nil || urls == nil {
		return nil, apperr.NewConfiguration("themed excerpt gateway requires a searcher, a query builder and a url builder")
	}
	return &ThemedExcerptGateway{
		searcher: searcher,
		builder:  builder,
		urls:     urls,
	}, nil
}

// GetThemedExcerpts searches themeIndex, the index backing req.Theme.
func (g *ThemedExcerptGateway) GetThemedExcerpts(
	ctx context.Context,
	req domain.ThemedExcerptRequest,
	themeIndex string,
) (int64, []domain.ThemedExcerpt, error) {
	res, err := g.searcher.Search(ctx, g.builder.Build(req), themeIndex)
	if err != nil {
		return 0, nil, err
	}

	excerpts := make([]domain.ThemedExcerpt, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		excerpt, err := g.hydrate(hit, req.Theme)
		if err != nil {
			slog.Error("Failed to read themed excerpt hit", "id", hit.ID, "theme", req.Theme, "error", err)
			return 0, nil, &apperr.CorruptHitError{ID: hit.ID, Err: err}
		}
		excerpts = append(excerpts, excerpt)
	}

	return res.Hits.Total.Value, excerpts, nil
}

func (g *ThemedExcerptGateway) hydrate(hit storage.SearchHit, theme string) (domain.ThemedExcerpt, error) {
	fields := g.builder.Fields()

	src, err := decodeSource(hit.Source)
	if err != nil {
		return domain.ThemedExcerpt{}, err
	}

	ex := domain.ThemedExcerpt{Theme: theme}

	id, ok, err := src.text(excerptIDField)
	if err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if !ok || id == "" {
		id = hit.ID
	}
	ex.ExcerptID = id

	if ex.TerritoryID, err = src.required(fields.TerritoryID); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.Date, err = src.date(fields.Date); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.ScrapedAt, err = src.timestamp(fields.ScrapedAt); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.URL, err = src.required(excerptURLField); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.TxtURL, err = src.optional(excerptTxtURLField); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.TerritoryName, _, err = src.text(excerptNameField); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.StateCode, _, err = src.text(excerptStateField); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.Edition, err = src.optional(excerptEditionField); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.IsExtraEdition, err = src.flag(excerptExtraEditField); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.Subthemes, err = src.list(fields.Subthemes); err != nil {
		return domain.ThemedExcerpt{}, err
	}
	if ex.Entities, err = src.list(fields.Entities); err != nil {
		return domain.ThemedExcerpt{}, err
	}

	if fragments := hit.Highlight[fields.Text]; len(fragments) > 0 {
		ex.Excerpt = fragments[0]
	} else if ex.Excerpt, _, err = src.text(fields.Text); err != nil {
		return domain.ThemedExcerpt{}, err
	}

	ex.URL = g.urls.Build(ex.URL)
	ex.TxtURL = g.urls.BuildPtr(ex.TxtURL)

	return ex, nil
}
