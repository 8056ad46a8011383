// Package gateway runs search requests through the backend and turns the hits into result records.
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
	gazetteURLField       = "url"
	gazetteTxtURLField    = "file_raw_txt"
	gazetteChecksumField  = "file_checksum"
	gazetteNameField      = "territory_name"
	gazetteStateField     = "state_code"
	gazetteEditionField   = "edition_number"
	gazetteExtraEditField = "is_extra_edition"
)

type GazetteGateway struct {
	searcher storage.Searcher
	builder  *query.GazetteQueryBuilder
	urls     *fileurl.Builder
	index    string
}

// NewGazetteGateway searches index, or the backend default index when index is empty.
func NewGazetteGateway(
	searcher storage.Searcher,
	builder *query.GazetteQueryBuilder,
	urls *fileurl.Builder,
	index string,
) (*GazetteGateway, error) {
	if searcher == nil || builder == nil || urls == nil {
		return nil, apperr.NewConfiguration("gazette gateway requires a searcher, a query builder and a url builder")
	}
	return &GazetteGateway{
		searcher: searcher,
		builder:  builder,
		urls:     urls,
		index:    index,
	}, nil
}

// GetGazettes returns the total number of matches and the requested page of gazettes.
func (g *GazetteGateway) GetGazettes(ctx context.Context, req domain.GazetteRequest) (int64, []domain.Gazette, error) {
	res, err := g.searcher.Search(ctx, g.builder.Build(req), g.index)
	if err != nil {
		return 0, nil, err
	}

	gazettes := make([]domain.Gazette, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		gazette, err := g.hydrate(hit)
		if err != nil {
			slog.Error("Failed to read gazette hit", "id", hit.ID, "error", err)
			return 0, nil, &apperr.CorruptHitError{ID: hit.ID, Err: err}
		}
		gazettes = append(gazettes, gazette)
	}

	return res.Hits.Total.Value, gazettes, nil
}

func (g *GazetteGateway) hydrate(hit storage.SearchHit) (domain.Gazette, error) {
	fields := g.builder.Fields()

	src, err := decodeSource(hit.Source)
	if err != nil {
		return domain.Gazette{}, err
	}

	var gz domain.Gazette
	if gz.TerritoryID, err = src.required(fields.TerritoryID); err != nil {
		return domain.Gazette{}, err
	}
	if gz.Date, err = src.date(fields.Date); err != nil {
		return domain.Gazette{}, err
	}
	if gz.ScrapedAt, err = src.timestamp(fields.ScrapedAt); err != nil {
		return domain.Gazette{}, err
	}
	if gz.URL, err = src.required(gazetteURLField); err != nil {
		return domain.Gazette{}, err
	}
	if gz.FileChecksum, err = src.required(gazetteChecksumField); err != nil {
		return domain.Gazette{}, err
	}
	if gz.TxtURL, err = src.optional(gazetteTxtURLField); err != nil {
		return domain.Gazette{}, err
	}
	if gz.TerritoryName, _, err = src.text(gazetteNameField); err != nil {
		return domain.Gazette{}, err
	}
	if gz.StateCode, _, err = src.text(gazetteStateField); err != nil {
		return domain.Gazette{}, err
	}
	if gz.Edition, err = src.optional(gazetteEditionField); err != nil {
		return domain.Gazette{}, err
	}
	if gz.IsExtraEdition, err = src.flag(gazetteExtraEditField); err != nil {
		return domain.Gazette{}, err
	}

	gz.URL = g.urls.Build(gz.URL)
	gz.TxtURL = g.urls.BuildPtr(gz.TxtURL)
	gz.Excerpts = excerpts(hit.Highlight, fields.Text)

	return gz, nil
}

func excerpts(highlight map[string][]string, field string) []string {
	fragments, ok := highlight[field]
	if !ok || len(fragments) == 0 {
		return []string{}
	}
	return append([]string(nil), fragments...)
}
