// Package access is the boundary the HTTP layer calls. It maps validated query
// DTOs onto search requests and delegates to the gateways.
package access

import (
	"context"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/dto"
)

type GazetteGateway interface {
	GetGazettes(ctx context.Context, req domain.GazetteRequest) (int64, []domain.Gazette, error)
}

type GazetteAccess struct {
	gateway GazetteGateway
}

func NewGazetteAccess(gateway GazetteGateway) (*GazetteAccess, error) {
	if gateway == nil {
		return nil, apperr.NewConfiguration("gazette access requires a gazette gateway")
	}
	return &GazetteAccess{gateway: gateway}, nil
}

func (a *GazetteAccess) GetGazettes(ctx context.Context, q dto.GazetteQuery) (int64, []domain.Gazette, error) {
	return a.gateway.GetGazettes(ctx, domain.GazetteRequest{
		TerritoryIDs:     q.TerritoryIDs,
		PublishedSince:   q.PublishedSince,
		PublishedUntil:   q.PublishedUntil,
		ScrapedSince:     q.ScrapedSince,
		ScrapedUntil:     q.ScrapedUntil,
		Querystring:      q.Querystring,
		ExcerptSize:      q.ExcerptSize,
		NumberOfExcerpts: q.NumberOfExcerpts,
		PreTags:          q.PreTags,
		PostTags:         q.PostTags,
		Size:             q.Size,
		Offset:           q.Offset,
		SortBy:           q.SortBy,
	})
}
