package access

import (
	"context"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/dto"
)

type ThemedExcerptGateway interface {
	GetThemedExcerpts(ctx context.Context, req domain.ThemedExcerptRequest, themeIndex string) (int64, []domain.ThemedExcerpt, error)
}

type ThemeCatalog interface {
	ListThemes() []string
	ResolveIndex(theme string) (string, bool)
	ListSubthemes(theme string) ([]string, bool)
	ListEntities(theme string) ([]domain.Entity, bool)
}

type ThemedExcerptAccess struct {
	gateway ThemedExcerptGateway
	catalog ThemeCatalog
}

func NewThemedExcerptAccess(gateway ThemedExcerptGateway, catalog ThemeCatalog) (*ThemedExcerptAccess, error) {
	if gateway == nil {
		return nil, apperr.NewConfiguration("themed excerpt access requires a themed excerpt gateway")
	}
	if catalog == nil {
		return nil, apperr.NewConfiguration("themed excerpt access requires a themes catalog")
	}
	return &ThemedExcerptAccess{gateway: gateway, catalog: catalog}, nil
}

// GetThemedExcerpts searches the index backing theme. An unknown theme fails with
// apperr.ErrThemeNotFound before the backend is reached.
func (a *ThemedExcerptAccess) GetThemedExcerpts(
	ctx context.Context,
	theme string,
	q dto.ThemedExcerptQuery,
) (int64, []domain.ThemedExcerpt, error) {
	index, ok := a.catalog.ResolveIndex(theme)
	if !ok {
		return 0, nil, apperr.ErrThemeNotFound
	}

	return a.gateway.GetThemedExcerpts(ctx, domain.ThemedExcerptRequest{
		Theme:          theme,
		Entities:       q.Entities,
		Subthemes:      q.Subthemes,
		TerritoryIDs:   q.TerritoryIDs,
		PublishedSince: q.PublishedSince,
		PublishedUntil: q.PublishedUntil,
		ScrapedSince:   q.ScrapedSince,
		ScrapedUntil:   q.ScrapedUntil,
		Querystring:    q.Querystring,
		PreTags:        q.PreTags,
		PostTags:       q.PostTags,
		Size:           q.Size,
		Offset:         q.Offset,
		SortBy:         q.SortBy,
	}, index)
}

func (a *ThemedExcerptAccess) ListThemes() []string {
	return a.catalog.ListThemes()
}

func (a *ThemedExcerptAccess) ListSubthemes(theme string) ([]string, error) {
	subthemes, ok := a.catalog.ListSubthemes(theme)
	if !ok {
		return nil, apperr.ErrThemeNotFound
	}
	return subthemes, nil
}

func (a *ThemedExcerptAccess) ListEntities(theme string) ([]domain.Entity, error) {
	entities, ok := a.catalog.ListEntities(theme)
	if !ok {
		return nil, apperr.ErrThemeNotFound
	}
	return entities, nil
}
