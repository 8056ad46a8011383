package router

import (
	"fmt"
	"regexp"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/dto"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/pagination"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/stringsutil"
	"github.com/labstack/echo/v4"
)

var territoryIDPattern = regexp.MustCompile(`^[0-9]{7}$`)

// searchFilters are the parameters shared by both search endpoints.
type searchFilters struct {
	publishedSince *domain.Date
	publishedUntil *domain.Date
	scrapedSince   *time.Time
	scrapedUntil   *time.Time
	sortBy         domain.SortBy
}

func bindGazetteQuery(c echo.Context) (dto.GazetteQuery, error) {
	q := dto.NewGazetteQuery()

	err := echo.QueryParamsBinder(c).
		Strings("territory_ids", &q.TerritoryIDs).
		String("querystring", &q.Querystring).
		Int("excerpt_size", &q.ExcerptSize).
		Int("number_of_excerpts", &q.NumberOfExcerpts).
		Strings("pre_tags", &q.PreTags).
		Strings("post_tags", &q.PostTags).
		Int("size", &q.Size).
		Int("offset", &q.Offset).
		BindError()
	if err != nil {
		return q, err
	}
	q.TerritoryIDs = stringsutil.RemoveEmptyStrings(q.TerritoryIDs)

	f, err := bindFilters(c, q.TerritoryIDs)
	if err != nil {
		return q, err
	}
	if err := validatePage(q.Size, q.Offset); err != nil {
		return q, err
	}
	if q.ExcerptSize < 1 {
		return q, apperr.NewValidation(`query parameter "excerpt_size" must be at least 1`)
	}
	if q.NumberOfExcerpts < 1 {
		return q, apperr.NewValidation(`query parameter "number_of_excerpts" must be at least 1`)
	}

	q.PublishedSince, q.PublishedUntil = f.publishedSince, f.publishedUntil
	q.ScrapedSince, q.ScrapedUntil = f.scrapedSince, f.scrapedUntil
	q.SortBy = f.sortBy
	return q, nil
}

func bindThemedExcerptQuery(c echo.Context) (dto.ThemedExcerptQuery, error) {
	q := dto.NewThemedExcerptQuery()

	err := echo.QueryParamsBinder(c).
		Strings("entities", &q.Entities).
		Strings("subthemes", &q.Subthemes).
		Strings("territory_ids", &q.TerritoryIDs).
		String("querystring", &q.Querystring).
		Strings("pre_tags", &q.PreTags).
		Strings("post_tags", &q.PostTags).
		Int("size", &q.Size).
		Int("offset", &q.Offset).
		BindError()
	if err != nil {
		return q, err
	}
	q.TerritoryIDs = stringsutil.RemoveEmptyStrings(q.TerritoryIDs)
	q.Entities = stringsutil.RemoveEmptyStrings(q.Entities)
	q.Subthemes = stringsutil.RemoveEmptyStrings(q.Subthemes)

	f, err := bindFilters(c, q.TerritoryIDs)
	if err != nil {
		return q, err
	}
	if err := validatePage(q.Size, q.Offset); err != nil {
		return q, err
	}

	q.PublishedSince, q.PublishedUntil = f.publishedSince, f.publishedUntil
	q.ScrapedSince, q.ScrapedUntil = f.scrapedSince, f.scrapedUntil
	q.SortBy = f.sortBy
	return q, nil
}

func bindFilters(c echo.Context, territoryIDs []string) (searchFilters, error) {
	f := searchFilters{sortBy: dto.DefaultSortBy}

	for _, id := range territoryIDs {
		if !territoryIDPattern.MatchString(id) {
			return f, apperr.NewValidation(fmt.Sprintf("invalid territory id %q: expected 7 digits", id))
		}
	}

	var err error
	if f.publishedSince, err = dateParam(c, "published_since"); err != nil {
		return f, err
	}
	if f.publishedUntil, err = dateParam(c, "published_until"); err != nil {
		return f, err
	}
	if f.scrapedSince, err = timestampParam(c, "scraped_since"); err != nil {
		return f, err
	}
	if f.scrapedUntil, err = timestampParam(c, "scraped_until"); err != nil {
		return f, err
	}

	if raw := c.QueryParam("sort_by"); raw != "" {
		f.sortBy = domain.SortBy(raw)
		if !f.sortBy.IsValid() {
			return f, apperr.NewValidation(fmt.Sprintf(
				`query parameter "sort_by" must be one of %q, %q or %q`,
				domain.SortByRelevance, domain.SortByDescendingDate, domain.SortByAscendingDate,
			))
		}
	}
	return f, nil
}

func dateParam(c echo.Context, name string) (*domain.Date, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, apperr.NewValidationWrap(fmt.Sprintf("invalid value for query parameter %q: expected YYYY-MM-DD", name), err)
	}
	return &d, nil
}

func timestampParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := domain.ParseTimestamp(raw)
	if err != nil {
		return nil, apperr.NewValidationWrap(fmt.Sprintf("invalid value for query parameter %q: expected YYYY-MM-DDTHH:MM:SS", name), err)
	}
	return &t, nil
}

func validatePage(size, offset int) error {
	page := pagination.OffsetRequest{Offset: offset, Size: size}
	if err := page.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid page: "+err.Error(), err)
	}
	return nil
}
