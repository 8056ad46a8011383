package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/dto"
	"github.com/labstack/echo/v4"
)

type GazetteSearcher interface {
	GetGazettes(ctx context.Context, q dto.GazetteQuery) (int64, []domain.Gazette, error)
}

type ThemedExcerptSearcher interface {
	GetThemedExcerpts(ctx context.Context, theme string, q dto.ThemedExcerptQuery) (int64, []domain.ThemedExcerpt, error)
	ListThemes() []string
	ListSubthemes(theme string) ([]string, error)
	ListEntities(theme string) ([]domain.Entity, error)
}

type GazetteRouter struct {
	e        *echo.Echo
	gazettes GazetteSearcher
	themed   ThemedExcerptSearcher
}

func NewGazetteRouter(e *echo.Echo, gazettes GazetteSearcher, themed ThemedExcerptSearcher) *GazetteRouter {
	return &GazetteRouter{
		e:        e,
		gazettes: gazettes,
		themed:   themed,
	}
}

func (r *GazetteRouter) Bind() {
	g := r.e.Group("/gazettes")
	g.GET("", r.searchGazettesHandler)

	// static segments win over :theme, so "themes" is never taken as a theme name
	g.GET("/by_theme/themes/", r.themesHandler)
	g.GET("/by_theme/themes", r.themesHandler)
	g.GET("/by_theme/subthemes/:theme", r.subthemesHandler)
	g.GET("/by_theme/entities/:theme", r.entitiesHandler)
	g.GET("/by_theme/:theme", r.searchThemedExcerptsHandler)
}

// searchGazettesHandler godoc
// @Summary Search gazettes
// @Description Full-text search over municipal gazettes with territory, date and scraping filters
// @Tags gazettes
// @Produce json
// @Param territory_ids query []string false "7-digit territory ids" collectionFormat(multi)
// @Param published_since query string false "YYYY-MM-DD"
// @Param published_until query string false "YYYY-MM-DD"
// @Param scraped_since query string false "YYYY-MM-DDTHH:MM:SS"
// @Param scraped_until query string false "YYYY-MM-DDTHH:MM:SS"
// @Param querystring query string false "Simple query string"
// @Param excerpt_size query int false "Highlight fragment size" default(500)
// @Param number_of_excerpts query int false "Highlight fragments per gazette" default(1)
// @Param pre_tags query []string false "Highlight opening tags" collectionFormat(multi)
// @Param post_tags query []string false "Highlight closing tags" collectionFormat(multi)
// @Param size query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param sort_by query string false "Result order" Enums(relevance, descending_date, ascending_date) default(relevance)
// @Success 200 {object} dto.GazetteSearchResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Failure 503 {object} apperr.ErrorResponse
// @Router /gazettes [get]
func (r *GazetteRouter) searchGazettesHandler(c echo.Context) error {
	q, err := bindGazetteQuery(c)
	if err != nil {
		return err
	}

	total, gazettes, err := r.gazettes.GetGazettes(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.GazetteSearchResponse{
		TotalGazettes: total,
		Gazettes:      gazettes,
	})
}

// searchThemedExcerptsHandler godoc
// @Summary Search themed excerpts
// @Description Search excerpts classified under a theme, filtered by entities and subthemes
// @Tags themes
// @Produce json
// @Param theme path string true "Theme name"
// @Param entities query []string false "Entity titles" collectionFormat(multi)
// @Param subthemes query []string false "Subtheme titles" collectionFormat(multi)
// @Param territory_ids query []string false "7-digit territory ids" collectionFormat(multi)
// @Param published_since query string false "YYYY-MM-DD"
// @Param published_until query string false "YYYY-MM-DD"
// @Param scraped_since query string false "YYYY-MM-DDTHH:MM:SS"
// @Param scraped_until query string false "YYYY-MM-DDTHH:MM:SS"
// @Param querystring query string false "Simple query string"
// @Param pre_tags query []string false "Highlight opening tags" collectionFormat(multi)
// @Param post_tags query []string false "Highlight closing tags" collectionFormat(multi)
// @Param size query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param sort_by query string false "Result order" Enums(relevance, descending_date, ascending_date) default(relevance)
// @Success 200 {object} dto.ThemedExcerptSearchResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Router /gazettes/by_theme/{theme} [get]
func (r *GazetteRouter) searchThemedExcerptsHandler(c echo.Context) error {
	q, err := bindThemedExcerptQuery(c)
	if err != nil {
		return err
	}

	total, excerpts, err := r.themed.GetThemedExcerpts(c.Request().Context(), c.Param("theme"), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ThemedExcerptSearchResponse{
		TotalExcerpts: total,
		Excerpts:      excerpts,
	})
}

// themesHandler godoc
// @Summary List themes
// @Tags themes
// @Produce json
// @Success 200 {object} dto.ThemesResponse
// @Router /gazettes/by_theme/themes/ [get]
func (r *GazetteRouter) themesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ThemesResponse{Themes: r.themed.ListThemes()})
}

// subthemesHandler godoc
// @Summary List the subthemes of a theme
// @Tags themes
// @Produce json
// @Param theme path string true "Theme name"
// @Success 200 {object} dto.SubthemesResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /gazettes/by_theme/subthemes/{theme} [get]
func (r *GazetteRouter) subthemesHandler(c echo.Context) error {
	subthemes, err := r.themed.ListSubthemes(c.Param("theme"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.SubthemesResponse{Subthemes: subthemes})
}

// entitiesHandler godoc
// @Summary List the entities of a theme grouped by category
// @Tags themes
// @Produce json
// @Param theme path string true "Theme name"
// @Success 200 {object} dto.EntitiesResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /gazettes/by_theme/entities/{theme} [get]
func (r *GazetteRouter) entitiesHandler(c echo.Context) error {
	entities, err := r.themed.ListEntities(c.Param("theme"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.EntitiesResponse{Entities: entities})
}
