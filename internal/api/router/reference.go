package router

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/dto"
	"github.com/labstack/echo/v4"
)

const suggestionSent = "sent"

type CityDirectory interface {
	Search(name string) []domain.City
	Get(territoryID string) (domain.City, error)
}

type CompanyLookup interface {
	GetCompany(ctx context.Context, cnpj string) (domain.Company, error)
	GetPartners(ctx context.Context, cnpj string) (int, []domain.Partner, error)
}

type AggregateLookup interface {
	GetAggregates(ctx context.Context, stateCode, territoryID string) ([]domain.Aggregate, error)
}

type SuggestionSender interface {
	Send(ctx context.Context, req dto.SuggestionRequest) error
}

// ReferenceRouter serves the city directory and, when configured, the
// company, aggregate and suggestion endpoints.
type ReferenceRouter struct {
	e           *echo.Echo
	cities      CityDirectory
	companies   CompanyLookup
	aggregates  AggregateLookup
	suggestions SuggestionSender
}

type ReferenceRouterOption func(*ReferenceRouter)

func WithCompanies(companies CompanyLookup) ReferenceRouterOption {
	return func(r *ReferenceRouter) {
		r.companies = companies
	}
}

func WithAggregates(aggregates AggregateLookup) ReferenceRouterOption {
	return func(r *ReferenceRouter) {
		r.aggregates = aggregates
	}
}

func WithSuggestions(suggestions SuggestionSender) ReferenceRouterOption {
	return func(r *ReferenceRouter) {
		r.suggestions = suggestions
	}
}

func NewReferenceRouter(e *echo.Echo, cities CityDirectory, opts ...ReferenceRouterOption) *ReferenceRouter {
	r := &ReferenceRouter{
		e:      e,
		cities: cities,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ReferenceRouter) Bind() {
	r.e.GET("/cities", r.searchCitiesHandler)
	r.e.GET("/cities/:territory_id", r.getCityHandler)

	if r.companies != nil {
		r.e.GET("/company/info/:cnpj", r.companyInfoHandler)
		r.e.GET("/company/partners/:cnpj", r.companyPartnersHandler)
	} else {
		slog.Info("Company routes disabled")
	}

	if r.aggregates != nil {
		r.e.GET("/aggregates/:state_code", r.aggregatesHandler)
	} else {
		slog.Info("Aggregate routes disabled")
	}

	if r.suggestions != nil {
		r.e.POST("/suggestions", r.suggestionHandler)
	} else {
		slog.Info("Suggestion route disabled")
	}
}

// searchCitiesHandler godoc
// @Summary Search cities
// @Description Accent- and case-insensitive search on the territory name
// @Tags cities
// @Produce json
// @Param city_name query string false "Part of the city name"
// @Success 200 {object} dto.CitiesResponse
// @Router /cities [get]
func (r *ReferenceRouter) searchCitiesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CitiesResponse{Cities: r.cities.Search(c.QueryParam("city_name"))})
}

// getCityHandler godoc
// @Summary Get a city
// @Tags cities
// @Produce json
// @Param territory_id path string true "7-digit territory id"
// @Success 200 {object} dto.CityResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /cities/{territory_id} [get]
func (r *ReferenceRouter) getCityHandler(c echo.Context) error {
	city, err := r.cities.Get(c.Param("territory_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.CityResponse{City: city})
}

// companyInfoHandler godoc
// @Summary Get company registration data
// @Tags companies
// @Produce json
// @Param cnpj path string true "CNPJ, formatted or digits only"
// @Success 200 {object} dto.CompanyInfoResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Router /company/info/{cnpj} [get]
func (r *ReferenceRouter) companyInfoHandler(c echo.Context) error {
	company, err := r.companies.GetCompany(c.Request().Context(), c.Param("cnpj"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.CompanyInfoResponse{CNPJInfo: company})
}

// companyPartnersHandler godoc
// @Summary List company partners
// @Tags companies
// @Produce json
// @Param cnpj path string true "CNPJ, formatted or digits only"
// @Success 200 {object} dto.PartnersResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Router /company/partners/{cnpj} [get]
func (r *ReferenceRouter) companyPartnersHandler(c echo.Context) error {
	total, partners, err := r.companies.GetPartners(c.Request().Context(), c.Param("cnpj"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.PartnersResponse{TotalPartners: total, Partners: partners})
}

// aggregatesHandler godoc
// @Summary List zipped gazette bundles
// @Tags aggregates
// @Produce json
// @Param state_code path string true "Two-letter state code"
// @Param territory_id query string false "7-digit territory id"
// @Success 200 {object} dto.AggregatesResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Router /aggregates/{state_code} [get]
func (r *ReferenceRouter) aggregatesHandler(c echo.Context) error {
	aggregates, err := r.aggregates.GetAggregates(
		c.Request().Context(),
		c.Param("state_code"),
		c.QueryParam("territory_id"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.AggregatesResponse{
		StateCode:  strings.ToUpper(strings.TrimSpace(c.Param("state_code"))),
		Aggregates: aggregates,
	})
}

// suggestionHandler godoc
// @Summary Send a suggestion to the project team
// @Tags suggestions
// @Accept json
// @Produce json
// @Param suggestion body dto.SuggestionRequest true "Suggestion"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Failure 502 {object} apperr.ErrorResponse
// @Router /suggestions [post]
func (r *ReferenceRouter) suggestionHandler(c echo.Context) error {
	var req dto.SuggestionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := r.suggestions.Send(c.Request().Context(), req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.SuggestionResponse{Status: suggestionSent})
}
