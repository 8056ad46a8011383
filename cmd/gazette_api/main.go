// Package main Querido Diário API
// @title Querido Diário API
// @version 1.0
// @description Search Brazilian municipal official gazettes and the excerpts classified under themes
// @contact.name Querido Diário
// @contact.url https://queridodiario.ok.org.br
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/gazette-hunter/docs"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/access"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/aggregates"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/api/router"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/api/server"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/cities"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/companies"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/fileurl"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/gateway"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/query"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/suggestion"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/themes"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/logger"
	pkgserver "github.com/DjordjeVuckovic/gazette-hunter/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	app := NewAppConfig()
	app.LoadDotEnv()

	logger.Setup("gazette-api")

	if err := run(app); err != nil {
		slog.Error("Gazette API stopped", "error", err)
		os.Exit(1)
	}
}

func run(app *AppConfig) error {
	sCfg, err := server.LoadConfig()
	if err != nil {
		return err
	}

	cfg, err := app.Load()
	if err != nil {
		return err
	}

	backend, err := es.NewBackend(cfg.Search)
	if err != nil {
		return err
	}

	healthChecker := pkgserver.NewCompositeHealthChecker().
		Add("elasticsearch", es.NewHealthChecker(backend))

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Querido Diário API is running")
	})

	urls := fileurl.New(cfg.Files)

	catalog, err := themes.Load(cfg.ThemesFile)
	if err != nil {
		return err
	}
	directory, err := cities.Load(cfg.CitiesFile)
	if err != nil {
		return err
	}

	gazetteGateway, err := gateway.NewGazetteGateway(
		backend,
		query.NewGazetteQueryBuilder(cfg.GazetteFields),
		urls,
		backend.DefaultIndex(),
	)
	if err != nil {
		return err
	}
	gazettes, err := access.NewGazetteAccess(gazetteGateway)
	if err != nil {
		return err
	}

	themedGateway, err := gateway.NewThemedExcerptGateway(
		backend,
		query.NewThemedExcerptQueryBuilder(cfg.ThemedExcerptFields),
		urls,
	)
	if err != nil {
		return err
	}
	themed, err := access.NewThemedExcerptAccess(themedGateway, catalog)
	if err != nil {
		return err
	}

	var refOpts []router.ReferenceRouterOption
	if cfg.Postgres != nil {
		pool, err := pg.NewConnectionPool(s.Context(), *cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()

		healthChecker.Add("postgres", pg.NewHealthChecker(pool))

		companyService, err := companies.NewService(pg.NewCompanyRepository(pool))
		if err != nil {
			return err
		}
		aggregateService, err := aggregates.NewService(pg.NewAggregateRepository(pool), urls)
		if err != nil {
			return err
		}
		refOpts = append(refOpts, router.WithCompanies(companyService), router.WithAggregates(aggregateService))
	} else {
		slog.Info("POSTGRES_CONNECTION_STRING is not set, company and aggregate lookups disabled")
	}

	if cfg.Suggestion.Enabled() {
		mailjet, err := suggestion.NewMailjetClient(cfg.Suggestion.BaseURL, cfg.Suggestion.APIKey, cfg.Suggestion.SecretKey)
		if err != nil {
			return err
		}
		suggestions, err := suggestion.NewService(mailjet, cfg.Suggestion)
		if err != nil {
			return err
		}
		refOpts = append(refOpts, router.WithSuggestions(suggestions))
	} else {
		slog.Info("Mailjet is not configured, suggestions disabled")
	}

	router.NewGazetteRouter(s.Echo, gazettes, themed).Bind()
	router.NewReferenceRouter(s.Echo, directory, refOpts...).Bind()

	slog.Info("Gazette API configured",
		"index", backend.DefaultIndex(),
		"themes", len(catalog.ListThemes()),
		"cities", len(directory.Search("")),
	)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
