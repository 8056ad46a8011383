// Package aggregates lists the zipped gazette bundles published per state and territory.
package aggregates

import (
	"context"
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/fileurl"
)

var (
	stateCodePattern   = regexp.MustCompile(`^[A-Z]{2}$`)
	territoryIDPattern = regexp.MustCompile(`^[0-9]{7}$`)
)

// Repository returns aggregates with URL holding the stored file path.
// An empty territoryID selects the state-wide bundles.
type Repository interface {
	FindAggregates(ctx context.Context, stateCode, territoryID string) ([]domain.Aggregate, error)
}

type Service struct {
	repo Repository
	urls *fileurl.Builder
}

func NewService(repo Repository, urls *fileurl.Builder) (*Service, error) {
	if repo == nil || urls == nil {
		return nil, apperr.NewConfiguration("aggregates service requires a repository and a url builder")
	}
	return &Service{repo: repo, urls: urls}, nil
}

func (s *Service) GetAggregates(ctx context.Context, stateCode, territoryID string) ([]domain.Aggregate, error) {
	stateCode = strings.ToUpper(strings.TrimSpace(stateCode))
	if !stateCodePattern.MatchString(stateCode) {
		return nil, apperr.NewValidation("State code is not valid.")
	}
	if territoryID != "" && !territoryIDPattern.MatchString(territoryID) {
		return nil, apperr.NewValidation("Territory ID is not valid.")
	}

	found, err := s.repo.FindAggregates(ctx, stateCode, territoryID)
	if err != nil {
		return nil, err
	}

	aggregates := make([]domain.Aggregate, 0, len(found))
	for _, a := range found {
		a.URL = s.urls.Build(a.URL)
		aggregates = append(aggregates, a)
	}
	return aggregates, nil
}
