package aggregates

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/fileurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	rows          []domain.Aggregate
	calls         int
	lastState     string
	lastTerritory string
}

func (r *fakeRepository) FindAggregates(_ context.Context, stateCode, territoryID string) ([]domain.Aggregate, error) {
	r.calls++
	r.lastState = stateCode
	r.lastTerritory = territoryID
	return r.rows, nil
}

func TestService_GetAggregates_RewritesFilePaths(t *testing.T) {
	territory := "4205902"
	repo := &fakeRepository{rows: []domain.Aggregate{
		{StateCode: "SC", URL: "aggregates/SC/SC_2022.zip", Year: 2022, LastUpdated: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{TerritoryID: &territory, StateCode: "SC", URL: "https://querido-diario.nyc3.cdn.digitaloceanspaces.com/aggregates/4205902_2022.zip", Year: 2022},
	}}
	s, err := NewService(repo, fileurl.New(fileurl.Config{Endpoint: "data.example.org", ReplaceEnabled: true}))
	require.NoError(t, err)

	got, err := s.GetAggregates(context.Background(), "sc", "4205902")

	require.NoError(t, err)
	assert.Equal(t, "SC", repo.lastState)
	assert.Equal(t, "4205902", repo.lastTerritory)
	require.Len(t, got, 2)
	assert.Equal(t, "https://data.example.org/aggregates/SC/SC_2022.zip", got[0].URL)
	assert.Equal(t, "https://data.example.org/aggregates/4205902_2022.zip", got[1].URL)
	assert.Equal(t, "aggregates/SC/SC_2022.zip", repo.rows[0].URL)
}

func TestService_GetAggregates_Validation(t *testing.T) {
	repo := &fakeRepository{}
	s, err := NewService(repo, fileurl.New(fileurl.Config{}))
	require.NoError(t, err)

	var validation *apperr.ValidationError

	_, err = s.GetAggregates(context.Background(), "SCX", "")
	assert.ErrorAs(t, err, &validation)

	_, err = s.GetAggregates(context.Background(), "SC", "42059")
	assert.ErrorAs(t, err, &validation)

	assert.Zero(t, repo.calls)

	got, err := s.GetAggregates(context.Background(), "RJ", "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestNewService_RequiresCollaborators(t *testing.T) {
	_, err := NewService(nil, fileurl.New(fileurl.Config{}))

	var cfgErr *apperr.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
