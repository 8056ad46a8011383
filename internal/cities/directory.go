// Package cities serves the directory of municipalities covered by the gazette index.
package cities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const urlSeparator = ";"

var header = []string{"territory_id", "territory_name", "state_code", "level", "publication_urls"}

type Directory struct {
	cities []domain.City
	byID   map[string]int
	folded []string
}

func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.NewConfigurationWrap(fmt.Sprintf("cannot open city database %q", path), err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, err
	}

	slog.Info("City database loaded", "path", path, "cities", len(d.cities))
	return d, nil
}

// Read parses a CSV with a header row naming the columns in any order.
func Read(r io.Reader) (*Directory, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	head, err := reader.Read()
	if err != nil {
		return nil, apperr.NewConfigurationWrap("city database has no header", err)
	}
	cols, err := columns(head)
	if err != nil {
		return nil, err
	}

	d := &Directory{byID: map[string]int{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperr.NewConfigurationWrap("invalid city database row", err)
		}

		city := domain.City{
			TerritoryID:     record[cols["territory_id"]],
			TerritoryName:   record[cols["territory_name"]],
			StateCode:       record[cols["state_code"]],
			Level:           domain.OpennessLevel(record[cols["level"]]),
			PublicationURLs: splitURLs(record[cols["publication_urls"]]),
		}
		if city.TerritoryID == "" {
			return nil, apperr.NewConfiguration("city database row without territory_id")
		}
		if !city.Level.IsValid() {
			return nil, apperr.NewConfiguration(fmt.Sprintf("city %s has invalid level %q", city.TerritoryID, city.Level))
		}

		d.byID[city.TerritoryID] = len(d.cities)
		d.cities = append(d.cities, city)
		d.folded = append(d.folded, fold(city.TerritoryName))
	}

	return d, nil
}

// Search returns the cities whose name contains name, ignoring case and accents.
// An empty name returns every city.
func (d *Directory) Search(name string) []domain.City {
	needle := fold(strings.TrimSpace(name))

	found := make([]domain.City, 0)
	for i, city := range d.cities {
		if strings.Contains(d.folded[i], needle) {
			found = append(found, city)
		}
	}
	return found
}

func (d *Directory) Get(territoryID string) (domain.City, error) {
	i, ok := d.byID[territoryID]
	if !ok {
		return domain.City{}, apperr.ErrCityNotFound
	}
	return d.cities[i], nil
}

func columns(head []string) (map[string]int, error) {
	cols := make(map[string]int, len(head))
	for i, name := range head {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range header {
		if _, ok := cols[name]; !ok {
			return nil, apperr.NewConfiguration(fmt.Sprintf("city database is missing column %q", name))
		}
	}
	return cols, nil
}

func splitURLs(s string) []string {
	urls := make([]string, 0)
	for _, u := range strings.Split(s, urlSeparator) {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
