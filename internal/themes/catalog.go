// Package themes holds the read-only catalog of themes: their backing indexes,
// subthemes and entity taxonomy.
package themes

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"gopkg.in/yaml.v3"
)

type Subtheme struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category,omitempty"`
	Terms    []string `yaml:"terms,omitempty"`
}

type EntityCase struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

type EntityCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Entities struct {
	Cases      []EntityCase     `yaml:"cases"`
	Categories []EntityCategory `yaml:"categories"`
}

type Theme struct {
	Name     string     `yaml:"name"`
	Index    string     `yaml:"index"`
	Queries  []Subtheme `yaml:"queries"`
	Entities Entities   `yaml:"entities"`
}

type file struct {
	Themes []Theme `yaml:"themes"`
}

// Catalog is immutable once loaded and safe for concurrent reads.
type Catalog struct {
	themes []Theme
	byName map[string]int
}

// Load reads the catalog file. The file is JSON; any YAML document with the same shape is accepted too.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigurationWrap(fmt.Sprintf("cannot read themes catalog %q", path), err)
	}

	catalog, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	slog.Info("Themes catalog loaded", "path", path, "themes", len(catalog.themes))
	return catalog, nil
}

func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, apperr.NewConfigurationWrap("cannot parse themes catalog", err)
	}
	return New(f.Themes)
}

func New(themes []Theme) (*Catalog, error) {
	c := &Catalog{
		themes: make([]Theme, 0, len(themes)),
		byName: make(map[string]int, len(themes)),
	}
	for _, t := range themes {
		if t.Name == "" || t.Index == "" {
			return nil, apperr.NewConfiguration("every theme needs a name and an index")
		}
		if _, dup := c.byName[t.Name]; dup {
			return nil, apperr.NewConfiguration(fmt.Sprintf("theme %q is declared twice", t.Name))
		}
		c.byName[t.Name] = len(c.themes)
		c.themes = append(c.themes, t)
	}
	return c, nil
}

// ListThemes returns the theme names in file order.
func (c *Catalog) ListThemes() []string {
	names := make([]string, len(c.themes))
	for i, t := range c.themes {
		names[i] = t.Name
	}
	return names
}

func (c *Catalog) ResolveIndex(theme string) (string, bool) {
	t, ok := c.lookup(theme)
	if !ok {
		return "", false
	}
	return t.Index, true
}

func (c *Catalog) ListSubthemes(theme string) ([]string, bool) {
	t, ok := c.lookup(theme)
	if !ok {
		return nil, false
	}
	titles := make([]string, len(t.Queries))
	for i, q := range t.Queries {
		titles[i] = q.Title
	}
	return titles, true
}

// ListEntities groups the theme's entity cases by category. Categories keep their
// declared order and carry their description; categories only seen on cases follow,
// in first-seen order, with an empty description.
func (c *Catalog) ListEntities(theme string) ([]domain.Entity, bool) {
	t, ok := c.lookup(theme)
	if !ok {
		return nil, false
	}

	entities := make([]domain.Entity, 0, len(t.Entities.Categories))
	pos := make(map[string]int, len(t.Entities.Categories))
	for _, cat := range t.Entities.Categories {
		if _, seen := pos[cat.Name]; seen {
			continue
		}
		pos[cat.Name] = len(entities)
		entities = append(entities, domain.Entity{
			Type:            cat.Name,
			TypeDescription: cat.Description,
			Instances:       []string{},
		})
	}

	for _, cs := range t.Entities.Cases {
		i, seen := pos[cs.Category]
		if !seen {
			i = len(entities)
			pos[cs.Category] = i
			entities = append(entities, domain.Entity{Type: cs.Category, Instances: []string{}})
		}
		entities[i].Instances = append(entities[i].Instances, cs.Title)
	}

	return entities, true
}

func (c *Catalog) lookup(theme string) (Theme, bool) {
	i, ok := c.byName[theme]
	if !ok {
		return Theme{}, false
	}
	return c.themes[i], true
}
