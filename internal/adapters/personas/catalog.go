// Package personas loads the persona catalog from YAML or JSON.
package personas

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"focusboss/internal/domain"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

//go:embed personas.yaml
var defaultPersonas []byte

// personaFile is one persona entry, keyed by id in the file
type personaFile struct {
	Icon     string              `yaml:"icon"`
	Messages map[string][]string `yaml:"messages"`
	Name     string              `yaml:"name"`
	Prompt   string              `yaml:"prompt"`
}

// Catalog implements ports.PersonaCatalog over an in-memory, read-only set
type Catalog struct {
	byID    map[string]domain.Persona
	ordered []domain.Persona
}

var _ ports.PersonaCatalog = (*Catalog)(nil)

// NewDefaultCatalog returns the built-in personas
func NewDefaultCatalog() (*Catalog, error) {
	return Parse(defaultPersonas)
}

// Load reads personas from path, falling back to the built-in set when path is
// empty or does not exist
func Load(path string) (*Catalog, error) {
	if path == "" {
		return NewDefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logging.Logger.Debug("Personas file not found, using built-in personas", "path", path)
		return NewDefaultCatalog()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read personas file: %w", err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse personas file %s: %w", path, err)
	}
	logging.Logger.Info("Loaded personas", "path", path, "count", len(catalog.ordered))
	return catalog, nil
}

// Parse builds a catalog from YAML (or JSON) keyed by persona id
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]personaFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no personas defined")
	}

	c := &Catalog{byID: make(map[string]domain.Persona, len(raw))}
	for id, p := range raw {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("persona with empty id")
		}

		persona := domain.Persona{
			Icon:   p.Icon,
			ID:     id,
			Name:   p.Name,
			Prompt: strings.TrimSpace(p.Prompt),
		}
		if len(p.Messages) > 0 {
			persona.Messages = make(map[domain.NudgeKind][]string, len(p.Messages))
			for kind, msgs := range p.Messages {
				persona.Messages[domain.NudgeKind(kind)] = msgs
			}
		}

		c.byID[id] = persona
		c.ordered = append(c.ordered, persona)
	}

	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].ID < c.ordered[j].ID
	})

	return c, nil
}

// List implements PersonaCatalog.List, ordered by id
func (c *Catalog) List() []domain.Persona {
	out := make([]domain.Persona, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Lookup implements PersonaCatalog.Lookup
func (c *Catalog) Lookup(id string) (*domain.Persona, bool) {
	p, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &p, true
}
