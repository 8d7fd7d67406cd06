package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/cards.yaml
var defaultCardsYAML []byte

// yamlCatalog is the on-disk shape of a catalog file.
type yamlCatalog struct {
	Cards []yamlCard `yaml:"cards"`
}

type yamlCard struct {
	ID    int    `yaml:"id"`
	Image string `yaml:"image"`
	Name  string `yaml:"name,omitempty"`
}

// ParseYAML parses a catalog document.
func ParseYAML(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("catalog: yaml unmarshal: %w", err)
	}

	entries := make([]Entry, 0, len(yc.Cards))
	for _, c := range yc.Cards {
		if c.Image == "" {
			return nil, fmt.Errorf("catalog: card %d has no image", c.ID)
		}
		entries = append(entries, Entry{ID: c.ID, Image: c.Image, Name: c.Name})
	}
	return New(entries)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	cat, err := ParseYAML(defaultCardsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return cat
}

// Load loads the card catalog.
// Search order: customPath -> ~/.memory/cards.yaml -> ./configs/cards.yaml -> embedded default
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to read %s: %w", customPath, err)
		}
		cat, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to parse %s: %w", customPath, err)
		}
		return cat, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(home, ".memory", "cards.yaml")); err == nil {
			if cat, err := ParseYAML(data); err == nil {
				return cat, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/cards.yaml"); err == nil {
		if cat, err := ParseYAML(data); err == nil {
			return cat, nil
		}
	}

	return Default(), nil
}
