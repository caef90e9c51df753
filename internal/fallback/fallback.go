// Package fallback holds the placeholder content served when no CMS
// credentials are configured.
package fallback

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"care-site-backend/internal/model"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Provider supplies the embedded datasets. Every call decodes afresh, so
// callers may modify what they get back.
type Provider interface {
	News() ([]model.News, error)
	Staff() ([]model.Staff, error)
}

// Embedded is the Provider backed by the YAML files compiled into the binary.
type Embedded struct{}

// News returns the placeholder news posts in display order.
func (Embedded) News() ([]model.News, error) {
	news, err := decode[model.News]("data/news.yaml")
	if err != nil {
		return nil, err
	}
	if err := checkCategories(news); err != nil {
		return nil, err
	}
	return news, nil
}

// Staff returns the placeholder staff profiles in display order.
func (Embedded) Staff() ([]model.Staff, error) {
	return decode[model.Staff]("data/staff.yaml")
}

func decode[T any](name string) ([]T, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("fallback: read %s: %w", name, err)
	}
	var records []T
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("fallback: decode %s: %w", name, err)
	}
	return records, nil
}

func checkCategories(news []model.News) error {
	for _, n := range news {
		if !n.Category.Valid() {
			return fmt.Errorf("fallback: news %q has unknown category %q", n.ID, n.Category)
		}
	}
	return nil
}
