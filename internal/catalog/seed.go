// internal/catalog/seed.go
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/javajoker/storefront/internal/models"
)

//go:embed seed/catalog.yaml
var defaultSeed []byte

var ErrDuplicateProductID = errors.New("duplicate product id")

// Seed is the static catalog supplied at startup.
type Seed struct {
	Products   []models.Product  `json:"products" yaml:"products"`
	Categories []models.Category `json:"categories" yaml:"categories"`
}

// DefaultSeed decodes the catalog compiled into the binary.
func DefaultSeed() (*Seed, error) {
	return DecodeSeed(defaultSeed, "yaml")
}

// LoadSeedFile reads a JSON or YAML seed, picking the decoder by extension.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}
	return DecodeSeed(data, formatFromPath(path))
}

// DecodeSeed decodes data as "json" or "yaml" and stamps seed positions.
func DecodeSeed(data []byte, format string) (*Seed, error) {
	var seed Seed

	switch strings.ToLower(format) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&seed); err != nil {
			return nil, fmt.Errorf("failed to decode json seed: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("failed to decode yaml seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q", format)
	}

	if err := seed.normalize(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *Seed) normalize() error {
	seen := make(map[string]struct{}, len(s.Products))
	for i := range s.Products {
		id := s.Products[i].ID
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateProductID, id)
		}
		seen[id] = struct{}{}
		s.Products[i].Position = i
	}
	for i := range s.Categories {
		s.Categories[i].Position = i
	}
	return nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
