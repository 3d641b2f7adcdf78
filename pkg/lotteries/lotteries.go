package lotteries

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Package lotteries holds the catalog of supported lotteries (YAML/JSON)
// and the per-family game rules.

// Lottery is one catalog entry: the identifier plus its upstream sources.
// FallbackURL may be empty; a lottery with neither URL is rejected at load.
type Lottery struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	PrimaryURL  string `json:"primary_url" yaml:"primary_url"`
	FallbackURL string `json:"fallback_url" yaml:"fallback_url"`
}

type catalog struct {
	Lotteries []Lottery `json:"lotteries" yaml:"lotteries"`
}

// Registry is an indexed, read-only view of the loaded catalog.
type Registry struct {
	mu      sync.RWMutex
	entries []Lottery
	idx     map[string]Lottery
}

// NewRegistry builds a registry directly from entries (used by tests and
// embedded defaults). Entries are sanitized and validated like file loads.
func NewRegistry(entries []Lottery) (*Registry, error) {
	return buildRegistry(catalog{Lotteries: entries})
}

// LoadRegistry loads the lottery catalog from a YAML or JSON file.
func LoadRegistry(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("lotteries file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lotteries file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read lotteries file: %w", err)
	}

	cat, err := parseCatalog(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(cat.Lotteries) == 0 {
		return nil, errors.New("lotteries file contains no entries")
	}

	return buildRegistry(cat)
}

func buildRegistry(cat catalog) (*Registry, error) {
	idx := make(map[string]Lottery, len(cat.Lotteries))
	entries := make([]Lottery, 0, len(cat.Lotteries))

	for i := range cat.Lotteries {
		lot := sanitizeLottery(cat.Lotteries[i])
		if err := validateLottery(lot); err != nil {
			return nil, fmt.Errorf("lottery[%d]: %w", i, err)
		}
		if _, exists := idx[lot.ID]; exists {
			return nil, fmt.Errorf("duplicate lottery id %q", lot.ID)
		}
		idx[lot.ID] = lot
		entries = append(entries, lot)
	}

	return &Registry{entries: entries, idx: idx}, nil
}

// All returns a copy of the catalog in file order.
func (r *Registry) All() []Lottery {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Lottery, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByID returns the catalog entry for the given identifier, if present.
func (r *Registry) ByID(id string) (Lottery, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if r == nil || id == "" {
		return Lottery{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.idx[id]
	return lot, ok
}

func parseCatalog(data []byte, ext string) (catalog, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var cat catalog
		if err := d.fn(data, &cat); err == nil {
			return cat, nil
		}
	}

	return catalog{}, errors.New("lotteries file format not recognized (expected YAML or JSON)")
}

func sanitizeLottery(lot Lottery) Lottery {
	lot.ID = strings.ToLower(strings.TrimSpace(lot.ID))
	lot.Name = strings.TrimSpace(lot.Name)
	lot.PrimaryURL = strings.TrimSpace(lot.PrimaryURL)
	lot.FallbackURL = strings.TrimSpace(lot.FallbackURL)
	return lot
}

func validateLottery(lot Lottery) error {
	if lot.ID == "" {
		return errors.New("id is required")
	}
	if lot.Name == "" {
		return fmt.Errorf("name is required for lottery %q", lot.ID)
	}
	if lot.PrimaryURL == "" && lot.FallbackURL == "" {
		return fmt.Errorf("lottery %q has no source urls", lot.ID)
	}
	return nil
}
