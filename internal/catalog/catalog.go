// Package catalog loads the salon menu from a YAML file.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type File struct {
	Services []Entry `yaml:"services"`
}

// Entry is one menu line. Price is in dollars; Active defaults to true.
type Entry struct {
	Category    string  `yaml:"category"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	DurationMin int     `yaml:"duration_min"`
	IsAddon     bool    `yaml:"is_addon"`
	Active      *bool   `yaml:"active"`
}

type Upserter interface {
	UpsertServices(ctx context.Context, services []models.Service) error
}

func Parse(data []byte) ([]models.Service, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Services))
	out := make([]models.Service, 0, len(f.Services))

	for i, e := range f.Services {
		category := strings.TrimSpace(e.Category)
		name := strings.TrimSpace(e.Name)
		if category == "" || name == "" {
			return nil, fmt.Errorf("catalog entry %d: category and name are required", i)
		}
		if e.Price < 0 || e.DurationMin < 0 {
			return nil, fmt.Errorf("catalog entry %q: negative price or duration", name)
		}

		key := strings.ToLower(category + "\x00" + name)
		if seen[key] {
			return nil, fmt.Errorf("catalog entry %q: duplicated in %q", name, category)
		}
		seen[key] = true

		active := true
		if e.Active != nil {
			active = *e.Active
		}

		out = append(out, models.Service{
			Category:    category,
			Name:        name,
			PriceCents:  int64(math.Round(e.Price * 100)),
			DurationMin: e.DurationMin,
			IsAddon:     e.IsAddon,
			IsActive:    active,
		})
	}

	return out, nil
}

// Seed upserts the services of path. An empty path is a no-op.
func Seed(ctx context.Context, repo Upserter, path string) (int, error) {
	if path == "" {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read catalog: %w", err)
	}

	services, err := Parse(data)
	if err != nil {
		return 0, err
	}
	if len(services) == 0 {
		return 0, errors.New("catalog has no services")
	}

	if err := repo.UpsertServices(ctx, services); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(services), nil
}
