package catalog

import (
	"context"
	"fmt"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/utils"
)

// Config represents the JSON configuration for the program catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Programs []domain.ProgramDefinition `json:"programs"`
}

// LoadFromFile reads a programs JSON file and builds a validated catalog
func LoadFromFile(ctx context.Context, path string) (*Catalog, error) {
	var config Config
	if err := utils.LoadJSON(path, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	return New(ctx, config.Programs)
}
