package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/halcyonworks/QuarterLife_Go/internal/catalog"
	"github.com/halcyonworks/QuarterLife_Go/internal/config"
)

// LoadCatalog loads and validates the program catalog from the configured
// JSON file. Invalid individual programs are skipped with a warning inside
// the loader; structural problems (duplicates, prerequisite cycles) fail
// startup.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	slog.Info(LogMsgLoadingCatalog, "path", cfg.CatalogPath)

	cat, err := catalog.LoadFromFile(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogReady, "programs", cat.Len())
	return cat, nil
}
