package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
)

// Sentinel errors for catalog validation
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrDuplicateProgram   = errors.New("duplicate program id")
	ErrPrerequisiteCycle  = errors.New("prerequisite cycle")
	ErrUnknownPrerequisite = errors.New("unknown prerequisite")
)

// Catalog is the immutable set of program definitions. It is built once at
// startup and only read afterwards, so no locking is needed.
type Catalog struct {
	programs map[string]domain.ProgramDefinition
	order    []string
}

// New builds a catalog from the definitions. Per-program field anomalies
// (e.g. a non-positive duration) come from static content data, so they are
// logged and the entry skipped rather than failing the load. Structural
// errors (duplicate IDs, dangling prerequisites, prerequisite cycles) do
// fail the load. Bonus tables referencing unknown stats are allowed here
// and skipped at reward time.
func New(ctx context.Context, defs []domain.ProgramDefinition) (*Catalog, error) {
	log := logger.FromContext(ctx)
	validate := validator.New()

	c := &Catalog{
		programs: make(map[string]domain.ProgramDefinition, len(defs)),
		order:    make([]string, 0, len(defs)),
	}

	for _, def := range defs {
		if err := validate.Struct(def); err != nil {
			log.Warn(LogMsgProgramSkipped, "program_id", def.ID, "error", err)
			continue
		}
		if _, exists := c.programs[def.ID]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateProgram, ErrDuplicateProgram, def.ID)
		}
		c.programs[def.ID] = def
		c.order = append(c.order, def.ID)
	}

	if len(c.order) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoProgramsDefined)
	}

	for _, id := range c.order {
		def := c.programs[id]
		if def.PrerequisiteProgramID == "" {
			continue
		}
		if def.PrerequisiteProgramID == def.ID {
			return nil, fmt.Errorf(ErrFmtSelfPrerequisite, ErrPrerequisiteCycle, def.ID)
		}
		if _, ok := c.programs[def.PrerequisiteProgramID]; !ok {
			return nil, fmt.Errorf(ErrFmtUnknownPrerequisite, ErrUnknownPrerequisite, def.ID, def.PrerequisiteProgramID)
		}
	}

	if err := c.checkCycles(); err != nil {
		return nil, err
	}

	for _, id := range c.order {
		warnUnknownBonusStats(log, c.programs[id])
	}

	log.Info(LogMsgCatalogLoaded, "programs", len(c.order))
	return c, nil
}

// checkCycles walks every prerequisite chain. Chains are single-parent so a
// visited set per walk is enough.
func (c *Catalog) checkCycles() error {
	for id := range c.programs {
		seen := map[string]bool{id: true}
		current := c.programs[id].PrerequisiteProgramID
		for current != "" {
			if seen[current] {
				return fmt.Errorf(ErrFmtPrerequisiteCycle, ErrPrerequisiteCycle, current)
			}
			seen[current] = true
			current = c.programs[current].PrerequisiteProgramID
		}
	}
	return nil
}

func warnUnknownBonusStats(log *slog.Logger, def domain.ProgramDefinition) {
	for _, delta := range append(append([]domain.StatDelta{}, def.QuarterlyBonuses...), def.CompletionBonuses...) {
		if _, ok := domain.ResolveStat(delta.StatID); !ok {
			log.Warn(LogMsgUnknownBonusStat, "program_id", def.ID, "stat_id", delta.StatID)
		}
	}
}

// FindByID returns the program definition for the given ID.
func (c *Catalog) FindByID(id string) (domain.ProgramDefinition, bool) {
	def, ok := c.programs[id]
	return def, ok
}

// All returns the program definitions in declaration order.
func (c *Catalog) All() []domain.ProgramDefinition {
	defs := make([]domain.ProgramDefinition, 0, len(c.order))
	for _, id := range c.order {
		defs = append(defs, c.programs[id])
	}
	return defs
}

// Len returns the number of programs in the catalog.
func (c *Catalog) Len() int {
	return len(c.programs)
}
