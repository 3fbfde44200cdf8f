package store

import (
	"context"
	"errors"

	"github.com/context-ai/showcase/backend/pkg/common"
)

// ErrNotFound reports that no persisted dataset exists for an archetype.
// Callers are expected to regenerate rather than recover partially.
var ErrNotFound = errors.New("dataset not found")

// ErrCorrupt reports that persisted data exists but fails the dataset
// invariants (missing components, unreadable files, series drift). Treated
// the same as absence: the whole archetype is regenerated.
var ErrCorrupt = errors.New("dataset corrupt")

// DatasetStorage persists complete archetype datasets. Implementations write
// one file per dataset component under archetype-scoped storage and read
// back exactly the shape they wrote; there is no schema versioning.
type DatasetStorage interface {
	// Exists reports whether every component of the archetype's dataset is
	// present. A partially written dataset does not exist.
	Exists(ctx context.Context, archetype common.Archetype) (bool, error)

	// Load reads and validates the archetype's dataset. Returns ErrNotFound
	// when any component is missing and ErrCorrupt when components are
	// present but unreadable or inconsistent.
	Load(ctx context.Context, archetype common.Archetype) (*common.Dataset, error)

	// Save writes every component of the dataset, replacing prior contents.
	Save(ctx context.Context, dataset *common.Dataset) error

	// Delete removes the archetype's dataset. Deleting an absent dataset is
	// not an error.
	Delete(ctx context.Context, archetype common.Archetype) error
}
