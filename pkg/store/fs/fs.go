package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/context-ai/showcase/backend/pkg/common"
	"github.com/context-ai/showcase/backend/pkg/store"
)

// Dataset component files, one per Dataset field. The two time series are
// line-oriented CSV; everything else is a JSON record.
const (
	fileProfile    = "profile.json"
	fileFinancials = "financials.csv"
	fileRisk       = "risk.csv"
	fileEvents     = "events.json"
	fileContext    = "context.json"
	fileReasoning  = "reasoning.json"
	fileConfidence = "confidence.json"
	fileGuidance   = "guidance.json"
	fileSignals    = "signals.json"
	fileStages     = "stages.json"
)

var componentFiles = []string{
	fileProfile,
	fileFinancials,
	fileRisk,
	fileEvents,
	fileContext,
	fileReasoning,
	fileConfidence,
	fileGuidance,
	fileSignals,
	fileStages,
}

// Store is the flat-file implementation of store.DatasetStorage. Each
// archetype gets one directory under the data root with one file per
// dataset component.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given data directory. The directory
// is created lazily on first save.
func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) dir(archetype common.Archetype) string {
	return filepath.Join(s.root, string(archetype))
}

// Exists reports whether every component file of the archetype is present.
func (s *Store) Exists(ctx context.Context, archetype common.Archetype) (bool, error) {
	dir := s.dir(archetype)
	for _, name := range componentFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
	return true, nil
}

// Load reads the archetype's dataset back from disk, assuming exactly the
// shape Save produced.
func (s *Store) Load(ctx context.Context, archetype common.Archetype) (*common.Dataset, error) {
	dir := s.dir(archetype)

	ds := &common.Dataset{Archetype: archetype}

	jsonComponents := []struct {
		name string
		dst  any
	}{
		{fileProfile, &ds.Profile},
		{fileEvents, &ds.Events},
		{fileContext, &ds.Context},
		{fileReasoning, &ds.Reasoning},
		{fileConfidence, &ds.Confidence},
		{fileGuidance, &ds.Guidance},
		{fileSignals, &ds.Signals},
		{fileStages, &ds.Stages},
	}

	for _, c := range jsonComponents {
		data, err := s.readComponent(dir, c.name, archetype)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, c.dst); err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", store.ErrCorrupt, archetype, c.name, err)
		}
	}

	finData, err := s.readComponent(dir, fileFinancials, archetype)
	if err != nil {
		return nil, err
	}
	ds.Financials, err = decodeFinancialCSV(finData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", store.ErrCorrupt, archetype, fileFinancials, err)
	}

	riskData, err := s.readComponent(dir, fileRisk, archetype)
	if err != nil {
		return nil, err
	}
	ds.Risk, err = decodeRiskCSV(riskData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", store.ErrCorrupt, archetype, fileRisk, err)
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorrupt, archetype, err)
	}

	return ds, nil
}

func (s *Store) readComponent(dir, name string, archetype common.Archetype) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s/%s", store.ErrNotFound, archetype, name)
		}
		return nil, fmt.Errorf("failed to read %s/%s: %w", archetype, name, err)
	}
	return data, nil
}

// Save writes every component file, replacing prior contents.
func (s *Store) Save(ctx context.Context, dataset *common.Dataset) error {
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("refusing to persist invalid dataset: %w", err)
	}

	dir := s.dir(dataset.Archetype)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	jsonComponents := []struct {
		name string
		src  any
	}{
		{fileProfile, dataset.Profile},
		{fileEvents, dataset.Events},
		{fileContext, dataset.Context},
		{fileReasoning, dataset.Reasoning},
		{fileConfidence, dataset.Confidence},
		{fileGuidance, dataset.Guidance},
		{fileSignals, dataset.Signals},
		{fileStages, dataset.Stages},
	}

	for _, c := range jsonComponents {
		data, err := json.MarshalIndent(c.src, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", c.name, err)
		}
		if err := writeFile(dir, c.name, append(data, '\n')); err != nil {
			return err
		}
	}

	finData, err := encodeFinancialCSV(dataset.Financials)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", fileFinancials, err)
	}
	if err := writeFile(dir, fileFinancials, finData); err != nil {
		return err
	}

	riskData, err := encodeRiskCSV(dataset.Risk)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", fileRisk, err)
	}
	if err := writeFile(dir, fileRisk, riskData); err != nil {
		return err
	}

	return nil
}

// Delete removes the archetype's dataset directory.
func (s *Store) Delete(ctx context.Context, archetype common.Archetype) error {
	if err := os.RemoveAll(s.dir(archetype)); err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}

func writeFile(dir, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
