package scenario

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/context-ai/showcase/backend/pkg/common"
	"github.com/context-ai/showcase/backend/pkg/logger"
	"github.com/context-ai/showcase/backend/pkg/store"
)

// Generator produces the synthetic dataset bundle for each applicant
// archetype. Values are derived from archetype-specific base values, trend
// coefficients, and bounded noise from a seeded source, so the same seed
// always yields the same dataset.
//
// A Generator should be created using NewGenerator.
type Generator struct {
	seed  int64
	group singleflight.Group
}

// NewGeneratorParams defines the configuration for creating a Generator.
//
// Seed drives the noise source; zero selects the default seed.
type NewGeneratorParams struct {
	Seed int64
}

const defaultSeed = 20230101

// NewGenerator creates a Generator configured with the provided parameters.
func NewGenerator(params NewGeneratorParams) *Generator {
	seed := params.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	return &Generator{seed: seed}
}

// Generate builds a complete dataset for one archetype without touching
// storage.
func (g *Generator) Generate(archetype common.Archetype) (*common.Dataset, error) {
	tpl, ok := templates[archetype]
	if !ok {
		return nil, fmt.Errorf("unknown archetype %q", archetype)
	}

	rng := rand.New(rand.NewSource(g.seed + tpl.seedOffset))

	ds := &common.Dataset{
		Archetype:  archetype,
		Profile:    tpl.profile,
		Financials: generateFinancialSeries(tpl, rng),
		Risk:       generateRiskSeries(tpl, rng),
		Events:     tpl.events,
		Context:    tpl.context,
		Reasoning:  tpl.reasoning,
		Confidence: tpl.confidence,
		Guidance:   tpl.guidance,
		Signals:    signalLibrary(),
		Stages:     stageDescriptor(),
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("generated dataset is invalid: %w", err)
	}
	return ds, nil
}

// Dataset returns the archetype's dataset from storage, generating and
// persisting it first when absent or corrupt. Concurrent first-time requests
// for the same archetype are collapsed into a single generation.
func (g *Generator) Dataset(
	ctx context.Context,
	archetype common.Archetype,
	storeClient store.DatasetStorage,
) (*common.Dataset, error) {
	v, err, _ := g.group.Do(string(archetype), func() (any, error) {
		ds, err := storeClient.Load(ctx, archetype)
		if err == nil {
			return ds, nil
		}
		if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}

		logger.Info("[Scenario] Generating dataset", "archetype", archetype, "reason", err)

		ds, err = g.Generate(archetype)
		if err != nil {
			return nil, err
		}
		if err := storeClient.Save(ctx, ds); err != nil {
			return nil, fmt.Errorf("failed to persist dataset: %w", err)
		}
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*common.Dataset), nil
}

// GenerateAll materializes the datasets of every archetype.
func (g *Generator) GenerateAll(ctx context.Context, storeClient store.DatasetStorage) error {
	eg, gCtx := errgroup.WithContext(ctx)
	for _, archetype := range common.Archetypes {
		a := archetype
		eg.Go(func() error {
			_, err := g.Dataset(gCtx, a, storeClient)
			return err
		})
	}
	return eg.Wait()
}
