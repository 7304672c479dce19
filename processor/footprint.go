package processor

import (
	"context"
	"log"

	"go-greenprint/footprint"
	"go-greenprint/types"
)

// CarbonStore is the slice of the Firestore layer the footprint service
// needs. db.CarbonRepository satisfies it; tests substitute an in-memory
// fake.
type CarbonStore interface {
	GetEmissionFactors(ctx context.Context, userID string) (*types.EmissionFactors, error)
	SaveEmissionFactors(ctx context.Context, input types.EmissionFactors) error
	GetCarbonFootprint(ctx context.Context, userID string) (*types.CarbonFootprintResult, error)
	SaveCarbonFootprint(ctx context.Context, result types.CarbonFootprintResult) error
}

// ComputeStrategy turns a full input set into a result snapshot. The
// deterministic calculator is the contract; an external-model strategy
// may be layered on top but its failures are never surfaced - the
// service falls back to local arithmetic instead.
type ComputeStrategy interface {
	Compute(ctx context.Context, input types.EmissionFactors) (types.CarbonFootprintResult, error)
}

// FootprintService is the boundary around the calculator: it loads prior
// inputs, persists new ones, recomputes the snapshot and serves it back.
type FootprintService struct {
	store CarbonStore
	calc  *footprint.Calculator
	ai    ComputeStrategy // optional, nil means always local
}

func NewFootprintService(store CarbonStore, calc *footprint.Calculator, ai ComputeStrategy) *FootprintService {
	return &FootprintService{store: store, calc: calc, ai: ai}
}

// LoadInputs returns the stored inputs row, or an all-empty default set
// for first-time users. Only genuine store faults surface as errors.
func (s *FootprintService) LoadInputs(ctx context.Context, userID string) (types.EmissionFactors, error) {
	stored, err := s.store.GetEmissionFactors(ctx, userID)
	if err != nil {
		return types.EmissionFactors{}, err
	}
	if stored == nil {
		return types.EmissionFactors{UserID: userID}, nil
	}
	return *stored, nil
}

// SaveInputs upserts the inputs row. Store faults propagate unchanged;
// there is no automatic retry here, the user retries by resubmitting.
func (s *FootprintService) SaveInputs(ctx context.Context, input types.EmissionFactors) error {
	return s.store.SaveEmissionFactors(ctx, input)
}

// RecomputeAndSave runs the full pipeline over the given input value (the
// just-submitted set, never a re-fetch, so the computation can't race a
// concurrent save), upserts the snapshot and returns it. The snapshot is
// computed fully in memory before the single write, so a reader either
// sees the previous snapshot or this one, never something in between.
//
// If the snapshot write fails the previously saved inputs stay persisted;
// the loader treats the missing/stale result as defaults.
func (s *FootprintService) RecomputeAndSave(ctx context.Context, input types.EmissionFactors) (types.CarbonFootprintResult, error) {
	result := s.compute(ctx, input)

	if err := s.store.SaveCarbonFootprint(ctx, result); err != nil {
		return types.CarbonFootprintResult{}, err
	}
	return result, nil
}

// LoadResult returns the stored snapshot, or an all-zero default when the
// user has never computed one (or their last recompute failed mid-write).
func (s *FootprintService) LoadResult(ctx context.Context, userID string) (types.CarbonFootprintResult, error) {
	stored, err := s.store.GetCarbonFootprint(ctx, userID)
	if err != nil {
		return types.CarbonFootprintResult{}, err
	}
	if stored == nil {
		return types.CarbonFootprintResult{
			UserID:          userID,
			TopContributors: []types.Contributor{},
		}, nil
	}
	return *stored, nil
}

func (s *FootprintService) compute(ctx context.Context, input types.EmissionFactors) types.CarbonFootprintResult {
	if s.ai != nil {
		result, err := s.ai.Compute(ctx, input)
		if err == nil {
			return result
		}
		log.Printf("Model-assisted estimate failed for %s, using local calculation: %v", input.UserID, err)
	}
	return s.calc.Compute(input)
}

// LocalDeterministic adapts the calculator to the ComputeStrategy shape
// for callers that want to pass strategies around uniformly.
type LocalDeterministic struct {
	Calc *footprint.Calculator
}

func (l LocalDeterministic) Compute(_ context.Context, input types.EmissionFactors) (types.CarbonFootprintResult, error) {
	return l.Calc.Compute(input), nil
}
