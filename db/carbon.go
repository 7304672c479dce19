package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-greenprint/types"
)

const (
	emissionFactorsCollection = "emission_factors"
	carbonFootprintCollection = "carbon_footprint"
)

// CarbonRepository reads and writes the two per-user carbon rows: the
// latest self-reported inputs and the latest computed snapshot. Both are
// keyed by user id, so every write is an upsert of the whole row.
type CarbonRepository struct {
	client *firestore.Client
}

func NewCarbonRepository(client *firestore.Client) *CarbonRepository {
	return &CarbonRepository{client: client}
}

// GetEmissionFactors returns the stored inputs row, or (nil, nil) when the
// user has never saved one. Absence is an expected state, not an error.
func (r *CarbonRepository) GetEmissionFactors(ctx context.Context, userID string) (*types.EmissionFactors, error) {
	doc, err := r.client.Collection(emissionFactorsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var input types.EmissionFactors
	if err := doc.DataTo(&input); err != nil {
		return nil, fmt.Errorf("failed to decode emission factors for %s: %w", userID, err)
	}
	input.UserID = userID
	return &input, nil
}

// SaveEmissionFactors upserts the inputs row. A plain Set (no merge)
// guarantees the second save's values fully replace the first.
func (r *CarbonRepository) SaveEmissionFactors(ctx context.Context, input types.EmissionFactors) error {
	_, err := r.client.Collection(emissionFactorsCollection).Doc(input.UserID).Set(ctx, input)
	return err
}

// GetCarbonFootprint returns the stored snapshot, or (nil, nil) when none
// has been computed yet.
func (r *CarbonRepository) GetCarbonFootprint(ctx context.Context, userID string) (*types.CarbonFootprintResult, error) {
	doc, err := r.client.Collection(carbonFootprintCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var result types.CarbonFootprintResult
	if err := doc.DataTo(&result); err != nil {
		return nil, fmt.Errorf("failed to decode carbon footprint for %s: %w", userID, err)
	}
	result.UserID = userID
	return &result, nil
}

// SaveCarbonFootprint upserts the snapshot row.
func (r *CarbonRepository) SaveCarbonFootprint(ctx context.Context, result types.CarbonFootprintResult) error {
	_, err := r.client.Collection(carbonFootprintCollection).Doc(result.UserID).Set(ctx, result)
	return err
}

// ListEmissionFactors returns every stored inputs row. Used by the
// distance backfill job to find routes missing a distance.
func (r *CarbonRepository) ListEmissionFactors(ctx context.Context) ([]types.EmissionFactors, error) {
	docs, err := r.client.Collection(emissionFactorsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	inputs := make([]types.EmissionFactors, 0, len(docs))
	for _, doc := range docs {
		var input types.EmissionFactors
		if err := doc.DataTo(&input); err != nil {
			return nil, fmt.Errorf("failed to decode emission factors doc %s: %w", doc.Ref.ID, err)
		}
		input.UserID = doc.Ref.ID
		inputs = append(inputs, input)
	}
	return inputs, nil
}
