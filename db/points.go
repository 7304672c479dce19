package db

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-greenprint/types"
)

const pointTransactionsCollection = "point_transactions"

// PointsRepository keeps the point ledger and the balance on the user doc
// consistent: every balance change goes through a transaction that writes
// both.
type PointsRepository struct {
	client *firestore.Client
}

func NewPointsRepository(client *firestore.Client) *PointsRepository {
	return &PointsRepository{client: client}
}

// AddPoints appends a ledger entry and adjusts the user's balance in one
// atomic transaction. Negative points are redemptions.
func (r *PointsRepository) AddPoints(ctx context.Context, userID string, points int64, reason string) (types.PointTransaction, error) {
	entry := types.PointTransaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Points:    points,
		Reason:    reason,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	userRef := r.client.Collection(usersCollection).Doc(userID)
	entryRef := r.client.Collection(pointTransactionsCollection).Doc(entry.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userDoc, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("user %s not found", userID)
			}
			return err
		}

		var user types.User
		if err := userDoc.DataTo(&user); err != nil {
			return err
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "points", Value: user.Points + points},
		}); err != nil {
			return err
		}
		return tx.Set(entryRef, entry)
	})
	if err != nil {
		return types.PointTransaction{}, err
	}

	return entry, nil
}

// GetUserPoints returns the current balance from the user doc. A missing
// profile reads as zero points.
func (r *PointsRepository) GetUserPoints(ctx context.Context, userID string) (int64, error) {
	doc, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, nil
		}
		return 0, err
	}

	var user types.User
	if err := doc.DataTo(&user); err != nil {
		return 0, err
	}
	return user.Points, nil
}

// GetPointTransactions returns the user's ledger, newest first.
func (r *PointsRepository) GetPointTransactions(ctx context.Context, userID string) ([]types.PointTransaction, error) {
	docs, err := r.client.Collection(pointTransactionsCollection).
		Where("user_id", "==", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	entries := make([]types.PointTransaction, 0, len(docs))
	for _, doc := range docs {
		var entry types.PointTransaction
		if err := doc.DataTo(&entry); err != nil {
			return nil, err
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}

	// Sort locally instead of OrderBy to avoid needing a composite index.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})
	return entries, nil
}
