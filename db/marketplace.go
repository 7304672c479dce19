package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-greenprint/types"
)

const marketplaceCollection = "marketplace"

// Purchase outcome messages surfaced straight to the client.
const (
	PurchaseOK           = "Purchase successful! Your points have been deducted."
	PurchaseInsufficient = "You don't have enough points to purchase this item."
)

// MarketplaceRepository serves the product catalog and handles point
// redemptions.
type MarketplaceRepository struct {
	client *firestore.Client
}

func NewMarketplaceRepository(client *firestore.Client) *MarketplaceRepository {
	return &MarketplaceRepository{client: client}
}

// GetProducts returns the whole catalog, newest first.
func (r *MarketplaceRepository) GetProducts(ctx context.Context) ([]types.Product, error) {
	docs, err := r.client.Collection(marketplaceCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return decodeProducts(docs)
}

// GetProductsByCategory filters the catalog by category.
func (r *MarketplaceRepository) GetProductsByCategory(ctx context.Context, category string) ([]types.Product, error) {
	docs, err := r.client.Collection(marketplaceCollection).
		Where("category", "==", category).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return decodeProducts(docs)
}

// GetProduct returns a single product, or (nil, nil) if it does not exist.
func (r *MarketplaceRepository) GetProduct(ctx context.Context, productID string) (*types.Product, error) {
	doc, err := r.client.Collection(marketplaceCollection).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var product types.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, err
	}
	product.ID = doc.Ref.ID
	return &product, nil
}

// PurchaseProduct redeems a product for points. Reading the price and the
// balance, checking affordability, deducting and writing the ledger entry
// all happen inside a single transaction so two concurrent purchases can
// never overspend. An affordable purchase returns PurchaseOK; an
// unaffordable one returns PurchaseInsufficient without an error.
func (r *MarketplaceRepository) PurchaseProduct(ctx context.Context, userID, productID string) (string, error) {
	productRef := r.client.Collection(marketplaceCollection).Doc(productID)
	userRef := r.client.Collection(usersCollection).Doc(userID)

	insufficient := false
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		productDoc, err := tx.Get(productRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("product %s not found", productID)
			}
			return err
		}
		var product types.Product
		if err := productDoc.DataTo(&product); err != nil {
			return err
		}

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

		if user.Points < product.Amount {
			insufficient = true
			return nil
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "points", Value: user.Points - product.Amount},
		}); err != nil {
			return err
		}

		entry := types.PointTransaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			Points:    -product.Amount,
			Reason:    "marketplace: " + product.Name,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		entryRef := r.client.Collection(pointTransactionsCollection).Doc(entry.ID)
		return tx.Set(entryRef, entry)
	})
	if err != nil {
		return "", err
	}

	if insufficient {
		return PurchaseInsufficient, nil
	}
	return PurchaseOK, nil
}

func decodeProducts(docs []*firestore.DocumentSnapshot) ([]types.Product, error) {
	products := make([]types.Product, 0, len(docs))
	for _, doc := range docs {
		var product types.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, err
		}
		product.ID = doc.Ref.ID
		products = append(products, product)
	}
	return products, nil
}
