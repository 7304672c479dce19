package db

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-greenprint/types"
)

const usersCollection = "users"

// UserRepository manages app profiles. Auth lives in the identity
// provider; this only stores profile data and the point balance.
type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// GetUser returns the profile, or (nil, nil) if it does not exist.
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*types.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var user types.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByEmail looks a profile up by email address.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	docs, err := r.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var user types.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = docs[0].Ref.ID
	return &user, nil
}

// CreateUser creates a fresh profile with a zero point balance.
func (r *UserRepository) CreateUser(ctx context.Context, username, email string) (types.User, error) {
	user := types.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Points:    0,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateUser applies partial profile updates (username and/or email).
func (r *UserRepository) UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) error {
	_, err := r.client.Collection(usersCollection).Doc(userID).Set(ctx, updates, firestore.MergeAll)
	return err
}
