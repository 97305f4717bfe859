package repository

import (
	"context"
	"encoding/json"
	"errors"
	"faction-api/model"
	"faction-api/store"
	"fmt"
)

const usersCollection = "Users"

// ErrUserNotFound is returned when no user document exists for a username.
var ErrUserNotFound = errors.New("user not found")

// IUserRepository defines the contract for user document operations.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]*model.User, error)
	GetUsersByFactionID(ctx context.Context, factionID string) ([]*model.User, error)
}

// UserRepository implements IUserRepository on the document store.
type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func userPath(username string) string {
	return usersCollection + "/" + username
}

// CreateUser writes the user document. The caller is responsible for the
// duplicate-username check; a bare Set overwrites.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return r.store.Set(ctx, userPath(user.Username), user)
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	raw, found, err := r.store.Get(ctx, userPath(username))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}

	user := &model.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		return nil, fmt.Errorf("decode user %q: %w", username, err)
	}
	return user, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	docs, err := r.store.List(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	return decodeUsers(docs)
}

func (r *UserRepository) GetUsersByFactionID(ctx context.Context, factionID string) ([]*model.User, error) {
	docs, err := r.store.QueryByField(ctx, usersCollection, "factionId", factionID)
	if err != nil {
		return nil, err
	}
	return decodeUsers(docs)
}

func decodeUsers(docs map[string]json.RawMessage) ([]*model.User, error) {
	users := make([]*model.User, 0, len(docs))
	for key, raw := range docs {
		user := &model.User{}
		if err := json.Unmarshal(raw, user); err != nil {
			return nil, fmt.Errorf("decode user %q: %w", key, err)
		}
		users = append(users, user)
	}
	return users, nil
}
