package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"appdrop-backend/internal/apperr"
	"appdrop-backend/internal/models"
)

type UserService struct {
	store    RecordStore
	validate *validator.Validate
}

func NewUserService(store RecordStore) *UserService {
	return &UserService{store: store, validate: validator.New()}
}

// List returns every user, without password hashes.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.store.ListCollection(ctx, UsersCollection, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// UpdateInput carries the editable profile fields. Empty fields are left
// untouched.
type UpdateInput struct {
	Email       string `validate:"omitempty,email"`
	DisplayName string
}

// Update applies a partial update to one user's profile.
func (s *UserService) Update(ctx context.Context, userID string, in UpdateInput) error {
	if in.Email == "" && in.DisplayName == "" {
		return apperr.Validation("nothing to update")
	}
	if err := s.validate.Struct(in); err != nil {
		return apperr.Validation("invalid user update: %v", err)
	}

	fields := map[string]interface{}{}
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.DisplayName != "" {
		fields["display_name"] = in.DisplayName
	}

	return s.store.UpdateDocument(ctx, UsersCollection, userID, fields)
}
