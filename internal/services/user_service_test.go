package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appdrop-backend/internal/apperr"
)

func TestUpdateDisplayNameVisibleInList(t *testing.T) {
	store := newFakeStore()
	user := seedUser(store, "u1@example.com")
	svc := NewUserService(store)

	err := svc.Update(context.Background(), user.ID.Hex(), UpdateInput{DisplayName: "Alice"})
	require.NoError(t, err)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].DisplayName)
	assert.Equal(t, "u1@example.com", users[0].Email, "untouched fields stay intact")
}

func TestUpdatePartialFields(t *testing.T) {
	store := newFakeStore()
	user := seedUser(store, "u1@example.com")
	svc := NewUserService(store)

	err := svc.Update(context.Background(), user.ID.Hex(), UpdateInput{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", store.users[user.ID.Hex()].Email)
}

func TestUpdateValidation(t *testing.T) {
	store := newFakeStore()
	user := seedUser(store, "u1@example.com")
	svc := NewUserService(store)

	var valErr *apperr.ValidationError

	err := svc.Update(context.Background(), user.ID.Hex(), UpdateInput{})
	require.ErrorAs(t, err, &valErr)

	err = svc.Update(context.Background(), user.ID.Hex(), UpdateInput{Email: "not-an-email"})
	require.ErrorAs(t, err, &valErr)
}

func TestUpdateUnknownUser(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	err := svc.Update(context.Background(), "507f1f77bcf86cd799439011", UpdateInput{DisplayName: "Alice"})
	var notFound *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListStripsPasswordHashes(t *testing.T) {
	store := newFakeStore()
	user := seedUser(store, "u1@example.com")
	user.Password = "$2a$10$something"
	store.users[user.ID.Hex()] = user
	svc := NewUserService(store)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
}
