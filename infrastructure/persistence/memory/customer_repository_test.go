package memory

import (
	"context"
	"testing"

	"customers-backend/domain"
	apperrors "customers-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndFindOne(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	customer := &domain.Customer{UUID: "u1", Name: "Tony Stark", Email: "tony@stark.com", Enabled: true}
	require.NoError(t, repo.Save(ctx, customer))

	found, err := repo.FindOne(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *customer, *found)

	missing, err := repo.FindOne(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSave_Overwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u1", Name: "Tony Stark", Email: "tony@stark.com", Enabled: true}))
	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u1", Name: "Anthony Stark", Email: "tony@stark.com", Enabled: true}))

	_, total, err := repo.FindAndCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	found, err := repo.FindOne(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Anthony Stark", found.Name)
}

func TestSecondaryLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()
	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u1", Name: "Peter Parker", Username: "peterparker", Email: "peter@parker.com", Enabled: true}))

	byEmail, err := repo.FindByEmail(ctx, "peter@parker.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.UUID)

	byUsername, err := repo.FindByUsername(ctx, "peterparker")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, "u1", byUsername.UUID)

	// an empty username must not match records without one
	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u2", Name: "Tony Stark", Email: "tony@stark.com", Enabled: true}))
	none, err := repo.FindByUsername(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestFindAndCount_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()
	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u1", Name: "Peter Parker", Email: "peter@parker.com", Enabled: true}))
	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u2", Name: "Tony Stark", Email: "tony@stark.com", Enabled: false}))

	items, total, err := repo.FindAndCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "u1", items[0].UUID)
	assert.Equal(t, "u2", items[1].UUID)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()
	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u1", Name: "Tony Stark", Email: "tony@stark.com", Enabled: true}))

	require.NoError(t, repo.Update(ctx, "u1", map[string]interface{}{"enabled": false}))

	found, err := repo.FindOne(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found.Enabled)
}

func TestUpdate_MissingRowIsDistinguished(t *testing.T) {
	repo := NewCustomerRepository()

	err := repo.Update(context.Background(), "missing", map[string]interface{}{"enabled": false})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()
	require.NoError(t, repo.Save(ctx, &domain.Customer{UUID: "u1", Name: "Tony Stark", Email: "tony@stark.com", Enabled: true}))

	require.NoError(t, repo.Delete(ctx, "u1"))

	found, err := repo.FindOne(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, found)

	_, total, err := repo.FindAndCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}
