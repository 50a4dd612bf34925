package services

import (
	"context"
	"testing"

	"customers-backend/domain"
	"customers-backend/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*CustomerService, *memory.CustomerRepository) {
	t.Helper()
	repo := memory.NewCustomerRepository()
	return NewCustomerService(repo, zap.NewNop()), repo
}

func seed(t *testing.T, repo *memory.CustomerRepository, customer domain.Customer) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), &customer))
}

func TestExistsCustomer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		seeded []domain.Customer
		search domain.CustomerSearch
		want   bool
	}{
		{
			name: "enabled match by username",
			seeded: []domain.Customer{
				{UUID: "u1", Name: "Tony Stark", Username: "tonystark", Email: "tony@stark.com", Enabled: true},
			},
			search: domain.CustomerSearch{Username: "tonystark", Email: "other@stark.com"},
			want:   true,
		},
		{
			name: "enabled match by email only",
			seeded: []domain.Customer{
				{UUID: "u1", Name: "Tony Stark", Email: "tony@stark.com", Enabled: true},
			},
			search: domain.CustomerSearch{Email: "tony@stark.com"},
			want:   true,
		},
		{
			name: "disabled record does not block",
			seeded: []domain.Customer{
				{UUID: "u1", Name: "Tony Stark", Username: "tonystark", Email: "tony@stark.com", Enabled: false},
			},
			search: domain.CustomerSearch{Username: "tonystark", Email: "tony@stark.com"},
			want:   false,
		},
		{
			name:   "absent",
			search: domain.CustomerSearch{Username: "nobody", Email: "nobody@nowhere.com"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newService(t)
			for _, c := range tt.seeded {
				seed(t, repo, c)
			}

			exists, err := service.ExistsCustomer(ctx, tt.search)

			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestCreateCustomer_RoundTrip(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	customer := &domain.Customer{
		UUID:     "dnJb8Km2La6z",
		Name:     "Peter Parker",
		Username: "peterparker",
		Email:    "peter@parker.com",
		Enabled:  true,
	}
	require.NoError(t, service.CreateCustomer(ctx, customer))

	found, err := service.FindCustomer(ctx, "dnJb8Km2La6z")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Peter Parker", found.Name)
	assert.Equal(t, "peterparker", found.Username)
	assert.Equal(t, "peter@parker.com", found.Email)
	assert.True(t, found.Enabled)

	exists, err := service.ExistsCustomer(ctx, domain.CustomerSearch{Email: "peter@parker.com"})
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFindCustomer_Absent(t *testing.T) {
	service, _ := newService(t)

	found, err := service.FindCustomer(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSearchCustomer(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)
	seed(t, repo, domain.Customer{UUID: "u1", Name: "Tony Stark", Username: "tonystark", Email: "tony@stark.com", Enabled: true})

	byUsername, err := service.SearchCustomer(ctx, domain.CustomerSearch{Username: "tonystark"})
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, "u1", byUsername.UUID)

	byEmail, err := service.SearchCustomer(ctx, domain.CustomerSearch{Email: "tony@stark.com"})
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.UUID)

	none, err := service.SearchCustomer(ctx, domain.CustomerSearch{Username: "nobody"})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestFindAllCustomers_IncludesDisabled(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)
	seed(t, repo, domain.Customer{UUID: "u1", Name: "Peter Parker", Username: "peterparker", Email: "peter@parker.com", Enabled: true})
	seed(t, repo, domain.Customer{UUID: "u2", Name: "Tony Stark", Username: "tonystark", Email: "tony@stark.com", Enabled: false})

	list, err := service.FindAllCustomers(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Items, list.Total)
	assert.True(t, list.Items[0].Enabled)
	assert.False(t, list.Items[1].Enabled)
}

func TestDisableCustomer(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)
	seed(t, repo, domain.Customer{UUID: "j9zjZwxNPw", Name: "Tony Stark", Email: "tony@stark.com", Enabled: true})

	disabled, err := service.DisableCustomer(ctx, "j9zjZwxNPw")
	require.NoError(t, err)
	assert.True(t, disabled)

	found, err := service.FindCustomer(ctx, "j9zjZwxNPw")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Enabled)

	// record stays listed after the soft delete
	list, err := service.FindAllCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestDisableCustomer_NotFound(t *testing.T) {
	service, _ := newService(t)

	disabled, err := service.DisableCustomer(context.Background(), "as0J3b1NmaXs")

	require.NoError(t, err)
	assert.False(t, disabled)
}

func TestDisableCustomer_FreesIdentityForReRegistration(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)
	seed(t, repo, domain.Customer{UUID: "u1", Name: "Tony Stark", Username: "tonystark", Email: "tony@stark.com", Enabled: true})

	disabled, err := service.DisableCustomer(ctx, "u1")
	require.NoError(t, err)
	require.True(t, disabled)

	exists, err := service.ExistsCustomer(ctx, domain.CustomerSearch{Username: "tonystark", Email: "tony@stark.com"})
	require.NoError(t, err)
	assert.False(t, exists)
}
