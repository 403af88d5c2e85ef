package memory

import (
	"context"
	"shiplyne/internal/fixtures"
	"shiplyne/internal/repo/repo_errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepo(t *testing.T) {
	repo := NewLocationRepo(fixtures.Locations())
	ctx := context.Background()

	all, err := repo.GetLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	loc, err := repo.GetLocationById(ctx, "loc2")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", loc.City)

	*loc.Lat = 0
	again, _ := repo.GetLocationById(ctx, "loc2")
	assert.Equal(t, 19.0760, *again.Lat)

	_, err = repo.GetLocationById(ctx, "nowhere")
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestUserRepoFiltersByType(t *testing.T) {
	repo := NewUserRepo(fixtures.Users())
	ctx := context.Background()

	transport, err := repo.GetUsers(ctx, "transport")
	require.NoError(t, err)
	assert.Len(t, transport, 3)

	factory, err := repo.GetUsers(ctx, "factory")
	require.NoError(t, err)
	assert.Len(t, factory, 2)

	all, err := repo.GetUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = repo.GetUserById(ctx, "user9")
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestVehicleRepo(t *testing.T) {
	repo := NewVehicleRepo(fixtures.Vehicles())
	ctx := context.Background()

	owned, err := repo.GetVehiclesByOwner(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "veh1", owned[0].Id)
	assert.Equal(t, "veh2", owned[1].Id)

	none, err := repo.GetVehiclesByOwner(ctx, "user3")
	require.NoError(t, err)
	assert.Empty(t, none)

	v, err := repo.GetVehicleById(ctx, "veh3")
	require.NoError(t, err)
	assert.Equal(t, "trailer", v.Type)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocationRepo(fixtures.Locations()).GetLocations(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
