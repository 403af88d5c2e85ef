package service

import (
	"context"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bidIds(bids []entity.BidOutputModel) []string {
	ids := make([]string, 0, len(bids))
	for _, b := range bids {
		ids = append(ids, b.Id)
	}
	return ids
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(nil)
	svc := NewDashboardService(env.deps)
	ctx := context.Background()

	out, err := svc.Overview(ctx, common.Transport, "user1")
	require.NoError(t, err)
	assert.Equal(t, entity.DashboardStats{OpenRoutes: 4, ActiveBids: 5, CompletedThisMonth: 0, ActiveShipments: 1}, out.Stats)

	_, err = NewRouteService(env.deps).MarkCompleted(ctx, "route1")
	require.NoError(t, err)

	out, err = svc.Overview(ctx, common.Factory, "user3")
	require.NoError(t, err)
	assert.Equal(t, entity.DashboardStats{OpenRoutes: 3, ActiveBids: 5, CompletedThisMonth: 1, ActiveShipments: 1}, out.Stats)
}

func TestCompletedThisMonthUsesCreationDate(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	// route3 was created ten days before the fixed clock, still inside March
	_, err := NewRouteService(env.deps).MarkCompleted(ctx, "route3")
	require.NoError(t, err)

	env.deps.Now = func() time.Time { return fixedNow.AddDate(0, 1, 0) }
	out, err := NewDashboardService(env.deps).Overview(ctx, common.Factory, "user4")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stats.CompletedThisMonth)
	assert.Equal(t, 0, out.Stats.ActiveShipments)
}

func TestTransportWorkspace(t *testing.T) {
	env := newTestEnv(nil)

	out, err := NewDashboardService(env.deps).Overview(context.Background(), common.Transport, "user1")
	require.NoError(t, err)
	require.NotNil(t, out.Transport)
	assert.Nil(t, out.Factory)

	assert.Len(t, out.Transport.OpenRoutes, 4)
	assert.Equal(t, []string{"bid1", "bid4"}, bidIds(out.Transport.MyBids))
	assert.Equal(t, []string{"route3"}, routeIds(out.Transport.AssignedRoutes))
	assert.Empty(t, out.Transport.CompletedRoutes)
}

func TestFactoryWorkspace(t *testing.T) {
	env := newTestEnv(nil)
	svc := NewDashboardService(env.deps)

	out, err := svc.Overview(context.Background(), common.Factory, "user3")
	require.NoError(t, err)
	require.NotNil(t, out.Factory)
	assert.Nil(t, out.Transport)
	assert.Equal(t, []string{"route1", "route2", "route5"}, routeIds(out.Factory.MyRoutes))
	assert.Equal(t, []string{"bid1", "bid2", "bid3"}, bidIds(out.Factory.PendingBids))

	out, err = svc.Overview(context.Background(), common.Factory, "user4")
	require.NoError(t, err)
	assert.Equal(t, []string{"route3", "route4"}, routeIds(out.Factory.MyRoutes))
	assert.Equal(t, []string{"bid6"}, bidIds(out.Factory.PendingBids))
}

func TestOverviewUnknownRole(t *testing.T) {
	env := newTestEnv(nil)

	_, err := NewDashboardService(env.deps).Overview(context.Background(), common.Role("broker"), "user1")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
