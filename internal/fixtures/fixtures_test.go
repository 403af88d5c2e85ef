package fixtures

import (
	"shiplyne/internal/common"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedReferencesResolve(t *testing.T) {
	data := Seed(time.Now())

	locations := map[string]bool{}
	for _, l := range data.Locations {
		locations[l.Id] = true
	}
	vehicles := map[string]bool{}
	for _, v := range data.Vehicles {
		vehicles[v.Id] = true
	}
	routes := map[string]bool{}
	for _, r := range data.Routes {
		routes[r.Id] = true
		assert.True(t, locations[r.Source.Id], r.Id)
		assert.True(t, locations[r.Destination.Id], r.Id)
	}
	for _, b := range data.Bids {
		assert.True(t, routes[b.RouteId], b.Id)
		assert.True(t, vehicles[b.VehicleId], b.Id)
	}
}

func TestSeedAssignedRoutesHaveOneAcceptedBid(t *testing.T) {
	data := Seed(time.Now())

	for _, r := range data.Routes {
		if r.Status != common.RouteAssigned {
			continue
		}
		accepted := 0
		for _, b := range data.Bids {
			if b.RouteId == r.Id && b.Status == common.BidAccepted {
				accepted++
				assert.Equal(t, r.AssignedBidId, b.Id)
			}
		}
		require.Equal(t, 1, accepted, r.Id)
	}
}

func TestSeedIsIndependentPerCall(t *testing.T) {
	a := Seed(time.Now())
	b := Seed(time.Now())

	*a.Routes[0].Source.Lat = 0
	a.Routes[0].SpecialRequirements[0] = "changed"

	assert.Equal(t, 28.6139, *b.Routes[0].Source.Lat)
	assert.Equal(t, "Fragile", b.Routes[0].SpecialRequirements[0])
}
