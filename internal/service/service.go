package service

import (
	"context"
	"io"
	"log/slog"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"shiplyne/internal/events"
	"shiplyne/internal/repo"
	"shiplyne/internal/state"
	"time"
)

type Diagnostics interface {
	Ping() error
}

type Directory interface {
	GetLocations(ctx context.Context) ([]entity.Location, error)
	GetUsers(ctx context.Context, userType string) ([]entity.User, error)
	GetUser(ctx context.Context, userId string) (*entity.User, error)
	GetVehiclesByOwner(ctx context.Context, ownerId string) ([]entity.Vehicle, error)
}

// Route covers the factory owner's side of the workflow.
type Route interface {
	CreateRoute(ctx context.Context, input *entity.CreateRouteInput) (*entity.RouteOutputModel, error)
	DeleteRoute(ctx context.Context, routeId string) error
	MarkCompleted(ctx context.Context, routeId string) (*entity.RouteOutputModel, error)

	AcceptBid(ctx context.Context, bidId string) (*entity.AcceptBidOutputModel, error)
	RejectBid(ctx context.Context, bidId string) error

	GetRoute(ctx context.Context, routeId string) (*entity.RouteOutputModel, error)
	GetUserRoutes(ctx context.Context, createdBy string, status string, pg *entity.PaginationInput) ([]entity.RouteOutputModel, error)
	GetRoutesByStatus(ctx context.Context, status string) ([]entity.RouteOutputModel, error)
	GetRouteBids(ctx context.Context, routeId string) ([]entity.BidOutputModel, error)
	GetAssignedBid(ctx context.Context, routeId string) (*entity.BidOutputModel, error)
}

// Bid covers the transport owner's side of the workflow.
type Bid interface {
	ListOpenRoutes(ctx context.Context, filter *entity.RouteFilter, pg *entity.PaginationInput) ([]entity.RouteOutputModel, error)
	PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	WithdrawBid(ctx context.Context, bidId string) error

	GetUserBids(ctx context.Context, transporterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
	GetAssignedRoutes(ctx context.Context, transporterId string) ([]entity.RouteOutputModel, error)
	GetCompletedRoutes(ctx context.Context, transporterId string) ([]entity.RouteOutputModel, error)
}

type Shipment interface {
	ListShipments(ctx context.Context, role common.Role, userId string, status string) ([]entity.ShipmentOutputModel, error)
	GetShipment(ctx context.Context, shipmentId string) (*entity.ShipmentOutputModel, error)
	AdvanceShipment(ctx context.Context, shipmentId string, status string) (*entity.ShipmentOutputModel, error)
	ReportTracking(ctx context.Context, shipmentId string, input *entity.TrackingInput) (*entity.ShipmentOutputModel, error)

	OpenView(ctx context.Context, role common.Role, userId string) (*entity.ShipmentViewOutputModel, error)
	GetView(ctx context.Context, viewId string, status string) (*entity.ShipmentViewOutputModel, error)
	MarkPaid(ctx context.Context, viewId string, shipmentId string) (*entity.ShipmentOutputModel, error)
	SetRating(ctx context.Context, viewId string, shipmentId string, rating int) (*entity.ShipmentOutputModel, error)
	CloseView(ctx context.Context, viewId string) error

	// Close tears down every open view.
	Close()
}

type Dashboard interface {
	Overview(ctx context.Context, role common.Role, userId string) (*entity.DashboardOutputModel, error)
}

// StateStore is the shared route/bid/shipment container, implemented by *state.Store.
type StateStore interface {
	Routes() []entity.Route
	Bids() []entity.Bid
	Shipments() []entity.Shipment
	Snapshot() state.Snapshot

	ReplaceRoutes(updater func([]entity.Route) []entity.Route)
	ReplaceBids(updater func([]entity.Bid) []entity.Bid)
	ReplaceShipments(updater func([]entity.Shipment) []entity.Shipment)
	Update(updater func(state.Snapshot) (state.Snapshot, error)) error

	Subscribe(l state.Listener) (unsubscribe func())
}

const (
	TrackingPoll = "poll"
	TrackingPush = "push"
)

type TrackingOptions struct {
	Mode     string
	Interval time.Duration
	// ViewIdleTimeout closes shipment views nobody has read for this long.
	ViewIdleTimeout time.Duration
}

type Dependencies struct {
	Repos     *repo.Repositories
	Store     StateStore
	Publisher events.Publisher
	Logger    *slog.Logger
	Tracking  TrackingOptions
	// Now defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) withDefaults() {
	if d.Publisher == nil {
		d.Publisher = events.NopPublisher{}
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Tracking.Mode == "" {
		d.Tracking.Mode = TrackingPoll
	}
	if d.Tracking.ViewIdleTimeout <= 0 {
		d.Tracking.ViewIdleTimeout = defaultViewIdleTimeout
	}
}

type Services struct {
	Diagnostics Diagnostics
	Directory   Directory
	Route       Route
	Bid         Bid
	Shipment    Shipment
	Dashboard   Dashboard
}

func NewServices(deps Dependencies) *Services {
	deps.withDefaults()

	return &Services{
		Diagnostics: NewDiagnosticsService(deps.Repos),
		Directory:   NewDirectoryService(deps.Repos),
		Route:       NewRouteService(deps),
		Bid:         NewBidService(deps),
		Shipment:    NewShipmentService(deps),
		Dashboard:   NewDashboardService(deps),
	}
}

// eventSink is embedded by services that emit domain events. Publishing
// happens after the state change and never undoes it.
type eventSink struct {
	publisher events.Publisher
	logger    *slog.Logger
}

func newEventSink(deps Dependencies) eventSink {
	return eventSink{publisher: deps.Publisher, logger: deps.Logger}
}

func (e eventSink) publish(ctx context.Context, evs ...events.Event) {
	if err := e.publisher.Publish(ctx, evs...); err != nil {
		e.logger.Warn("event publish failed", slog.String("error", err.Error()), slog.Int("count", len(evs)))
	}
}
