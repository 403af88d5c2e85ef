package service

import (
	"context"
	"log/slog"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"shiplyne/internal/events"
	"shiplyne/internal/state"
	"shiplyne/internal/tracking"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultViewIdleTimeout = 10 * time.Minute
	// opening one more view closes the user's least recently read one
	maxViewsPerUser = 8
)

// forward transitions of the shipment lifecycle
var shipmentTransitions = map[string][]string{
	common.ShipmentScheduled: {common.ShipmentInTransit, common.ShipmentCancelled},
	common.ShipmentInTransit: {common.ShipmentDelivered, common.ShipmentCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range shipmentTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

type ShipmentService struct {
	eventSink
	store    StateStore
	now      func() time.Time
	tracking TrackingOptions

	// views outlive the request that opened them
	ctx         context.Context
	cancel      context.CancelFunc
	reaperDone  chan struct{}
	idleTimeout time.Duration

	mu    sync.Mutex
	views map[string]*shipmentView
}

func NewShipmentService(deps Dependencies) *ShipmentService {
	deps.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	s := &ShipmentService{
		eventSink:   newEventSink(deps),
		store:       deps.Store,
		now:         deps.Now,
		tracking:    deps.Tracking,
		ctx:         ctx,
		cancel:      cancel,
		reaperDone:  make(chan struct{}),
		idleTimeout: deps.Tracking.ViewIdleTimeout,
		views:       make(map[string]*shipmentView),
	}
	go s.reapIdleViews()

	return s
}

func (s *ShipmentService) reapIdleViews() {
	defer close(s.reaperDone)
	ticker := time.NewTicker(max(s.idleTimeout/2, 10*time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			evicted := s.evictLocked(s.now(), "")
			s.mu.Unlock()
			s.stopViews(evicted, "idle")
		}
	}
}

// evictLocked drops idle views and, when userId already holds maxViewsPerUser
// views, the least recently read of them. s.mu must be held.
func (s *ShipmentService) evictLocked(now time.Time, userId string) []*shipmentView {
	var (
		evicted []*shipmentView
		oldest  *shipmentView
		owned   int
	)
	for id, v := range s.views {
		if now.Sub(v.lastUsed) >= s.idleTimeout {
			delete(s.views, id)
			evicted = append(evicted, v)
			continue
		}
		if userId != "" && v.userId == userId {
			owned++
			if oldest == nil || v.lastUsed.Before(oldest.lastUsed) {
				oldest = v
			}
		}
	}
	if owned >= maxViewsPerUser {
		delete(s.views, oldest.id)
		evicted = append(evicted, oldest)
	}

	return evicted
}

func (s *ShipmentService) stopViews(views []*shipmentView, reason string) {
	for _, v := range views {
		v.stop()
		s.logger.Debug("shipment view evicted",
			slog.String("view_id", v.id),
			slog.String("user_id", v.userId),
			slog.String("reason", reason))
	}
}

func (s *ShipmentService) ListShipments(ctx context.Context, role common.Role, userId string, status string) ([]entity.ShipmentOutputModel, error) {
	if !validShipmentFilter(status) {
		return nil, ErrInvalidStatus
	}
	if _, err := common.ParseRole(string(role)); err != nil {
		return nil, ErrInvalidRole
	}

	own := shipmentsFor(s.store.Shipments(), role, userId)
	return mapShipments(shipmentsByStatus(own, status)), nil
}

func (s *ShipmentService) GetShipment(ctx context.Context, shipmentId string) (*entity.ShipmentOutputModel, error) {
	shipments := s.store.Shipments()
	i := findShipment(shipments, shipmentId)
	if i < 0 {
		return nil, ErrShipmentNotFound
	}

	return mapShipment(&shipments[i]), nil
}

func (s *ShipmentService) updateShipment(shipmentId string, apply func(sh *entity.Shipment) error) (entity.Shipment, error) {
	var updated entity.Shipment
	err := s.store.Update(func(snap state.Snapshot) (state.Snapshot, error) {
		i := findShipment(snap.Shipments, shipmentId)
		if i < 0 {
			return snap, ErrShipmentNotFound
		}
		if err := apply(&snap.Shipments[i]); err != nil {
			return snap, err
		}
		updated = snap.Shipments[i]
		return snap, nil
	})

	return updated, err
}

// AdvanceShipment moves a shipment forward in its lifecycle. Moving to
// in_transit records the actual departure, delivered records the arrival.
func (s *ShipmentService) AdvanceShipment(ctx context.Context, shipmentId string, status string) (*entity.ShipmentOutputModel, error) {
	if !common.IsShipmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	now := s.now().UTC()
	var previous string
	updated, err := s.updateShipment(shipmentId, func(sh *entity.Shipment) error {
		if !canTransition(sh.Status, status) {
			return ErrInvalidTransition
		}
		previous = sh.Status
		sh.Status = status
		switch status {
		case common.ShipmentInTransit:
			sh.DepartureTime = now.Format(time.RFC3339)
		case common.ShipmentDelivered:
			sh.ArrivalTime = now.Format(time.RFC3339)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("shipment status changed",
		slog.String("shipment_id", shipmentId),
		slog.String("from", previous),
		slog.String("to", status))
	s.publish(ctx, events.New(events.ShipmentStatusChanged, shipmentId, map[string]string{"from": previous, "status": status}))

	return mapShipment(&updated), nil
}

func (s *ShipmentService) ReportTracking(ctx context.Context, shipmentId string, input *entity.TrackingInput) (*entity.ShipmentOutputModel, error) {
	now := s.now().UTC()
	updated, err := s.updateShipment(shipmentId, func(sh *entity.Shipment) error {
		if sh.Status != common.ShipmentScheduled && sh.Status != common.ShipmentInTransit {
			return ErrInvalidTransition
		}
		lat, lng := input.Lat, input.Lng
		name := input.Place
		if name == "" {
			name = "Reported position"
		}
		sh.Tracking = &entity.Tracking{LastUpdated: now, Lat: lat, Lng: lng}
		sh.CurrentLocation = &entity.Location{Id: "current-" + sh.Id, Name: name, Lat: &lat, Lng: &lng}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("shipment tracking updated", slog.String("shipment_id", shipmentId))
	s.publish(ctx, events.New(events.ShipmentTrackingUpdated, shipmentId, updated.Tracking))

	return mapShipment(&updated), nil
}

// shipmentView is one viewer's window onto their shipments. Payment and rating
// overlays are kept here only and vanish when the view is closed.
type shipmentView struct {
	id     string
	role   common.Role
	userId string
	stop   func()
	// guarded by ShipmentService.mu
	lastUsed time.Time

	mu        sync.RWMutex
	shipments []entity.Shipment
	paid      map[string]bool
	ratings   map[string]int
}

func (v *shipmentView) refresh(shipments []entity.Shipment) {
	v.mu.Lock()
	v.shipments = shipments
	v.mu.Unlock()
}

// overlaid must be called with v.mu held.
func (v *shipmentView) overlaid(sh entity.Shipment) entity.Shipment {
	if v.paid[sh.Id] {
		sh.PaymentStatus = common.PaymentCompleted
	}
	if r, ok := v.ratings[sh.Id]; ok {
		rating := entity.Rating{}
		if sh.Rating != nil {
			rating = *sh.Rating
		}
		rating.Transport = r
		sh.Rating = &rating
	}

	return sh
}

func (v *shipmentView) list(status string) []entity.Shipment {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]entity.Shipment, 0, len(v.shipments))
	for _, sh := range shipmentsByStatus(v.shipments, status) {
		out = append(out, v.overlaid(sh))
	}

	return out
}

// annotate checks that the viewer may annotate shipmentId and applies set under the view lock.
func (v *shipmentView) annotate(shipmentId string, set func()) (entity.Shipment, error) {
	if v.role != common.Factory {
		return entity.Shipment{}, ErrViewForbidden
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	i := findShipment(v.shipments, shipmentId)
	if i < 0 {
		return entity.Shipment{}, ErrShipmentNotFound
	}
	if v.shipments[i].Status != common.ShipmentDelivered {
		return entity.Shipment{}, ErrShipmentNotDelivered
	}
	set()

	return v.overlaid(v.shipments[i]), nil
}

func (v *shipmentView) output(status string) *entity.ShipmentViewOutputModel {
	return &entity.ShipmentViewOutputModel{
		Id:        v.id,
		Role:      string(v.role),
		UserId:    v.userId,
		Shipments: mapShipments(v.list(status)),
	}
}

func (s *ShipmentService) feedFor(role common.Role, source tracking.Source) tracking.Feed {
	if role != common.Transport {
		return tracking.NewOnceFeed(source, s.logger)
	}
	if s.tracking.Mode == TrackingPush {
		return tracking.NewPushFeed(source, s.store, s.logger)
	}

	return tracking.NewPollingFeed(source, s.tracking.Interval, s.logger)
}

func (s *ShipmentService) OpenView(ctx context.Context, role common.Role, userId string) (*entity.ShipmentViewOutputModel, error) {
	if _, err := common.ParseRole(string(role)); err != nil {
		return nil, ErrInvalidRole
	}

	now := s.now()
	view := &shipmentView{
		id:       uuid.NewString(),
		role:     role,
		userId:   userId,
		lastUsed: now,
		paid:     make(map[string]bool),
		ratings:  make(map[string]int),
	}
	source := func(ctx context.Context) ([]entity.Shipment, error) {
		return shipmentsFor(s.store.Shipments(), role, userId), nil
	}
	view.stop = s.feedFor(role, source).Subscribe(s.ctx, view.refresh)

	s.mu.Lock()
	evicted := s.evictLocked(now, userId)
	s.views[view.id] = view
	s.mu.Unlock()
	s.stopViews(evicted, "replaced")

	s.logger.Debug("shipment view opened",
		slog.String("view_id", view.id),
		slog.String("role", string(role)),
		slog.String("user_id", userId))

	return view.output(common.ShipmentAll), nil
}

func (s *ShipmentService) view(viewId string) (*shipmentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[viewId]
	if !ok {
		return nil, ErrViewNotFound
	}
	v.lastUsed = s.now()

	return v, nil
}

func (s *ShipmentService) GetView(ctx context.Context, viewId string, status string) (*entity.ShipmentViewOutputModel, error) {
	if !validShipmentFilter(status) {
		return nil, ErrInvalidStatus
	}
	v, err := s.view(viewId)
	if err != nil {
		return nil, err
	}

	return v.output(status), nil
}

func (s *ShipmentService) MarkPaid(ctx context.Context, viewId string, shipmentId string) (*entity.ShipmentOutputModel, error) {
	v, err := s.view(viewId)
	if err != nil {
		return nil, err
	}

	sh, err := v.annotate(shipmentId, func() { v.paid[shipmentId] = true })
	if err != nil {
		return nil, err
	}

	return mapShipment(&sh), nil
}

func (s *ShipmentService) SetRating(ctx context.Context, viewId string, shipmentId string, rating int) (*entity.ShipmentOutputModel, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	v, err := s.view(viewId)
	if err != nil {
		return nil, err
	}

	sh, err := v.annotate(shipmentId, func() { v.ratings[shipmentId] = rating })
	if err != nil {
		return nil, err
	}

	return mapShipment(&sh), nil
}

func (s *ShipmentService) CloseView(ctx context.Context, viewId string) error {
	s.mu.Lock()
	v, ok := s.views[viewId]
	delete(s.views, viewId)
	s.mu.Unlock()

	if !ok {
		return ErrViewNotFound
	}
	v.stop()
	s.logger.Debug("shipment view closed", slog.String("view_id", viewId))

	return nil
}

func (s *ShipmentService) Close() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*shipmentView)
	s.mu.Unlock()

	for _, v := range views {
		v.stop()
	}
	s.cancel()
	<-s.reaperDone
}
