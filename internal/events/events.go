// Package events publishes freight domain events after state changes.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	RouteCreated            Type = "route.created"
	RouteDeleted            Type = "route.deleted"
	RouteCompleted          Type = "route.completed"
	BidPlaced               Type = "bid.placed"
	BidAccepted             Type = "bid.accepted"
	ShipmentCreated         Type = "shipment.created"
	ShipmentStatusChanged   Type = "shipment.status_changed"
	ShipmentTrackingUpdated Type = "shipment.tracking_updated"
)

type Event struct {
	Id          string    `json:"id"`
	Type        Type      `json:"type"`
	AggregateId string    `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
	Payload     any       `json:"payload,omitempty"`
}

func New(t Type, aggregateId string, payload any) Event {
	return Event{
		Id:          uuid.NewString(),
		Type:        t,
		AggregateId: aggregateId,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...Event) error { return nil }

func (NopPublisher) Close() error { return nil }
