package outbox

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
//
// The domain layer stays free of serialization concerns; prices are written
// as decimal strings so consumers never see float rounding.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"name":        e.Name,
			"price":       e.Price.String(),
			"category_id": e.CategoryID,
			"created_at":  e.CreatedAt,
		}

	case *domain.ProductUpdatedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"changes":     e.Changes,
			"updated_at":  e.UpdatedAt,
			"occurred_at": e.OccurredAt(),
		}

	case *domain.ProductDeletedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"deleted_at":  e.DeletedAt,
			"occurred_at": e.OccurredAt(),
		}

	default:
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %s: %w", ev.EventType(), err)
	}
	return string(b), nil
}

// BuildEvents enriches domain events into pending outbox rows.
// Call it after the aggregate id is known.
func BuildEvents(events []domain.DomainEvent) ([]*contracts.OutboxEvent, error) {
	out := make([]*contracts.OutboxEvent, 0, len(events))
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return nil, err
		}
		out = append(out, &contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       contracts.OutboxStatusPending,
			CreatedAtUTC: ev.OccurredAt().UTC(),
		})
	}
	return out, nil
}
