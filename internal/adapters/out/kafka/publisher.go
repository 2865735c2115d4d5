// Package kafka publishes committed order changes to a Kafka topic.
//
// Every message is keyed by the order id so all events of one order land on the
// same partition in commit order. Trace context travels in the message headers.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"deliveryhub/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	EventTypeOrderCreated       = "order.created"
	EventTypeOrderStatusChanged = "order.status_changed"
)

var tracer = otel.Tracer("deliveryhub/kafka")

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// envelope is the JSON body of every published message.
type envelope struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type orderCreatedPayload struct {
	OrderID    int64  `json:"id_pedido"`
	CustomerID int64  `json:"id_cliente"`
	Total      string `json:"total_pedido"`
	ItemCount  int    `json:"cantidad_detalles"`
}

type orderStatusChangedPayload struct {
	OrderID   int64  `json:"id_pedido"`
	Status    string `json:"estado_pedido"`
	CourierID *int64 `json:"id_repartidor"`
}

// OrderEventPublisher implements ports.OrderEventPublisher over a Kafka writer.
type OrderEventPublisher struct {
	writer MessageWriter
	topic  string
}

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

// NewOrderEventPublisher writes to topic through the bootstrap broker at host.
func NewOrderEventPublisher(host, topic string) *OrderEventPublisher {
	return NewOrderEventPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(host),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
	}, topic)
}

// NewOrderEventPublisherWithWriter wraps an existing writer. The writer must already
// be bound to topic; topic is only used for tracing attributes.
func NewOrderEventPublisherWithWriter(writer MessageWriter, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer, topic: topic}
}

func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, event ports.OrderCreatedEvent) error {
	return p.publish(ctx, event.OrderID.Int64(), EventTypeOrderCreated, event.OccurredAt, orderCreatedPayload{
		OrderID:    event.OrderID.Int64(),
		CustomerID: event.CustomerID.Int64(),
		Total:      event.Total,
		ItemCount:  event.ItemCount,
	})
}

func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	var courierID *int64
	if event.CourierID != nil {
		id := event.CourierID.Int64()
		courierID = &id
	}

	return p.publish(ctx, event.OrderID.Int64(), EventTypeOrderStatusChanged, event.OccurredAt, orderStatusChangedPayload{
		OrderID:   event.OrderID.Int64(),
		Status:    event.Status,
		CourierID: courierID,
	})
}

func (p *OrderEventPublisher) publish(ctx context.Context, orderID int64, eventType string, occurredAt time.Time, payload any) error {
	body, err := json.Marshal(envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: occurredAt.UTC(),
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	key := strconv.FormatInt(orderID, 10)
	msg := kafka.Message{
		Key:     []byte(key),
		Value:   body,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(eventType)}},
	}

	ctx, span := tracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(key),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, messageCarrier{msg: &msg})

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

var _ ports.OrderEventPublisher = NopPublisher{}

func (NopPublisher) PublishOrderCreated(context.Context, ports.OrderCreatedEvent) error {
	return nil
}

func (NopPublisher) PublishOrderStatusChanged(context.Context, ports.OrderStatusChangedEvent) error {
	return nil
}
