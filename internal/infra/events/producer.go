package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// Event types
const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
)

// BookingEvent событие жизненного цикла бронирования
// Публикуется best-effort: ошибка публикации логируется вызывающей стороной
// и не откатывает саму операцию
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	CarID      string    `json:"car_id"`
	RenterID   string    `json:"renter_id"`
	OwnerID    string    `json:"owner_id"`
	Status     string    `json:"status"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewBookingEvent собирает событие из доменной модели
func NewBookingEvent(eventType string, b *domain.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		CarID:      b.CarID,
		RenterID:   b.RenterID,
		OwnerID:    b.OwnerID,
		Status:     string(b.Status),
		StartDate:  b.StartDate.Format(domain.DateFormat),
		EndDate:    b.EndDate.Format(domain.DateFormat),
		TotalPrice: b.TotalPrice,
		OccurredAt: time.Now().UTC(),
	}
}

// Producer продюсер событий бронирований в Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer создает продюсер с одним переиспользуемым writer'ом
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		topic: topic,
	}
}

// Publish публикует событие, ключ сообщения - ID бронирования
// (события одного бронирования попадают в одну партицию и сохраняют порядок)
func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BookingID),
		Value: data,
	})
}

// Close закрывает writer
func (p *Producer) Close() error {
	return p.writer.Close()
}
