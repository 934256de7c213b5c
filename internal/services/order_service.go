package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/infra/rabbitmq"
	"pharmacy-assistant/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// fallbackQuantity replaces an order quantity that cannot be read as an
// integer. Documented behavior, not an error path.
const fallbackQuantity = 1

type OrderService struct {
	repo      repository.OrderRepository
	publisher rabbitmq.PublisherInterface
}

// NewOrderService builds an order service. publisher may be nil, in which
// case order events are skipped.
func NewOrderService(r repository.OrderRepository, pub rabbitmq.PublisherInterface) *OrderService {
	return &OrderService{repo: r, publisher: pub}
}

// CreateOrder inserts a new Pending order stamped with the current server
// date and returns it with its store-generated id. The quantity resolves to
// fallbackQuantity when it is not numeric. No field validation happens here;
// that belongs to the caller.
func (s *OrderService) CreateOrder(ctx context.Context, medicineName string, quantity domain.Quantity, patientName, doctorName string) (*domain.Order, error) {
	order := &domain.Order{
		MedicineName: medicineName,
		Quantity:     int64(quantity.IntOr(fallbackQuantity)),
		PatientName:  patientName,
		DoctorName:   doctorName,
		Date:         time.Now().Format("2006-01-02"),
		Status:       domain.StatusPending,
	}

	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	s.publishOrderCreated(ctx, order)

	return order, nil
}

// publishOrderCreated emits order.created after the insert has committed. A
// publish failure is logged and does not fail the order: the row exists.
func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	evt := domain.OrderCreatedEvent{
		OrderID:      order.ID,
		MedicineName: order.MedicineName,
		Quantity:     order.Quantity,
		PatientName:  order.PatientName,
		DoctorName:   order.DoctorName,
		Date:         order.Date,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		logger.Error().Err(err).Uint64("orderId", order.ID).Msg("failed to publish order.created")
	}
}

func (s *OrderService) GetOrderById(id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) ListOrders() ([]domain.Order, error) {
	return s.repo.FindAll()
}

func (s *OrderService) UpdateOrderStatus(id uint64, status domain.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	o, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOrderNotFound
	}

	return s.repo.UpdateStatus(id, status)
}
