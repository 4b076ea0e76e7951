package services

import (
	"context"
	"errors"
	"log/slog"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/serializers"

	"github.com/go-playground/validator/v10"
)

// OrderService handles business logic related to orders and shipping addresses.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	events      EventPublisher
	validate    *validator.Validate
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		events:      events,
		validate:    newValidator(),
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// CreateOrder validates the input, stores the order and announces it.
func (s *OrderService) CreateOrder(ctx context.Context, in *serializers.OrderInput) (*models.Order, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}

	order := &models.Order{}
	in.Apply(order)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	publish(s.events, "order.created", map[string]any{
		"order_id":    order.ID,
		"product_id":  order.ProductID,
		"customer_id": order.CustomerID,
		"quantity":    order.Quantity,
	})
	slog.Info("order created", "order_id", order.ID, "product_id", order.ProductID)
	return s.orderRepo.GetByID(ctx, order.ID)
}

// UpdateOrder replaces the product, customer and quantity of an order.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, in *serializers.OrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	in.Apply(order)
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, id)
}

// DeleteOrder deletes an order by its ID.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderService) check(ctx context.Context, in *serializers.OrderInput) error {
	if err := validateStruct(s.validate, in); err != nil {
		return err
	}
	fields := map[string]string{}
	if _, err := s.productRepo.GetByID(ctx, *in.Product); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["product"] = invalidPK(*in.Product)
	}
	if _, err := s.orderRepo.GetAddressByID(ctx, *in.Customer); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["customer"] = invalidPK(*in.Customer)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *OrderService) GetAllAddresses(ctx context.Context) ([]models.ShippingAddress, error) {
	return s.orderRepo.GetAllAddresses(ctx)
}

func (s *OrderService) GetAddressByID(ctx context.Context, id uint) (*models.ShippingAddress, error) {
	return s.orderRepo.GetAddressByID(ctx, id)
}

func (s *OrderService) CreateAddress(ctx context.Context, in *serializers.ShippingAddressInput) (*models.ShippingAddress, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	address := &models.ShippingAddress{}
	in.Apply(address)
	if err := s.orderRepo.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *OrderService) UpdateAddress(ctx context.Context, id uint, in *serializers.ShippingAddressInput) (*models.ShippingAddress, error) {
	address, err := s.orderRepo.GetAddressByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	in.Apply(address)
	if err := s.orderRepo.UpdateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteAddress deletes a shipping address and its orders.
func (s *OrderService) DeleteAddress(ctx context.Context, id uint) error {
	return s.orderRepo.DeleteAddress(ctx, id)
}
