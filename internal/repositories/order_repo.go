package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// OrderRepository defines the interface for order and shipping address data access.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uint) error

	GetAllAddresses(ctx context.Context) ([]models.ShippingAddress, error)
	GetAddressByID(ctx context.Context, id uint) (*models.ShippingAddress, error)
	CreateAddress(ctx context.Context, address *models.ShippingAddress) error
	UpdateAddress(ctx context.Context, address *models.ShippingAddress) error
	// DeleteAddress also deletes the orders shipped to the address.
	DeleteAddress(ctx context.Context, id uint) error
}

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

func (r *GORMOrderRepository) orders(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Product").Preload("Customer")
}

// GetAll retrieves all orders.
func (r *GORMOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.orders(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.orders(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

// Create creates a new order.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := r.db.WithContext(ctx).Omit("Product", "Customer").Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Update changes the product, customer and quantity of an order.
func (r *GORMOrderRepository) Update(ctx context.Context, order *models.Order) error {
	res := r.db.WithContext(ctx).Model(&models.Order{ID: order.ID}).Updates(map[string]any{
		"product_id":  order.ProductID,
		"customer_id": order.CustomerID,
		"quantity":    order.Quantity,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %d not found for update: %w", order.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes an order by its ID.
func (r *GORMOrderRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GORMOrderRepository) GetAllAddresses(ctx context.Context) ([]models.ShippingAddress, error) {
	var addresses []models.ShippingAddress
	if err := r.db.WithContext(ctx).Order("id").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shipping addresses: %w", err)
	}
	return addresses, nil
}

func (r *GORMOrderRepository) GetAddressByID(ctx context.Context, id uint) (*models.ShippingAddress, error) {
	var address models.ShippingAddress
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shipping address with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shipping address by ID %d: %w", id, err)
	}
	return &address, nil
}

func (r *GORMOrderRepository) CreateAddress(ctx context.Context, address *models.ShippingAddress) error {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return fmt.Errorf("failed to create shipping address: %w", err)
	}
	return nil
}

func (r *GORMOrderRepository) UpdateAddress(ctx context.Context, address *models.ShippingAddress) error {
	res := r.db.WithContext(ctx).
		Model(&models.ShippingAddress{ID: address.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update shipping address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("shipping address with ID %d not found for update: %w", address.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMOrderRepository) DeleteAddress(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.ShippingAddress{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("shipping address with ID %d not found for deletion: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete shipping address: %w", err)
	}
	return nil
}
