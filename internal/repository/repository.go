package repository

import (
	"pharmacy-assistant/internal/domain"
)

type MedicineRepository interface {
	// FindByNameLike returns the first medicine whose name contains name as
	// a substring, or (nil, nil) when no row matches.
	FindByNameLike(name string) (*domain.Medicine, error)
	FindAll() ([]domain.Medicine, error)
	Save(m *domain.Medicine) error
}

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindAll() ([]domain.Order, error)
	UpdateStatus(id uint64, status domain.OrderStatus) error
}
