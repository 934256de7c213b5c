// Package sqlite implements the store repositories over gorm. The default
// backend is a single sqlite file; the opener decides the actual dialector.
// Every method acquires a fresh scoped connection and releases it before
// returning.
package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/infra/db"
	"pharmacy-assistant/internal/repository"
)

type orderRepo struct {
	open db.Opener
}

func NewOrderRepository(open db.Opener) repository.OrderRepository {
	return &orderRepo{open: open}
}

func (r *orderRepo) Save(order *domain.Order) error {
	g, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close(g)

	if err := g.Create(order).Error; err != nil {
		return err
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	g, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close(g)

	var o domain.Order
	if err := g.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	g, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close(g)

	var out []domain.Order
	if err := g.Order("date DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(id uint64, status domain.OrderStatus) error {
	g, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close(g)

	return g.Model(&domain.Order{}).Where("id = ?", id).Update("status", status).Error
}
