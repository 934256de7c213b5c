package services

import (
	"errors"

	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/repository"
)

var ErrMedicineNotFound = errors.New("medicine not found")

type InventoryService struct {
	repo repository.MedicineRepository
}

func NewInventoryService(r repository.MedicineRepository) *InventoryService {
	return &InventoryService{repo: r}
}

// Lookup checks whether any stored medicine name contains name as a
// substring. Store errors propagate untouched; a miss is (false, nil, nil),
// not an error.
func (s *InventoryService) Lookup(name string) (bool, *domain.Medicine, error) {
	m, err := s.repo.FindByNameLike(name)
	if err != nil {
		return false, nil, err
	}
	if m == nil {
		return false, nil, nil
	}
	return true, m, nil
}

func (s *InventoryService) ListMedicines() ([]domain.Medicine, error) {
	return s.repo.FindAll()
}

func (s *InventoryService) AddMedicine(m *domain.Medicine) error {
	if m.Name == "" {
		return errors.New("medicine name is required")
	}
	return s.repo.Save(m)
}
