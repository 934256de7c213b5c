package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/infra/db"
	"pharmacy-assistant/internal/repository"
)

type medicineRepo struct {
	open db.Opener
}

func NewMedicineRepository(open db.Opener) repository.MedicineRepository {
	return &medicineRepo{open: open}
}

func (r *medicineRepo) FindByNameLike(name string) (*domain.Medicine, error) {
	g, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close(g)

	var m domain.Medicine
	if err := g.Where("name LIKE ?", "%"+name+"%").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *medicineRepo) FindAll() ([]domain.Medicine, error) {
	g, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close(g)

	var out []domain.Medicine
	if err := g.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *medicineRepo) Save(m *domain.Medicine) error {
	g, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close(g)

	if err := g.Create(m).Error; err != nil {
		return err
	}
	if m.ID == 0 {
		return errors.New("failed to assign medicine ID")
	}
	return nil
}
