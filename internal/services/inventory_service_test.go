package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/mocks"
)

func TestInventoryService_Lookup(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		setupMocks    func(*mocks.MockMedicineRepository)
		wantFound     bool
		wantName      string
		expectedError string
	}{
		{
			name:  "substring match",
			query: "amox",
			setupMocks: func(repo *mocks.MockMedicineRepository) {
				repo.On("FindByNameLike", "amox").Return(CreateMockMedicine(1, "Amoxicillin", "500mg", 100, 12.99), nil)
			},
			wantFound: true,
			wantName:  "Amoxicillin",
		},
		{
			name:  "no match",
			query: "zzz-nonexistent",
			setupMocks: func(repo *mocks.MockMedicineRepository) {
				repo.On("FindByNameLike", "zzz-nonexistent").Return(nil, nil)
			},
			wantFound: false,
		},
		{
			name:  "store unreachable propagates",
			query: "amox",
			setupMocks: func(repo *mocks.MockMedicineRepository) {
				repo.On("FindByNameLike", "amox").Return(nil, errors.New("unable to open database file"))
			},
			expectedError: "unable to open database file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMedicineRepository)
			tt.setupMocks(mockRepo)

			service := NewInventoryService(mockRepo)
			found, medicine, err := service.Lookup(tt.query)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.False(t, found)
			} else if tt.wantFound {
				assert.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, tt.wantName, medicine.Name)
			} else {
				assert.NoError(t, err)
				assert.False(t, found)
				assert.Nil(t, medicine)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryService_AddMedicine(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		service := NewInventoryService(new(mocks.MockMedicineRepository))
		assert.Error(t, service.AddMedicine(&domain.Medicine{Dosage: "10mg"}))
	})

	t.Run("saves through the repository", func(t *testing.T) {
		mockRepo := new(mocks.MockMedicineRepository)
		m := &domain.Medicine{Name: "Ibuprofen", Dosage: "200mg", Quantity: 50, Price: 4.99}
		mockRepo.On("Save", m).Return(nil)

		service := NewInventoryService(mockRepo)
		assert.NoError(t, service.AddMedicine(m))
		mockRepo.AssertExpectations(t)
	})
}

func TestInventoryService_ListMedicines(t *testing.T) {
	mockRepo := new(mocks.MockMedicineRepository)
	mockRepo.On("FindAll").Return([]domain.Medicine{
		*CreateMockMedicine(1, "Amoxicillin", "500mg", 100, 12.99),
		*CreateMockMedicine(2, "Lisinopril", "10mg", 50, 15.50),
	}, nil)

	service := NewInventoryService(mockRepo)
	medicines, err := service.ListMedicines()

	assert.NoError(t, err)
	assert.Len(t, medicines, 2)
}
