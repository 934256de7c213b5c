package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/mocks"
)

func TestPrescriptionService_Scan(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF}

	t.Run("parses producer text and finds the medicine", func(t *testing.T) {
		producer := new(mocks.MockTextProducer)
		producer.On("Produce", mock.Anything, image).Return("Patient: Alice\nMedicine: Amoxicillin\nQuantity: 2", nil)

		medRepo := new(mocks.MockMedicineRepository)
		medRepo.On("FindByNameLike", "Amoxicillin").Return(CreateMockMedicine(1, "Amoxicillin", "500mg", 100, 12.99), nil)

		service := NewPrescriptionService(producer, NewInventoryService(medRepo))
		result, err := service.Scan(context.Background(), image)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", result.Prescription.PatientName)
		assert.Equal(t, "Amoxicillin", result.Prescription.MedicineName)
		assert.True(t, result.Available)
		assert.Equal(t, "Amoxicillin", result.Medicine.Name)
		producer.AssertExpectations(t)
		medRepo.AssertExpectations(t)
	})

	t.Run("unparseable text still checks the sentinel name", func(t *testing.T) {
		producer := new(mocks.MockTextProducer)
		producer.On("Produce", mock.Anything, image).Return("illegible scrawl", nil)

		medRepo := new(mocks.MockMedicineRepository)
		medRepo.On("FindByNameLike", domain.NotFound).Return(nil, nil)

		service := NewPrescriptionService(producer, NewInventoryService(medRepo))
		result, err := service.Scan(context.Background(), image)

		assert.NoError(t, err)
		assert.False(t, result.Available)
		assert.Nil(t, result.Medicine)
		assert.Equal(t, domain.NotFound, result.Prescription.MedicineName)
	})

	t.Run("producer failure propagates", func(t *testing.T) {
		producer := new(mocks.MockTextProducer)
		producer.On("Produce", mock.Anything, image).Return("", errors.New("all producers failed"))

		service := NewPrescriptionService(producer, NewInventoryService(new(mocks.MockMedicineRepository)))
		result, err := service.Scan(context.Background(), image)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		producer := new(mocks.MockTextProducer)
		producer.On("Produce", mock.Anything, image).Return("Medicine: Aspirin", nil)

		medRepo := new(mocks.MockMedicineRepository)
		medRepo.On("FindByNameLike", "Aspirin").Return(nil, errors.New("unable to open database file"))

		service := NewPrescriptionService(producer, NewInventoryService(medRepo))
		result, err := service.Scan(context.Background(), image)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
