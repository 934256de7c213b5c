package services

import (
	"pharmacy-assistant/internal/domain"
)

func CreateMockMedicine(id uint64, name, dosage string, quantity int64, price float64) *domain.Medicine {
	return &domain.Medicine{
		ID:       id,
		Name:     name,
		Dosage:   dosage,
		Quantity: quantity,
		Price:    price,
	}
}

func CreateMockOrder(id uint64, medicineName string, quantity int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:           id,
		MedicineName: medicineName,
		Quantity:     quantity,
		PatientName:  TestPatientName,
		DoctorName:   TestDoctorName,
		Date:         TestOrderDate,
		Status:       status,
	}
}

const (
	TestMedicineName = "Amoxicillin"
	TestPatientName  = "Alice Smith"
	TestDoctorName   = "Dr. Bob Jones"
	TestOrderDate    = "2026-01-15"
)
