package http

import (
	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/infra/pdf"
)

type CreateOrderRequest struct {
	MedicineName string          `json:"medicineName" binding:"required"`
	Quantity     domain.Quantity `json:"quantity"`
	PatientName  string          `json:"patientName"`
	DoctorName   string          `json:"doctorName"`
}

type CreateOrderResponse struct {
	ID uint64 `json:"id"`
}

type AddMedicineRequest struct {
	Name     string  `json:"name" binding:"required"`
	Dosage   string  `json:"dosage"`
	Quantity int64   `json:"quantity" binding:"min=0"`
	Price    float64 `json:"price" binding:"min=0"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

type OrderFormRequest struct {
	Items []pdf.OrderLine `json:"items" binding:"required"`
}

func reqToMedicine(req AddMedicineRequest) *domain.Medicine {
	return &domain.Medicine{
		Name:     req.Name,
		Dosage:   req.Dosage,
		Quantity: req.Quantity,
		Price:    req.Price,
	}
}

type AvailabilityResponse struct {
	Available bool             `json:"available"`
	Medicine  *domain.Medicine `json:"medicine,omitempty"`
}

type RecommendationResponse struct {
	MedicineName    string `json:"medicineName"`
	Recommendations string `json:"recommendations"`
}
