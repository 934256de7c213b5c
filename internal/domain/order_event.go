package domain

type OrderCreatedEvent struct {
	OrderID      uint64 `json:"orderId"`
	MedicineName string `json:"medicineName"`
	Quantity     int64  `json:"quantity"`
	PatientName  string `json:"patientName"`
	DoctorName   string `json:"doctorName"`
	Date         string `json:"date"`
}
