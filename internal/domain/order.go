package domain

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	MedicineName string      `json:"medicineName" gorm:"not null;index"`
	Quantity     int64       `json:"quantity"`
	PatientName  string      `json:"patientName"`
	DoctorName   string      `json:"doctorName"`
	Date         string      `json:"date" gorm:"type:varchar(10)"`
	Status       OrderStatus `json:"status" gorm:"type:varchar(16);default:'Pending'"`
}

func (Order) TableName() string { return "orders" }
