package domain

type Medicine struct {
	ID       uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"not null;index"`
	Dosage   string  `json:"dosage"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

func (Medicine) TableName() string { return "medicines" }
