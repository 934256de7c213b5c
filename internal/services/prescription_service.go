package services

import (
	"context"

	"pharmacy-assistant/internal/domain"
	"pharmacy-assistant/internal/infra/vision"
	"pharmacy-assistant/internal/parser"
)

// ScanResult is everything a scanned prescription yields: the raw producer
// text, the parsed record, and the inventory check for the parsed medicine.
type ScanResult struct {
	RawText      string              `json:"rawText"`
	Prescription domain.Prescription `json:"prescription"`
	Available    bool                `json:"available"`
	Medicine     *domain.Medicine    `json:"medicine,omitempty"`
}

type PrescriptionService struct {
	producer  vision.TextProducer
	inventory *InventoryService
}

func NewPrescriptionService(producer vision.TextProducer, inventory *InventoryService) *PrescriptionService {
	return &PrescriptionService{producer: producer, inventory: inventory}
}

// Scan runs the full pipeline for one image: produce text, parse it, and
// look the medicine up in the inventory. Producer and store failures
// propagate; parsing never fails.
func (s *PrescriptionService) Scan(ctx context.Context, image []byte) (*ScanResult, error) {
	text, err := s.producer.Produce(ctx, image)
	if err != nil {
		return nil, err
	}

	prescription := parser.Parse(text)

	available, medicine, err := s.inventory.Lookup(prescription.MedicineName)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		RawText:      text,
		Prescription: prescription,
		Available:    available,
		Medicine:     medicine,
	}, nil
}
