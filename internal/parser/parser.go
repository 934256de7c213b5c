// Package parser turns freeform prescription text into a fixed-shape
// record. The text normally comes from a vision model that was asked for
// "Label: Value" lines, but nothing here assumes the producer cooperated:
// any input yields a fully populated record.
package parser

import (
	"strings"

	"pharmacy-assistant/internal/domain"
)

// Placeholder literals a template-filling producer may echo back unfilled.
// A value equal to its field's placeholder is treated as missing.
const (
	placeholderPatient      = "[Patient Name]"
	placeholderDoctor       = "[Doctor Name]"
	placeholderMedicine     = "[Medicine Name]"
	placeholderDosage       = "[Dosage]"
	placeholderQuantity     = "[Quantity]"
	placeholderInstructions = "[Instructions if any]"
)

// Parse extracts prescription fields from text. It never fails: lines
// without a colon are skipped, unrecognized keys are ignored, and missing
// fields keep their sentinel defaults. When several lines match the same
// field the last one wins. A key containing more than one field token
// classifies as the first in the order patient, doctor, medicine, dosage,
// quantity, instructions.
func Parse(text string) domain.Prescription {
	p := domain.Prescription{
		PatientName:  domain.NotFound,
		DoctorName:   domain.NotFound,
		MedicineName: domain.NotFound,
		Dosage:       domain.NotFound,
		Quantity:     domain.IntQuantity(0),
		Instructions: domain.NotFound,
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch {
		case strings.Contains(key, "patient"):
			if value != placeholderPatient {
				p.PatientName = value
			}
		case strings.Contains(key, "doctor"):
			if value != placeholderDoctor {
				p.DoctorName = value
			}
		case strings.Contains(key, "medicine"):
			if value != placeholderMedicine {
				p.MedicineName = value
			}
		case strings.Contains(key, "dosage"):
			if value != placeholderDosage {
				p.Dosage = value
			}
		case strings.Contains(key, "quantity"):
			if value != placeholderQuantity {
				p.Quantity = domain.ParseQuantity(value)
			}
		case strings.Contains(key, "instructions"):
			if value != placeholderInstructions {
				p.Instructions = value
			}
		}
	}

	return p
}
