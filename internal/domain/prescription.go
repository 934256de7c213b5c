package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NotFound is the sentinel stored in any prescription field that could not
// be extracted from the scanned text.
const NotFound = "Not found"

// Quantity is either an integer or the raw string the extractor produced
// when the value did not convert. Consumers must handle both shapes; the
// parser never forces a conversion.
type Quantity struct {
	n       int
	raw     string
	numeric bool
}

func IntQuantity(n int) Quantity { return Quantity{n: n, numeric: true} }

func RawQuantity(s string) Quantity { return Quantity{raw: s} }

// ParseQuantity converts s to an integer quantity when possible and keeps
// the raw string otherwise.
func ParseQuantity(s string) Quantity {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return IntQuantity(n)
	}
	return RawQuantity(s)
}

func (q Quantity) Int() (int, bool) { return q.n, q.numeric }

func (q Quantity) Raw() string { return q.raw }

// IntOr returns the numeric value, or def when the quantity is a raw string.
func (q Quantity) IntOr(def int) int {
	if q.numeric {
		return q.n
	}
	return def
}

func (q Quantity) String() string {
	if q.numeric {
		return strconv.Itoa(q.n)
	}
	return q.raw
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.numeric {
		return json.Marshal(q.n)
	}
	return json.Marshal(q.raw)
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*q = IntQuantity(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = ParseQuantity(s)
		return nil
	}
	*q = RawQuantity(strings.Trim(string(data), `"`))
	return nil
}

// Prescription is the fixed-shape record extracted from scanned text. Every
// field is always populated; absence is represented by NotFound (quantity
// defaults to integer zero).
type Prescription struct {
	PatientName  string   `json:"patientName"`
	DoctorName   string   `json:"doctorName"`
	MedicineName string   `json:"medicineName"`
	Dosage       string   `json:"dosage"`
	Quantity     Quantity `json:"quantity"`
	Instructions string   `json:"instructions"`
}
