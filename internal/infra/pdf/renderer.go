// Package pdf renders order forms and extracts text from report files.
package pdf

import (
	"errors"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// OrderLine is one medicine entry on an order form.
type OrderLine struct {
	MedicineName string `json:"medicineName"`
	Quantity     int    `json:"quantity"`
	Reason       string `json:"reason"`
}

// FormRenderer writes order-form PDFs into dir (the OS temp dir when
// empty) and returns the path of the rendered file.
type FormRenderer struct {
	dir string
}

func NewFormRenderer(dir string) *FormRenderer {
	return &FormRenderer{dir: dir}
}

func (r *FormRenderer) Render(lines []OrderLine) (string, error) {
	if len(lines) == 0 {
		return "", errors.New("no order lines to render")
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Medicine Order Form", "", 1, "C", false, 0, "")
	doc.Ln(5)

	doc.SetFont("Helvetica", "", 12)
	for i, line := range lines {
		doc.CellFormat(0, 7, fmt.Sprintf("%d. Medicine Name: %s", i+1, line.MedicineName), "", 1, "L", false, 0, "")
		doc.CellFormat(0, 7, fmt.Sprintf("    Quantity: %d", line.Quantity), "", 1, "L", false, 0, "")
		doc.CellFormat(0, 7, fmt.Sprintf("    Reason: %s", line.Reason), "", 1, "L", false, 0, "")
		doc.Ln(4)
	}

	out, err := os.CreateTemp(r.dir, "medicine-order-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create order form file: %w", err)
	}
	path := out.Name()
	out.Close()

	if err := doc.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("render order form: %w", err)
	}
	return path, nil
}
