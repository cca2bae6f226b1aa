package tickets

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// TicketPassenger is one traveler on a printed ticket
type TicketPassenger struct {
	Name       string
	LastName   string
	SeatNumber int
}

// TicketData is everything a printed ticket needs. It is deliberately
// free of model types so any caller can render one.
type TicketData struct {
	Folio         string
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	ServiceType   string
	TravelDate    string
	Email         string
	Passengers    []TicketPassenger
	Subtotal      float64
	Tax           float64
	Assistance    float64
	Total         float64
}

// BuildTicketPDF renders the boarding document for a settled booking
func BuildTicketPDF(d TicketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Boleto Adelas", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "Adelas Autotransportes")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Folio: "+d.Folio)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ruta        : %s -> %s", d.Origin, d.Destination),
		fmt.Sprintf("Salida      : %s", d.DepartureTime),
		fmt.Sprintf("Llegada     : %s", d.ArrivalTime),
		fmt.Sprintf("Servicio    : %s", d.ServiceType),
	}
	if d.TravelDate != "" {
		lines = append(lines, fmt.Sprintf("Fecha       : %s", d.TravelDate))
	}
	lines = append(lines, fmt.Sprintf("Contacto    : %s", d.Email))

	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Pasajeros:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, p := range d.Passengers {
		pdf.Cell(0, 7, fmt.Sprintf("  Asiento %02d  %s %s", p.SeatNumber, p.Name, p.LastName))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Subtotal    : $%.2f", d.Subtotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("IVA (16%%)   : $%.2f", d.Tax))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Asistencia  : $%.2f", d.Assistance))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total       : $%.2f", d.Total))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Presente este boleto al abordar. Valido unicamente para la corrida indicada.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render ticket PDF: %w", err)
	}

	filename := fmt.Sprintf("BOLETO_%s.pdf", d.Folio)
	return buf.Bytes(), filename, nil
}
