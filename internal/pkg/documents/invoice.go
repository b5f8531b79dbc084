package documents

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

// InvoiceLine is one charge on an invoice
type InvoiceLine struct {
	Description string
	Amount      float64
}

// Invoice is everything printed on a trip invoice
type Invoice struct {
	Number      string
	IssuedAt    time.Time
	BilledTo    string
	Contact     string
	Passenger   string
	Pickup      string
	Drop        string
	Vehicle     string
	DistanceKm  float64
	Lines       []InvoiceLine
	Total       float64
	Paid        float64
	Due         float64
	PaymentNote string
}

// InvoiceFromBooking builds the invoice of a completed customer booking
func InvoiceFromBooking(b *models.Booking, issuedAt time.Time) Invoice {
	inv := Invoice{
		Number:     "UC-" + shortID(b.ID),
		IssuedAt:   issuedAt,
		Pickup:     b.PickupLocation,
		Drop:       b.DropLocation,
		DistanceKm: tripKm(b.ActualKm, b.DistanceKm),
		Total:      b.TotalAmount,
		Paid:       b.AmountPaid(),
		Due:        b.Due(),
	}
	if b.Customer != nil {
		inv.BilledTo = b.Customer.Name
		inv.Contact = b.Customer.Phone
	}
	if b.Vehicle != nil {
		inv.Vehicle = b.Vehicle.Name
	}
	inv.Lines = chargeLines(b.TotalAmount, b.ExtraCharge, b.TollCharges)
	return inv
}

// InvoiceFromB2B builds the invoice of a completed corporate booking
func InvoiceFromB2B(b *models.B2BBooking, issuedAt time.Time) Invoice {
	inv := Invoice{
		Number:     "UCB-" + shortID(b.ID),
		IssuedAt:   issuedAt,
		Pickup:     b.PickupLocation,
		Drop:       b.DropLocation,
		DistanceKm: tripKm(b.ActualKm, b.DistanceKm),
		Total:      b.TotalAmount,
		Paid:       b.AmountPaid(),
		Due:        b.Due(),
	}
	if b.Company != nil {
		inv.BilledTo = b.Company.Name
		inv.Contact = b.Company.ContactEmail
		if inv.Contact == "" {
			inv.Contact = b.Company.ContactPhone
		}
	}
	if b.PassengerDetails != nil {
		inv.Passenger = b.PassengerDetails.Name
	}
	if b.Vehicle != nil {
		inv.Vehicle = b.Vehicle.Name
	}
	if b.IsSettled() {
		inv.PaymentNote = "Settled"
		inv.Due = 0
	}
	inv.Lines = chargeLines(b.TotalAmount, b.ExtraCharge, b.TollCharges)
	return inv
}

// chargeLines splits the total into the base fare and the add-ons already included in it
func chargeLines(total, extra, toll float64) []InvoiceLine {
	lines := []InvoiceLine{{Description: "Trip fare", Amount: total - extra - toll}}
	if extra > 0 {
		lines = append(lines, InvoiceLine{Description: "Extra distance", Amount: extra})
	}
	if toll > 0 {
		lines = append(lines, InvoiceLine{Description: "Tolls and parking", Amount: toll})
	}
	return lines
}

func tripKm(actual, quoted float64) float64 {
	if actual > 0 {
		return actual
	}
	return quoted
}

// BuildInvoicePDF renders the invoice and suggests a file name for it
func BuildInvoicePDF(inv Invoice) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.Number, false)
	pdf.SetAuthor("Urban Cabz", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "URBAN CABZ - TAX INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Invoice No : "+inv.Number)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+inv.IssuedAt.In(models.IST).Format("02 Jan 2006"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, safe(inv.BilledTo, "-"))
	pdf.Ln(6)
	if inv.Contact != "" {
		pdf.Cell(0, 6, inv.Contact)
		pdf.Ln(6)
	}
	if inv.Passenger != "" {
		pdf.Cell(0, 6, "Passenger: "+inv.Passenger)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s -> %s", safe(inv.Pickup, "-"), safe(inv.Drop, "-")), "", "", false)
	pdf.Cell(0, 6, fmt.Sprintf("Vehicle: %s    Distance: %.1f km", safe(inv.Vehicle, "-"), inv.DistanceKm))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range inv.Lines {
		pdf.CellFormat(140, 8, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, rupees(line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, rupees(inv.Total), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(140, 8, "Paid", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, rupees(inv.Paid), "1", 1, "R", false, 0, "")
	pdf.CellFormat(140, 8, "Balance due", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, rupees(inv.Due), "1", 1, "R", false, 0, "")

	if inv.PaymentNote != "" {
		pdf.Ln(4)
		pdf.Cell(0, 6, "Payment: "+inv.PaymentNote)
		pdf.Ln(6)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "This is a computer generated invoice and does not require a signature.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}
	return buf.Bytes(), fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(inv.Number)), nil
}

// rupees uses "Rs." since the core PDF fonts have no rupee glyph
func rupees(amount float64) string {
	return "Rs. " + utils.GroupIndian(amount)
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func safeFilenamePart(s string) string {
	return unsafeFilename.ReplaceAllString(s, "_")
}

func shortID(id string) string {
	id = strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(id) > 10 {
		return id[:10]
	}
	return id
}
