package documents

import (
	"bytes"
	"fmt"
	"time"

	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/xuri/excelize/v2"
)

var bookingHeaders = []string{
	"Booking ID", "Status", "Assignment", "Ride Type", "Customer", "Phone",
	"Pickup", "Drop", "Distance (km)", "Total", "Paid", "Due", "Scheduled At", "Created At",
}

var b2bHeaders = []string{
	"Booking ID", "Status", "Payment", "Company", "Passenger", "Phone",
	"Pickup", "Drop", "Distance (km)", "Total", "Paid", "Due", "Scheduled At", "Created At",
}

// BookingsWorkbook exports customer bookings as an xlsx file
func BookingsWorkbook(bookings []models.Booking) ([]byte, error) {
	rows := make([][]interface{}, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		var name, phone string
		if b.Customer != nil {
			name, phone = b.Customer.Name, b.Customer.Phone
		}
		rows = append(rows, []interface{}{
			b.ID, string(b.Status), string(b.TaxiAssignStatus), string(b.RideType), name, phone,
			b.PickupLocation, b.DropLocation, b.DistanceKm, b.TotalAmount, b.AmountPaid(), b.Due(),
			formatCellTime(b.ScheduledAt), formatCellTime(b.CreatedAt),
		})
	}
	return workbook("Bookings", bookingHeaders, rows)
}

// B2BBookingsWorkbook exports corporate bookings as an xlsx file
func B2BBookingsWorkbook(bookings []models.B2BBooking) ([]byte, error) {
	rows := make([][]interface{}, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		var company, passenger, phone string
		if b.Company != nil {
			company = b.Company.Name
		}
		if b.PassengerDetails != nil {
			passenger, phone = b.PassengerDetails.Name, b.PassengerDetails.Phone
		}
		rows = append(rows, []interface{}{
			b.ID, string(b.Status), string(b.PaymentStatus), company, passenger, phone,
			b.PickupLocation, b.DropLocation, b.DistanceKm, b.TotalAmount, b.AmountPaid(), b.Due(),
			formatCellTime(b.ScheduledAt), formatCellTime(b.CreatedAt),
		})
	}
	return workbook("B2B Bookings", b2bHeaders, rows)
}

func workbook(sheetName string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCellTime(t *time.Time) string {
	return models.LocalTime(t, "2006-01-02 15:04")
}
