package usecase

import (
	"fmt"
	"strings"

	"github.com/urbancabz/console/internal/pkg/models"
)

// FormatOutreach renders the assignment as a message for the driver
func FormatOutreach(b *models.B2BBooking, a *models.Assignment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Hi %s,\n", a.DriverName)
	sb.WriteString("New Urban Cabz corporate trip assigned to you.\n\n")
	fmt.Fprintf(&sb, "Booking: %s\n", b.ID)
	if b.Company != nil && b.Company.Name != "" {
		fmt.Fprintf(&sb, "Company: %s\n", b.Company.Name)
	}
	if p := b.PassengerDetails; p != nil && p.Name != "" {
		if p.Phone != "" {
			fmt.Fprintf(&sb, "Passenger: %s (%s)\n", p.Name, p.Phone)
		} else {
			fmt.Fprintf(&sb, "Passenger: %s\n", p.Name)
		}
	}
	fmt.Fprintf(&sb, "Pickup: %s\n", b.PickupLocation)
	fmt.Fprintf(&sb, "Drop: %s\n", b.DropLocation)
	if b.ScheduledAt != nil && !b.ScheduledAt.IsZero() {
		fmt.Fprintf(&sb, "Pickup time: %s\n", models.LocalTime(b.ScheduledAt, "02 Jan 2006, 03:04 PM"))
	}
	fmt.Fprintf(&sb, "Cab: %s (%s)\n", a.CabName, a.CabNumber)
	sb.WriteString("\nPlease reach the pickup point 15 minutes early.")

	return sb.String()
}
