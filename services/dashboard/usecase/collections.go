package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

// Collections lists every dashboard collection in resync order
var Collections = []string{
	constants.CollectionBookings,
	constants.CollectionB2BBookings,
	constants.CollectionB2BRequests,
	constants.CollectionFleet,
	constants.CollectionDrivers,
	constants.CollectionCompanies,
	constants.CollectionUsers,
}

type decoder func(raw json.RawMessage) ([]models.CollectionItem, error)

var decoders = map[string]decoder{
	constants.CollectionBookings:    decodeItems(bookingFacets),
	constants.CollectionB2BBookings: decodeItems(b2bBookingFacets),
	constants.CollectionB2BRequests: decodeItems(b2bRequestFacets),
	constants.CollectionFleet:       decodeItems(vehicleFacets),
	constants.CollectionDrivers:     decodeItems(driverFacets),
	constants.CollectionCompanies:   decodeItems(companyFacets),
	constants.CollectionUsers:       decodeItems(userFacets),
}

func decodeItems[T any](facets func(*T) models.CollectionItem) decoder {
	return func(raw json.RawMessage) ([]models.CollectionItem, error) {
		var rows []T
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		items := make([]models.CollectionItem, 0, len(rows))
		for i := range rows {
			item := facets(&rows[i])
			item.Value = rows[i]
			items = append(items, item)
		}
		return items, nil
	}
}

func searchText(parts ...string) string {
	return utils.NormalizeText(strings.Join(parts, " "))
}

func activeStatus(active bool) string {
	if active {
		return "ACTIVE"
	}
	return "INACTIVE"
}

func monthOf(t *time.Time) string {
	return models.MonthKey(t)
}

func bookingFacets(b *models.Booking) models.CollectionItem {
	parts := []string{b.ID, b.PickupLocation, b.DropLocation}
	if b.Customer != nil {
		parts = append(parts, b.Customer.Name, b.Customer.Phone, b.Customer.Email)
	}
	if b.Vehicle != nil {
		parts = append(parts, b.Vehicle.Name)
	}
	if b.AssignTaxis != nil {
		parts = append(parts, b.AssignTaxis.DriverName, b.AssignTaxis.CabNumber)
	}
	return models.CollectionItem{
		Text:   searchText(parts...),
		Status: string(b.Status),
		Month:  b.MonthKey(),
	}
}

func b2bBookingFacets(b *models.B2BBooking) models.CollectionItem {
	parts := []string{b.ID, b.PickupLocation, b.DropLocation}
	if b.Company != nil {
		parts = append(parts, b.Company.Name)
	}
	if b.PassengerDetails != nil {
		parts = append(parts, b.PassengerDetails.Name, b.PassengerDetails.Phone)
	}
	if a := b.CurrentAssignment(); a != nil {
		parts = append(parts, a.DriverName, a.CabNumber)
	}
	return models.CollectionItem{
		Text:   searchText(parts...),
		Status: string(b.Status),
		Month:  b.MonthKey(),
	}
}

func b2bRequestFacets(r *models.B2BRequest) models.CollectionItem {
	return models.CollectionItem{
		Text:   searchText(r.CompanyName, r.ContactPerson, r.ContactPhone, r.ContactEmail, r.Message),
		Status: r.Status,
		Month:  monthOf(r.CreatedAt),
	}
}

func vehicleFacets(v *models.Vehicle) models.CollectionItem {
	return models.CollectionItem{
		Text:   searchText(v.Name, string(v.Category), v.Description),
		Status: activeStatus(v.IsActive),
		Month:  monthOf(v.CreatedAt),
	}
}

func driverFacets(d *models.Driver) models.CollectionItem {
	return models.CollectionItem{
		Text:   searchText(d.Name, d.Phone, d.LicenseNo),
		Status: activeStatus(d.IsActive),
		Month:  monthOf(d.CreatedAt),
	}
}

func companyFacets(c *models.Company) models.CollectionItem {
	return models.CollectionItem{
		Text:   searchText(c.Name, c.ContactPerson, c.ContactPhone, c.ContactEmail),
		Status: activeStatus(c.IsActive),
		Month:  monthOf(c.CreatedAt),
	}
}

func userFacets(u *models.User) models.CollectionItem {
	return models.CollectionItem{
		Text:   searchText(u.Name, u.Email, u.Phone),
		Status: strings.ToUpper(u.Role),
		Month:  monthOf(u.CreatedAt),
	}
}

func decode(collection string, raw json.RawMessage) ([]models.CollectionItem, error) {
	dec, ok := decoders[collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
	return dec(raw)
}
