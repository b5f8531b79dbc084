package models

import (
	"math"
	"strings"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "PENDING_PAYMENT"
	BookingStatusPaid           BookingStatus = "PAID"
	BookingStatusConfirmed      BookingStatus = "CONFIRMED"
	BookingStatusInProgress     BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted      BookingStatus = "COMPLETED"
	BookingStatusCancelled      BookingStatus = "CANCELLED"
)

// IsTerminal reports whether no further lifecycle action can change the status
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// TaxiAssignStatus tracks whether an assignment exists, independent of BookingStatus
type TaxiAssignStatus string

const (
	TaxiNotAssigned TaxiAssignStatus = "NOT_ASSIGNED"
	TaxiAssigned    TaxiAssignStatus = "ASSIGNED"
)

// PaymentStatus is the status of a single payment attempt or of a B2B booking's settlement
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusPending PaymentStatus = "PENDING"
)

// Counts reports whether the payment contributes to the amount paid
func (s PaymentStatus) Counts() bool {
	switch PaymentStatus(strings.ToUpper(string(s))) {
	case PaymentStatusSuccess, PaymentStatusPaid:
		return true
	}
	return false
}

// Payment is one payment attempt against a booking
type Payment struct {
	ID        string        `json:"id,omitempty"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	Mode      string        `json:"mode,omitempty"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
}

// Assignment is the driver and vehicle currently attached to a booking
type Assignment struct {
	DriverName   string `json:"driver_name"`
	DriverNumber string `json:"driver_number"`
	CabName      string `json:"cab_name"`
	CabNumber    string `json:"cab_number"`
}

// IsZero reports whether no driver or vehicle has been recorded
func (a *Assignment) IsZero() bool {
	return a == nil || (a.DriverName == "" && a.DriverNumber == "" && a.CabName == "" && a.CabNumber == "")
}

// Customer is the booking customer as returned by the admin API
type Customer struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// VehicleSummary is the vehicle chosen at booking time
type VehicleSummary struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Category VehicleCategory `json:"category,omitempty"`
}

// Booking is a customer (B2C) booking
type Booking struct {
	ID               string           `json:"id"`
	Status           BookingStatus    `json:"status"`
	TaxiAssignStatus TaxiAssignStatus `json:"taxi_assign_status"`
	RideType         RideType         `json:"ride_type,omitempty"`
	PickupLocation   string           `json:"pickup_location"`
	DropLocation     string           `json:"drop_location"`
	DistanceKm       float64          `json:"distance_km"`
	ActualKm         float64          `json:"actual_km,omitempty"`
	TotalAmount      float64          `json:"total_amount"`
	ExtraCharge      float64          `json:"extra_charge,omitempty"`
	TollCharges      float64          `json:"toll_charges,omitempty"`
	CancelReason     string           `json:"cancel_reason,omitempty"`
	Payments         []Payment        `json:"payments"`
	AssignTaxis      *Assignment      `json:"assign_taxis,omitempty"`
	Customer         *Customer        `json:"customer,omitempty"`
	Vehicle          *VehicleSummary  `json:"vehicle,omitempty"`
	ScheduledAt      *time.Time       `json:"scheduled_at,omitempty"`
	CreatedAt        *time.Time       `json:"created_at,omitempty"`
}

// AmountPaid sums the payments whose status is SUCCESS or PAID
func (b *Booking) AmountPaid() float64 {
	return sumPaid(b.Payments)
}

// Due is the outstanding amount, never negative
func (b *Booking) Due() float64 {
	return dueOf(b.TotalAmount, b.AmountPaid())
}

// Overshoot is how far the actual distance exceeded the quoted one
func (b *Booking) Overshoot() float64 {
	if b.ActualKm <= b.DistanceKm {
		return 0
	}
	return b.ActualKm - b.DistanceKm
}

// MonthKey buckets the booking by scheduled time, falling back to creation time
func (b *Booking) MonthKey() string {
	return monthKey(b.ScheduledAt, b.CreatedAt)
}

// BookingDetail is a booking together with what the operator may do next
type BookingDetail struct {
	Booking        *Booking       `json:"booking"`
	AmountPaid     float64        `json:"amount_paid"`
	Due            float64        `json:"due"`
	AllowedActions []ActionOption `json:"allowed_actions"`
}

// ActionOption is a lifecycle action offered to the operator
type ActionOption struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

// AssignRequest creates or overwrites the booking's assignment
type AssignRequest struct {
	DriverName   string `json:"driver_name"`
	DriverNumber string `json:"driver_number"`
	CabName      string `json:"cab_name"`
	CabNumber    string `json:"cab_number"`
}

// Assignment converts the request into the assignment it records
func (r AssignRequest) Assignment() Assignment {
	return Assignment{
		DriverName:   strings.TrimSpace(r.DriverName),
		DriverNumber: strings.TrimSpace(r.DriverNumber),
		CabName:      strings.TrimSpace(r.CabName),
		CabNumber:    strings.TrimSpace(r.CabNumber),
	}
}

// CompleteRequest carries the figures the operator enters when closing a trip
type CompleteRequest struct {
	ActualKm    float64 `json:"actual_km"`
	TollCharges float64 `json:"toll_charges"`
	ExtraCharge float64 `json:"extra_charge,omitempty"`
}

// CancelRequest carries the mandatory cancellation reason
type CancelRequest struct {
	Reason string `json:"reason"`
}

// CompletionResult is the server's answer to a completion
type CompletionResult struct {
	BookingID string  `json:"booking_id"`
	NewTotal  float64 `json:"new_total"`
}

func sumPaid(payments []Payment) float64 {
	var paid float64
	for _, p := range payments {
		if p.Status.Counts() {
			paid += p.Amount
		}
	}
	return paid
}

func dueOf(total, paid float64) float64 {
	return math.Max(0, total-paid)
}

func monthKey(primary, fallback *time.Time) string {
	if key := MonthKey(primary); key != "" {
		return key
	}
	return MonthKey(fallback)
}

// CreateBookingRequest is an operator-entered customer booking
type CreateBookingRequest struct {
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	From          Place      `json:"from"`
	To            Place      `json:"to"`
	RideType      RideType   `json:"ride_type,omitempty"`
	VehicleID     string     `json:"vehicle_id"`
	PickupAt      *time.Time `json:"pickup_at,omitempty"`
	ReturnAt      *time.Time `json:"return_at,omitempty"`
}

// NewBooking is the payload sent to the API once a booking has been priced
type NewBooking struct {
	CustomerName   string     `json:"customer_name,omitempty"`
	CustomerPhone  string     `json:"customer_phone,omitempty"`
	CustomerEmail  string     `json:"customer_email,omitempty"`
	CompanyID      string     `json:"company_id,omitempty"`
	PassengerName  string     `json:"passenger_name,omitempty"`
	PassengerPhone string     `json:"passenger_phone,omitempty"`
	PickupLocation string     `json:"pickup_location"`
	DropLocation   string     `json:"drop_location"`
	PickupLat      float64    `json:"pickup_lat,omitempty"`
	PickupLng      float64    `json:"pickup_lng,omitempty"`
	DropLat        float64    `json:"drop_lat,omitempty"`
	DropLng        float64    `json:"drop_lng,omitempty"`
	RideType       RideType   `json:"ride_type"`
	VehicleID      string     `json:"vehicle_id"`
	DistanceKm     float64    `json:"distance_km"`
	BillableKm     float64    `json:"billable_km"`
	DurationMins   int        `json:"duration_mins,omitempty"`
	RatePerKm      float64    `json:"rate_per_km"`
	TotalAmount    float64    `json:"total_amount"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	ReturnAt       *time.Time `json:"return_at,omitempty"`
}

// PricedBooking fills the route and fare fields of a new booking from a quote
func PricedBooking(quote *FareQuote, from, to Place) NewBooking {
	nb := NewBooking{
		PickupLocation: from.Label(),
		DropLocation:   to.Label(),
		RideType:       quote.RideType,
		DistanceKm:     quote.DistanceKm,
		BillableKm:     quote.BillableDistance,
		DurationMins:   quote.DurationMins,
		RatePerKm:      quote.Rate,
		TotalAmount:    float64(quote.Fare),
	}
	if quote.From != nil {
		nb.PickupLat, nb.PickupLng = quote.From.Latitude, quote.From.Longitude
		if quote.From.Address != "" && strings.TrimSpace(from.Query) == "" {
			nb.PickupLocation = quote.From.Address
		}
	}
	if quote.To != nil {
		nb.DropLat, nb.DropLng = quote.To.Latitude, quote.To.Longitude
		if quote.To.Address != "" && strings.TrimSpace(to.Query) == "" {
			nb.DropLocation = quote.To.Address
		}
	}
	return nb
}
