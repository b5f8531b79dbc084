package models

import "time"

// Company is a corporate (B2B) account
type Company struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	ContactPerson   string     `json:"contact_person,omitempty"`
	ContactPhone    string     `json:"contact_phone,omitempty"`
	ContactEmail    string     `json:"contact_email,omitempty"`
	CustomRatePerKm float64    `json:"custom_rate_per_km,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// B2BRequest is an inbound corporate enquiry
type B2BRequest struct {
	ID            string     `json:"id"`
	CompanyName   string     `json:"company_name"`
	ContactPerson string     `json:"contact_person"`
	ContactPhone  string     `json:"contact_phone"`
	ContactEmail  string     `json:"contact_email,omitempty"`
	Message       string     `json:"message,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// PassengerDetails identifies the travelling employee, distinct from the company contact
type PassengerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// B2BBooking is a corporate booking. Status and PaymentStatus are independent axes.
type B2BBooking struct {
	ID               string            `json:"id"`
	Status           BookingStatus     `json:"status"`
	PaymentStatus    PaymentStatus     `json:"payment_status"`
	TaxiAssignStatus TaxiAssignStatus  `json:"taxi_assign_status,omitempty"`
	RideType         RideType          `json:"ride_type,omitempty"`
	Company          *Company          `json:"company,omitempty"`
	PassengerDetails *PassengerDetails `json:"passenger_details,omitempty"`
	PickupLocation   string            `json:"pickup_location"`
	DropLocation     string            `json:"drop_location"`
	DistanceKm       float64           `json:"distance_km"`
	ActualKm         float64           `json:"actual_km,omitempty"`
	TotalAmount      float64           `json:"total_amount"`
	ExtraCharge      float64           `json:"extra_charge,omitempty"`
	TollCharges      float64           `json:"toll_charges,omitempty"`
	CancelReason     string            `json:"cancel_reason,omitempty"`
	Payments         []Payment         `json:"payments"`
	Assignments      []Assignment      `json:"assignments,omitempty"`
	Vehicle          *VehicleSummary   `json:"vehicle,omitempty"`
	ScheduledAt      *time.Time        `json:"scheduled_at,omitempty"`
	CreatedAt        *time.Time        `json:"created_at,omitempty"`
}

// CurrentAssignment returns the active assignment, if any. The API keeps one record
// per booking; the last entry wins when more are present.
func (b *B2BBooking) CurrentAssignment() *Assignment {
	if len(b.Assignments) == 0 {
		return nil
	}
	a := b.Assignments[len(b.Assignments)-1]
	if a.IsZero() {
		return nil
	}
	return &a
}

// HasAssignment reports whether a driver or vehicle is attached
func (b *B2BBooking) HasAssignment() bool {
	return b.CurrentAssignment() != nil || b.TaxiAssignStatus == TaxiAssigned
}

// IsSettled reports whether the booking's payment_status is PAID
func (b *B2BBooking) IsSettled() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// AmountPaid sums the payments whose status is SUCCESS or PAID
func (b *B2BBooking) AmountPaid() float64 {
	return sumPaid(b.Payments)
}

// Due is the outstanding amount, never negative
func (b *B2BBooking) Due() float64 {
	return dueOf(b.TotalAmount, b.AmountPaid())
}

// MonthKey buckets the booking by scheduled time, falling back to creation time
func (b *B2BBooking) MonthKey() string {
	return monthKey(b.ScheduledAt, b.CreatedAt)
}

// B2BBookingDetail is a corporate booking with the operator's next actions
type B2BBookingDetail struct {
	Booking        *B2BBooking    `json:"booking"`
	Assignment     *Assignment    `json:"assignment,omitempty"`
	AmountPaid     float64        `json:"amount_paid"`
	Due            float64        `json:"due"`
	AllowedActions []ActionOption `json:"allowed_actions"`
}

// OfflinePaymentMode is how a corporate payment was settled outside the gateway
type OfflinePaymentMode string

const (
	PaymentModeCash         OfflinePaymentMode = "Cash"
	PaymentModeBankTransfer OfflinePaymentMode = "Bank Transfer"
	PaymentModeUPI          OfflinePaymentMode = "UPI"
	PaymentModeCheque       OfflinePaymentMode = "Cheque"
)

// OfflinePaymentModes lists the accepted settlement modes
var OfflinePaymentModes = []OfflinePaymentMode{
	PaymentModeCash,
	PaymentModeBankTransfer,
	PaymentModeUPI,
	PaymentModeCheque,
}

// Valid reports whether the mode is one of OfflinePaymentModes
func (m OfflinePaymentMode) Valid() bool {
	for _, v := range OfflinePaymentModes {
		if v == m {
			return true
		}
	}
	return false
}

// OfflinePaymentRequest records a financial resolution for a completed corporate trip
type OfflinePaymentRequest struct {
	Mode    OfflinePaymentMode `json:"mode"`
	Remarks string             `json:"remarks"`
	Amount  float64            `json:"amount,omitempty"`
}

// OutreachMessage is the text sent to a driver about an assignment
type OutreachMessage struct {
	BookingID string `json:"booking_id"`
	Text      string `json:"text"`
	Phone     string `json:"phone,omitempty"`
	Link      string `json:"link,omitempty"`
}

// CreateB2BBookingRequest is a corporate booking entered by an operator
type CreateB2BBookingRequest struct {
	CompanyID      string     `json:"company_id"`
	PassengerName  string     `json:"passenger_name"`
	PassengerPhone string     `json:"passenger_phone"`
	From           Place      `json:"from"`
	To             Place      `json:"to"`
	RideType       RideType   `json:"ride_type,omitempty"`
	VehicleID      string     `json:"vehicle_id,omitempty"`
	Rate           float64    `json:"rate,omitempty"`
	PickupAt       *time.Time `json:"pickup_at,omitempty"`
	ReturnAt       *time.Time `json:"return_at,omitempty"`
}

// OutreachDelivery reports where an outreach message went
type OutreachDelivery struct {
	OutreachMessage
	Delivered bool `json:"delivered"`
}
