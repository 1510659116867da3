package model

import (
	"database/sql"
	"siesta/internal/domains/sync/state"
	"siesta/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldBookingID      = "booking_id"
	FieldGuestName      = "guest_name"
	FieldPhone          = "phone"
	FieldPersons        = "persons"
	FieldCategory       = "category"
	FieldRoomNumber     = "room_number"
	FieldBookingDate    = "booking_date"
	FieldInTime         = "in_time"
	FieldOutTime        = "out_time"
	FieldBookedHours    = "booked_hours"
	FieldProofType      = "proof_type"
	FieldProofValue     = "proof_value"
	FieldPricePerPerson = "price_per_person"
	FieldTotalAmount    = "total_amount"
	FieldPaidAmount     = "paid_amount"
	FieldBalanceAmount  = "balance_amount"
	FieldPaymentMethod  = "payment_method"
	FieldStatus         = "status"
	FieldSyncCode       = "sync_code"
	FieldClosedBy       = "closed_by"

	StatusActive    = "active"
	StatusCompleted = "completed"
)

type Booking struct {
	BookingID      string         `db:"booking_id"`
	GuestName      string         `db:"guest_name"`
	Phone          string         `db:"phone"`
	Persons        int            `db:"persons"`
	Category       string         `db:"category"`
	RoomNumber     string         `db:"room_number"`
	BookingDate    string         `db:"booking_date"`
	InTime         string         `db:"in_time"`
	OutTime        sql.NullString `db:"out_time"`
	BookedHours    int            `db:"booked_hours"`
	ProofType      string         `db:"proof_type"`
	ProofValue     string         `db:"proof_value"`
	PricePerPerson float64        `db:"price_per_person"`
	TotalAmount    float64        `db:"total_amount"`
	PaidAmount     float64        `db:"paid_amount"`
	BalanceAmount  float64        `db:"balance_amount"`
	PaymentMethod  string         `db:"payment_method"`
	Status         string         `db:"status"`
	SyncCode       int            `db:"sync_code"`
	ClosedBy       sql.NullString `db:"closed_by"`
	model.Metadata
}

func (b *Booking) SyncState() state.Code {
	return state.Code(b.SyncCode)
}

func (b *Booking) Active() bool {
	return b.Status == StatusActive
}
