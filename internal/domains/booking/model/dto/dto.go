package dto

import (
	"database/sql"
	"siesta/internal/domains/booking/model"
	"siesta/internal/domains/pricing/engine"
	"siesta/internal/domains/sync/state"
	"siesta/shared"
	"siesta/shared/constant"
	gDto "siesta/shared/dto"
	gModel "siesta/shared/model"
	"siesta/shared/timezone"

	"github.com/google/uuid"
)

const (
	// ResultAccepted means the remote service acknowledged the write during
	// the request itself.
	ResultAccepted = "accepted"
	// ResultQueued means the write is durable locally and will be drained to
	// the remote service later.
	ResultQueued = "queued"
)

type SaveBookingRequest struct {
	GuestName     string  `json:"guest_name"     validate:"required,max=100"`
	Phone         string  `json:"phone"          validate:"omitempty,max=20"`
	Persons       int     `json:"persons"        validate:"required,gte=1"`
	Category      string  `json:"category"       validate:"required,max=50"`
	RoomNumber    string  `json:"room_number"    validate:"omitempty,max=20"`
	BookingDate   string  `json:"booking_date"   validate:"required,dateonly"`
	InTime        string  `json:"in_time"        validate:"required,clock"`
	BookedHours   int     `json:"booked_hours"   validate:"required,gte=1"`
	ProofType     string  `json:"proof_type"     validate:"omitempty,max=50"`
	ProofValue    string  `json:"proof_value"    validate:"omitempty,max=100"`
	Discount      float64 `json:"discount"       validate:"omitempty,gte=0"`
	PaidAmount    float64 `json:"paid_amount"    validate:"omitempty,gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=30"`
}

func (r *SaveBookingRequest) ToModel(user string, quote engine.Quote) model.Booking {
	now := timezone.Now()

	return model.Booking{
		BookingID:      uuid.NewString(),
		GuestName:      r.GuestName,
		Phone:          r.Phone,
		Persons:        r.Persons,
		Category:       r.Category,
		RoomNumber:     r.RoomNumber,
		BookingDate:    r.BookingDate,
		InTime:         r.InTime,
		BookedHours:    r.BookedHours,
		ProofType:      r.ProofType,
		ProofValue:     r.ProofValue,
		PricePerPerson: quote.PricePerPerson,
		TotalAmount:    quote.TotalAmount,
		PaidAmount:     r.PaidAmount,
		BalanceAmount:  quote.TotalAmount - r.PaidAmount,
		PaymentMethod:  r.PaymentMethod,
		Status:         model.StatusActive,
		SyncCode:       int(state.New),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CompleteBookingRequest struct {
	OutTime       string  `json:"out_time"       validate:"required,clock"`
	PaidAmount    float64 `json:"paid_amount"    validate:"omitempty,gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=30"`
}

type SaveBookingResponse struct {
	BookingID       string  `json:"booking_id"`
	Result          string  `json:"result"`
	PricePerPerson  float64 `json:"price_per_person"`
	TotalAmount     float64 `json:"total_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	BalanceAmount   float64 `json:"balance_amount"`
	DiscountClamped bool    `json:"discount_clamped"`
}

type CompleteBookingResponse struct {
	BookingID     string  `json:"booking_id"`
	Result        string  `json:"result"`
	ActualHours   int     `json:"actual_hours"`
	ExtraAmount   float64 `json:"extra_amount"`
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	BalanceAmount float64 `json:"balance_amount"`
}

type BookingResponse struct {
	BookingID      string  `json:"booking_id"`
	GuestName      string  `json:"guest_name"`
	Phone          string  `json:"phone"`
	Persons        int     `json:"persons"`
	Category       string  `json:"category"`
	RoomNumber     string  `json:"room_number"`
	BookingDate    string  `json:"booking_date"`
	InTime         string  `json:"in_time"`
	OutTime        string  `json:"out_time"`
	BookedHours    int     `json:"booked_hours"`
	ProofType      string  `json:"proof_type"`
	ProofValue     string  `json:"proof_value"`
	PricePerPerson float64 `json:"price_per_person"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	BalanceAmount  float64 `json:"balance_amount"`
	PaymentMethod  string  `json:"payment_method"`
	Status         string  `json:"status"`
	SyncState      string  `json:"sync_state"`
	ClosedBy       string  `json:"closed_by"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.BookingID = mod.BookingID
	r.GuestName = mod.GuestName
	r.Phone = mod.Phone
	r.Persons = mod.Persons
	r.Category = mod.Category
	r.RoomNumber = mod.RoomNumber
	r.BookingDate = mod.BookingDate
	r.InTime = mod.InTime
	r.OutTime = nullableString(mod.OutTime)
	r.BookedHours = mod.BookedHours
	r.ProofType = mod.ProofType
	r.ProofValue = mod.ProofValue
	r.PricePerPerson = mod.PricePerPerson
	r.TotalAmount = mod.TotalAmount
	r.PaidAmount = mod.PaidAmount
	r.BalanceAmount = mod.BalanceAmount
	r.PaymentMethod = mod.PaymentMethod
	r.Status = mod.Status
	r.SyncState = mod.SyncState().String()
	r.ClosedBy = nullableString(mod.ClosedBy)
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type PendingCountResponse struct {
	Pending int `json:"pending"`
}

func nullableString(value sql.NullString) string {
	if !value.Valid {
		return constant.Empty
	}

	return value.String
}
