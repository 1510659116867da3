package remote

// Wire schemas for the remote booking service. Every response field is
// validated at the deserialization boundary; a missing or malformed field is
// treated as a remote rejection, never silently defaulted.

// Booking is the create-endpoint record shape. The batch endpoint accepts an
// array of these and answers per call, not per record.
type Booking struct {
	BookingID      string  `json:"booking_id"       validate:"required"`
	GuestName      string  `json:"guest_name"       validate:"required"`
	Phone          string  `json:"phone"            validate:"omitempty"`
	Persons        int     `json:"persons"          validate:"required,gte=1"`
	Category       string  `json:"category"         validate:"required"`
	RoomNumber     string  `json:"room_number"      validate:"omitempty"`
	BookingDate    string  `json:"booking_date"     validate:"required"`
	InTime         string  `json:"in_time"          validate:"required"`
	OutTime        string  `json:"out_time"         validate:"omitempty"`
	BookedHours    int     `json:"booked_hours"     validate:"required,gte=1"`
	ProofType      string  `json:"proof_type"       validate:"omitempty"`
	ProofValue     string  `json:"proof_value"      validate:"omitempty"`
	PricePerPerson float64 `json:"price_per_person" validate:"omitempty"`
	TotalAmount    float64 `json:"total_amount"     validate:"omitempty"`
	PaidAmount     float64 `json:"paid_amount"      validate:"omitempty"`
	BalanceAmount  float64 `json:"balance_amount"   validate:"omitempty"`
	PaymentMethod  string  `json:"payment_method"   validate:"omitempty"`
	Status         string  `json:"status"           validate:"required,oneof=active completed"`
	AdminID        string  `json:"admin_id"         validate:"required"`
	WorkerID       string  `json:"worker_id"        validate:"required"`
	ClosedBy       string  `json:"closed_by"        validate:"omitempty"`
}

// Checkout is the idempotent update-endpoint payload.
type Checkout struct {
	BookingID     string  `json:"booking_id"     validate:"required"`
	OutTime       string  `json:"out_time"       validate:"required"`
	Status        string  `json:"status"         validate:"required,oneof=active completed"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty"`
	TotalAmount   float64 `json:"total_amount"   validate:"omitempty"`
	PaidAmount    float64 `json:"paid_amount"    validate:"omitempty"`
}

// Settings is the operator configuration snapshot served by the remote.
type Settings struct {
	AdminID         string  `json:"admin_id"          validate:"required"`
	RateOneName     string  `json:"rate_one_name"     validate:"omitempty"`
	RateOneAmount   float64 `json:"rate_one_amount"   validate:"omitempty,gte=0"`
	RateTwoName     string  `json:"rate_two_name"     validate:"omitempty"`
	RateTwoAmount   float64 `json:"rate_two_amount"   validate:"omitempty,gte=0"`
	AdvanceRequired bool    `json:"advance_required"`
	AdvancePercent  float64 `json:"advance_percent"   validate:"omitempty,gte=0,lte=100"`
}

// Tier is one hour-range-to-amount pricing row.
type Tier struct {
	TierID   string  `json:"tier_id"   validate:"required"`
	AdminID  string  `json:"admin_id"  validate:"required"`
	MinHours int     `json:"min_hours" validate:"gte=0"`
	MaxHours int     `json:"max_hours" validate:"required,gte=1"`
	Amount   float64 `json:"amount"    validate:"required,gt=0"`
}

// Completion is one row of the reconciliation response: a booking the server
// considers authoritatively completed today.
type Completion struct {
	BookingID string `json:"booking_id" validate:"required"`
	OutTime   string `json:"out_time"   validate:"required"`
}

type reconcileRequest struct {
	AdminID  string `json:"admin_id"`
	WorkerID string `json:"worker_id"`
}
