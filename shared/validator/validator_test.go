package validator_test

import (
	"net/http"
	"siesta/shared/failure"
	"siesta/shared/validator"
	"strings"
	"testing"
)

// Test structs for validation
type ValidTestStruct struct {
	Name        string `validate:"required"          json:"name"`
	Persons     int    `validate:"gte=1,lte=50"      json:"persons"`
	BookingDate string `validate:"required,dateonly" json:"booking_date"`
	InTime      string `validate:"required,clock"    json:"in_time"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:        "Guest",
				Persons:     2,
				BookingDate: "2026-08-30",
				InTime:      "10:00",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Persons:     2,
				BookingDate: "2026-08-30",
				InTime:      "10:00",
			},
			expectError: true,
		},
		{
			name: "persons out of range",
			data: &ValidTestStruct{
				Name:        "Guest",
				Persons:     100,
				BookingDate: "2026-08-30",
				InTime:      "10:00",
			},
			expectError: true,
		},
		{
			name: "invalid booking date",
			data: &ValidTestStruct{
				Name:        "Guest",
				Persons:     2,
				BookingDate: "30-08-2026",
				InTime:      "10:00",
			},
			expectError: true,
		},
		{
			name: "invalid clock time",
			data: &ValidTestStruct{
				Name:        "Guest",
				Persons:     2,
				BookingDate: "2026-08-30",
				InTime:      "25:99",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid date",
			field:       "2026-08-30",
			tag:         "required,dateonly",
			expectError: false,
		},
		{
			name:        "invalid date",
			field:       "not-a-date",
			tag:         "required,dateonly",
			expectError: true,
		},
		{
			name:        "valid clock",
			field:       "23:59",
			tag:         "required,clock",
			expectError: false,
		},
		{
			name:        "invalid clock",
			field:       "24:00",
			tag:         "required,clock",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Guest","persons":2,"booking_date":"2026-08-30","in_time":"10:00"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON values",
			jsonBody:    `{"name":"Guest","persons":2,"booking_date":"2026-08-30","in_time":"bad"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Guest","persons":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateResponse(t *testing.T) {
	type remoteSchema struct {
		AdminID string  `json:"admin_id" validate:"required"`
		Amount  float64 `json:"amount"   validate:"required,gt=0"`
	}

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid response",
			body:        `{"admin_id":"admin-1","amount":400}`,
			expectError: false,
		},
		{
			name:        "missing field is a rejection",
			body:        `{"amount":400}`,
			expectError: true,
		},
		{
			name:        "malformed body is a rejection",
			body:        `{"admin_id":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data remoteSchema
			err := validator.ValidateResponse(strings.NewReader(tt.body), http.StatusOK, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if tt.expectError && err != nil {
				if code := failure.GetCode(err); code != http.StatusOK {
					t.Errorf("expected failure to carry the remote status code, got %d", code)
				}
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	data := &ValidTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
