package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"siesta/shared/failure"
	"siesta/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("clock", func(fl val.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok || value == "" {
			return false
		}

		_, err := timezone.Parse("15:04", value)

		return err == nil
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dateonly", func(fl val.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok || value == "" {
			return false
		}

		_, err := timezone.Parse("2006-01-02", value)

		return err == nil
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs
// validation on the struct using the validator package. If the struct is invalid
// according to the validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateResponse decodes a remote service response body into the given schema
// struct and validates every field. Missing or malformed fields are reported as a
// remote rejection rather than being silently defaulted.
func ValidateResponse[T any](r io.Reader, code int, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.RemoteRejected(code, fmt.Sprintf("malformed remote response: %v", err)) //nolint:wrapcheck
	}

	if err := validate.Struct(data); err != nil {
		return failure.RemoteRejected(code, fmt.Sprintf("invalid remote response: %s", message(err))) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
