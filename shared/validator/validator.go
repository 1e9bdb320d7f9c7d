package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"staybook/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	// Intentionally shallow patterns, matching the storefront's form rules.
	// No Luhn check and no expiry-in-the-future check.
	simpleEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	cardNumberPattern  = regexp.MustCompile(`^\d{16}$`)
	cvvPattern         = regexp.MustCompile(`^\d{3,4}$`)
	phonePattern       = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)
)

func registerSimpleEmailValidation(field val.FieldLevel) bool {
	return simpleEmailPattern.MatchString(field.Field().String())
}

func registerCardNumberValidation(field val.FieldLevel) bool {
	digits := strings.Join(strings.Fields(field.Field().String()), "")

	return cardNumberPattern.MatchString(digits)
}

func registerCVVValidation(field val.FieldLevel) bool {
	return cvvPattern.MatchString(field.Field().String())
}

func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	registrations := map[string]val.Func{
		"simpleemail": registerSimpleEmailValidation,
		"cardnumber":  registerCardNumberValidation,
		"cvv":         registerCVVValidation,
		"phone":       registerPhoneValidation,
	}

	for tag, fn := range registrations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
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

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
