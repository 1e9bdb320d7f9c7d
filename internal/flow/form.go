package flow

import (
	"staybook/shared/validator"
	"strings"
)

// Form field keys, matching the storefront's input names.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phoneNumber"
	FieldCardNumber     = "cardNumber"
	FieldExpirationDate = "expirationDate"
	FieldCVV            = "cvv"
	FieldBillingStreet  = "billing.street"
	FieldBillingCity    = "billing.city"
	FieldBillingState   = "billing.state"
	FieldBillingZipCode = "billing.zipCode"
	FieldBillingCountry = "billing.country"
)

type BillingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Form holds the booking form's state and its per-field errors. Errors are
// keyed by field name so the caller can surface them next to each input.
type Form struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	CardNumber      string
	ExpirationDate  string
	CVV             string
	Billing         BillingAddress
	SpecialRequests string

	errors map[string]string
}

func NewForm() *Form {
	return &Form{
		errors: make(map[string]string),
	}
}

// Set updates a field by name and clears that field's error, leaving the
// other errors in place. Unknown field names are ignored.
func (f *Form) Set(field, value string) {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhoneNumber:
		f.PhoneNumber = value
	case FieldCardNumber:
		f.CardNumber = value
	case FieldExpirationDate:
		f.ExpirationDate = value
	case FieldCVV:
		f.CVV = value
	case FieldBillingStreet:
		f.Billing.Street = value
	case FieldBillingCity:
		f.Billing.City = value
	case FieldBillingState:
		f.Billing.State = value
	case FieldBillingZipCode:
		f.Billing.ZipCode = value
	case FieldBillingCountry:
		f.Billing.Country = value
	default:
		return
	}

	delete(f.errors, field)
}

// Validate rebuilds the error map from scratch and reports whether the form
// is submittable. Format checks only run on non-empty values; a blank field
// gets its required message and nothing else.
func (f *Form) Validate() bool {
	f.errors = make(map[string]string)

	required := []struct {
		field   string
		value   string
		message string
	}{
		{FieldFirstName, f.FirstName, "First name is required"},
		{FieldLastName, f.LastName, "Last name is required"},
		{FieldEmail, f.Email, "Email is required"},
		{FieldPhoneNumber, f.PhoneNumber, "Phone number is required"},
		{FieldCardNumber, f.CardNumber, "Card number is required"},
		{FieldExpirationDate, f.ExpirationDate, "Expiration date is required"},
		{FieldCVV, f.CVV, "CVV is required"},
		{FieldBillingStreet, f.Billing.Street, "Street address is required"},
		{FieldBillingCity, f.Billing.City, "City is required"},
		{FieldBillingState, f.Billing.State, "State is required"},
		{FieldBillingZipCode, f.Billing.ZipCode, "Zip code is required"},
		{FieldBillingCountry, f.Billing.Country, "Country is required"},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			f.errors[r.field] = r.message
		}
	}

	formats := []struct {
		field string
		value string
		tag   string
	}{
		{FieldEmail, f.Email, "simpleemail"},
		{FieldPhoneNumber, f.PhoneNumber, "phone"},
		{FieldCardNumber, f.CardNumber, "cardnumber"},
		{FieldCVV, f.CVV, "cvv"},
	}

	for _, c := range formats {
		if _, missing := f.errors[c.field]; missing {
			continue
		}

		if err := validator.ValidateVar(c.value, c.tag); err != nil {
			f.errors[c.field] = err.Error()
		}
	}

	return len(f.errors) == 0
}

// Errors returns the current per-field error messages.
func (f *Form) Errors() map[string]string {
	errors := make(map[string]string, len(f.errors))
	for field, message := range f.errors {
		errors[field] = message
	}

	return errors
}

// Error returns the message recorded for one field, or the empty string.
func (f *Form) Error(field string) string {
	return f.errors[field]
}

// ContactName joins the name fields the way the booking payload expects.
func (f *Form) ContactName() string {
	return strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
}
