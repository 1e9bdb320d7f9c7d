package validator_test

import (
	"staybook/shared/validator"
	"strings"
	"testing"
)

func TestValidateVar_CardNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "sixteen digits", value: "1234567812345678", wantErr: false},
		{name: "sixteen digits with spaces", value: "1234 5678 1234 5678", wantErr: false},
		{name: "fifteen digits", value: "123456781234567", wantErr: true},
		{name: "seventeen digits", value: "12345678123456789", wantErr: true},
		{name: "letters", value: "1234abcd12345678", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "cardnumber")
			if (err != nil) != tt.wantErr {
				t.Errorf("cardnumber(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar_CVV(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "three digits", value: "123", wantErr: false},
		{name: "four digits", value: "1234", wantErr: false},
		{name: "two digits", value: "12", wantErr: true},
		{name: "five digits", value: "12345", wantErr: true},
		{name: "letters", value: "12a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "cvv")
			if (err != nil) != tt.wantErr {
				t.Errorf("cvv(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar_Phone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "digits with dash", value: "555-1234", wantErr: false},
		{name: "international", value: "+1 (212) 555-0100", wantErr: false},
		{name: "letters", value: "call me", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "phone")
			if (err != nil) != tt.wantErr {
				t.Errorf("phone(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar_SimpleEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain address", value: "jane@x.com", wantErr: false},
		{name: "no at sign", value: "jane.x.com", wantErr: true},
		{name: "no dot after at", value: "jane@xcom", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "simpleemail")
			if (err != nil) != tt.wantErr {
				t.Errorf("simpleemail(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_DecodeAndValidate(t *testing.T) {
	type payload struct {
		Name  string `json:"name"  validate:"required"`
		Email string `json:"email" validate:"omitempty,simpleemail"`
	}

	t.Run("valid body", func(t *testing.T) {
		var p payload
		err := validator.Validate(strings.NewReader(`{"name":"Jane","email":"jane@x.com"}`), &p)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		var p payload
		err := validator.Validate(strings.NewReader(`{"email":"jane@x.com"}`), &p)
		if err == nil {
			t.Error("expected error for missing name")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		var p payload
		err := validator.Validate(strings.NewReader(`{"name":`), &p)
		if err == nil {
			t.Error("expected error for malformed body")
		}
	})
}
