package model

import (
	gModel "staybook/shared/model"
)

const (
	EntityName = "booking"

	IDPrefix = "booking-"
)

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Details is what a guest submits: the stay, the head count, the derived
// total, and how to reach them.
type Details struct {
	PropertyID      string      `json:"propertyId"`
	UserID          string      `json:"userId,omitempty"`
	CheckInDate     string      `json:"checkInDate"`
	CheckOutDate    string      `json:"checkOutDate"`
	Guests          int         `json:"guests"`
	TotalPrice      float64     `json:"totalPrice"`
	ContactInfo     ContactInfo `json:"contactInfo"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
}

// Booking is a stored, confirmed reservation. Records are append-only and
// live for the process lifetime.
type Booking struct {
	ID                 string  `json:"id"`
	Status             string  `json:"status"`
	Details            Details `json:"bookingDetails"`
	ConfirmationNumber string  `json:"confirmationNumber"`
	gModel.Metadata
}
