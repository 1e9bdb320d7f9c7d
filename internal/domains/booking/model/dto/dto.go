package dto

import (
	"staybook/internal/domains/booking/model"
	"time"
)

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingDetails is the submission payload. Required-field checks live in the
// service so each missing group maps to its own rejection; the decoder only
// guards shape.
type BookingDetails struct {
	PropertyID      string      `json:"propertyId"`
	UserID          string      `json:"userId,omitempty"`
	CheckInDate     string      `json:"checkInDate"`
	CheckOutDate    string      `json:"checkOutDate"`
	Guests          int         `json:"guests"`
	TotalPrice      float64     `json:"totalPrice"`
	ContactInfo     ContactInfo `json:"contactInfo"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
}

func (d *BookingDetails) ToModel() model.Details {
	return model.Details{
		PropertyID:      d.PropertyID,
		UserID:          d.UserID,
		CheckInDate:     d.CheckInDate,
		CheckOutDate:    d.CheckOutDate,
		Guests:          d.Guests,
		TotalPrice:      d.TotalPrice,
		ContactInfo: model.ContactInfo{
			Name:  d.ContactInfo.Name,
			Email: d.ContactInfo.Email,
			Phone: d.ContactInfo.Phone,
		},
		SpecialRequests: d.SpecialRequests,
	}
}

type BookingResponse struct {
	ID                 string         `json:"id"`
	Status             string         `json:"status"`
	BookingDetails     BookingDetails `json:"bookingDetails"`
	ConfirmationNumber string         `json:"confirmationNumber"`
	CreatedAt          time.Time      `json:"created_at,omitempty"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Status = booking.Status
	r.ConfirmationNumber = booking.ConfirmationNumber
	r.CreatedAt = booking.CreatedAt

	r.BookingDetails = BookingDetails{
		PropertyID:   booking.Details.PropertyID,
		UserID:       booking.Details.UserID,
		CheckInDate:  booking.Details.CheckInDate,
		CheckOutDate: booking.Details.CheckOutDate,
		Guests:       booking.Details.Guests,
		TotalPrice:   booking.Details.TotalPrice,
		ContactInfo: ContactInfo{
			Name:  booking.Details.ContactInfo.Name,
			Email: booking.Details.ContactInfo.Email,
			Phone: booking.Details.ContactInfo.Phone,
		},
		SpecialRequests: booking.Details.SpecialRequests,
	}
}
