package pricing

import (
	"fmt"
	"math"
	"staybook/shared/constant"
	"time"
)

// BookingFee is the flat fee added to every stay, independent of length.
const BookingFee = 65.0

const hoursPerDay = 24

// Nights returns the number of nights between two calendar dates, the
// ceiling of their difference in whole days. Zero when either date is empty
// or when checkout is not after checkin.
func Nights(checkInDate, checkOutDate string) (int, error) {
	if checkInDate == constant.Empty || checkOutDate == constant.Empty {
		return 0, nil
	}

	checkIn, err := time.Parse(constant.DateFormat, checkInDate)
	if err != nil {
		return 0, fmt.Errorf("parsing check-in date: %w", err)
	}

	checkOut, err := time.Parse(constant.DateFormat, checkOutDate)
	if err != nil {
		return 0, fmt.Errorf("parsing check-out date: %w", err)
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerDay))
	if nights < 0 {
		nights = 0
	}

	return nights, nil
}

// Quote is the derived price breakdown for a stay.
type Quote struct {
	Nights   int     `json:"nights"`
	Subtotal float64 `json:"subtotal"`
	Fee      float64 `json:"fee"`
	Total    float64 `json:"total"`
}

// NewQuote prices a stay: nightly rate times nights, plus the booking fee.
func NewQuote(nightlyRate float64, checkInDate, checkOutDate string) (Quote, error) {
	nights, err := Nights(checkInDate, checkOutDate)
	if err != nil {
		return Quote{}, err
	}

	subtotal := nightlyRate * float64(nights)

	return Quote{
		Nights:   nights,
		Subtotal: subtotal,
		Fee:      BookingFee,
		Total:    subtotal + BookingFee,
	}, nil
}
