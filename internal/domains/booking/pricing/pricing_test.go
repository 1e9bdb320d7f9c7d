package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staybook/internal/domains/booking/pricing"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantNights int
		wantErr    bool
	}{
		{
			name:       "three nights",
			checkIn:    "2024-06-01",
			checkOut:   "2024-06-04",
			wantNights: 3,
		},
		{
			name:       "single night",
			checkIn:    "2024-06-01",
			checkOut:   "2024-06-02",
			wantNights: 1,
		},
		{
			name:       "same day",
			checkIn:    "2024-06-01",
			checkOut:   "2024-06-01",
			wantNights: 0,
		},
		{
			name:       "checkout before checkin clamps to zero",
			checkIn:    "2024-06-04",
			checkOut:   "2024-06-01",
			wantNights: 0,
		},
		{
			name:       "empty check-in",
			checkIn:    "",
			checkOut:   "2024-06-04",
			wantNights: 0,
		},
		{
			name:       "empty check-out",
			checkIn:    "2024-06-01",
			checkOut:   "",
			wantNights: 0,
		},
		{
			name:     "malformed check-in",
			checkIn:  "06/01/2024",
			checkOut: "2024-06-04",
			wantErr:  true,
		},
		{
			name:     "malformed check-out",
			checkIn:  "2024-06-01",
			checkOut: "not-a-date",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := pricing.Nights(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNights, nights)
		})
	}
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name        string
		nightlyRate float64
		checkIn     string
		checkOut    string
		want        pricing.Quote
	}{
		{
			name:        "hundred per night for three nights",
			nightlyRate: 100,
			checkIn:     "2024-06-01",
			checkOut:    "2024-06-04",
			want: pricing.Quote{
				Nights:   3,
				Subtotal: 300,
				Fee:      65,
				Total:    365,
			},
		},
		{
			name:        "zero nights still carries the fee",
			nightlyRate: 250,
			checkIn:     "",
			checkOut:    "",
			want: pricing.Quote{
				Nights:   0,
				Subtotal: 0,
				Fee:      65,
				Total:    65,
			},
		},
		{
			name:        "week-long stay",
			nightlyRate: 120,
			checkIn:     "2024-03-10",
			checkOut:    "2024-03-17",
			want: pricing.Quote{
				Nights:   7,
				Subtotal: 840,
				Fee:      65,
				Total:    905,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := pricing.NewQuote(tt.nightlyRate, tt.checkIn, tt.checkOut)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, quote)
		})
	}
}

func TestNewQuoteMalformedDates(t *testing.T) {
	_, err := pricing.NewQuote(100, "2024-06-01", "bogus")

	assert.Error(t, err)
}
