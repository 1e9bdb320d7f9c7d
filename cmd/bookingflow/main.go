// Command bookingflow runs one booking against a running service: it loads a
// property, fills the form, submits, and follows the redirect to the
// confirmation view. Useful for exercising the full lifecycle from a shell.
package main

import (
	"context"
	"errors"
	"flag"
	"staybook/config"
	"staybook/infras/otel"
	"staybook/internal/client"
	"staybook/internal/flow"
	"staybook/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	propertyID := flag.String("property", "property-1", "property to book")
	checkIn := flag.String("check-in", "", "check-in date, YYYY-MM-DD")
	checkOut := flag.String("check-out", "", "check-out date, YYYY-MM-DD")
	guests := flag.Int("guests", 1, "number of guests")
	flag.Parse()

	ot := otel.New(cfg)
	api := client.New(cfg, ot)

	bookingFlow := flow.New(api, ot, *propertyID, *checkIn, *checkOut, *guests)
	run(context.Background(), bookingFlow)
}

func run(ctx context.Context, bookingFlow *flow.Flow) {
	if err := bookingFlow.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load property")
	}

	property := bookingFlow.Property()
	quote := bookingFlow.Quote()
	log.Info().
		Str("property", property.Name).
		Int("nights", quote.Nights).
		Float64("total", quote.Total).
		Msg("Stay priced")

	form := bookingFlow.Form()
	form.Set(flow.FieldFirstName, "Jane")
	form.Set(flow.FieldLastName, "Doe")
	form.Set(flow.FieldEmail, "jane.doe@example.com")
	form.Set(flow.FieldPhoneNumber, "+1 555 123 4567")
	form.Set(flow.FieldCardNumber, "4111 1111 1111 1111")
	form.Set(flow.FieldExpirationDate, "12/27")
	form.Set(flow.FieldCVV, "123")
	form.Set(flow.FieldBillingStreet, "123 Main St")
	form.Set(flow.FieldBillingCity, "Springfield")
	form.Set(flow.FieldBillingState, "IL")
	form.Set(flow.FieldBillingZipCode, "62704")
	form.Set(flow.FieldBillingCountry, "USA")

	if err := bookingFlow.Submit(ctx); err != nil {
		if errors.Is(err, flow.ErrFormInvalid) {
			for field, message := range form.Errors() {
				log.Error().Str("field", field).Msg(message)
			}
		}

		log.Fatal().Err(err).Msg("Booking submission failed")
	}

	log.Info().
		Str("booking_id", bookingFlow.Booking().ID).
		Str("confirmation_number", bookingFlow.Booking().ConfirmationNumber).
		Msg("Booking accepted, awaiting confirmation")

	if err := bookingFlow.AwaitConfirmation(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load confirmation")
	}

	booking := bookingFlow.Booking()
	log.Info().
		Str("booking_id", booking.ID).
		Str("status", booking.Status).
		Str("confirmation_number", booking.ConfirmationNumber).
		Msg("Booking confirmed")
}
