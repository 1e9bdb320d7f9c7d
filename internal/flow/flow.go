package flow

import (
	"context"
	"errors"
	"fmt"
	"staybook/infras/otel"
	"staybook/internal/client"
	bookingDTO "staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/pricing"
	propertyModel "staybook/internal/domains/property/model"
	"staybook/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultRedirectDelay matches the storefront's pause on the success screen
// before moving to the confirmation view.
const DefaultRedirectDelay = 3 * time.Second

// ErrFormInvalid is returned by Submit when the form fails validation. The
// per-field messages are available through Form().Errors().
var ErrFormInvalid = errors.New("booking form is invalid")

// Flow drives one booking attempt end to end: load the property and price
// the stay, validate the form, submit, and follow the redirect to the
// confirmation view.
type Flow struct {
	api  client.API
	otel otel.Otel

	propertyID   string
	checkInDate  string
	checkOutDate string
	guests       int

	form          *Form
	state         State
	redirectDelay time.Duration

	property propertyModel.Property
	quote    pricing.Quote
	booking  bookingDTO.BookingResponse
	lastErr  error
}

func New(api client.API, ot otel.Otel, propertyID, checkInDate, checkOutDate string, guests int) *Flow {
	if guests <= 0 {
		guests = 1
	}

	return &Flow{
		api:           api,
		otel:          ot,
		propertyID:    propertyID,
		checkInDate:   checkInDate,
		checkOutDate:  checkOutDate,
		guests:        guests,
		form:          NewForm(),
		state:         StateEntry,
		redirectDelay: DefaultRedirectDelay,
	}
}

func (f *Flow) Form() *Form { return f.form }

func (f *Flow) State() State { return f.state }

func (f *Flow) Property() propertyModel.Property { return f.property }

func (f *Flow) Quote() pricing.Quote { return f.quote }

func (f *Flow) Booking() bookingDTO.BookingResponse { return f.booking }

func (f *Flow) LastError() error { return f.lastErr }

// SetRedirectDelay overrides the success-to-confirmation pause.
func (f *Flow) SetRedirectDelay(delay time.Duration) {
	f.redirectDelay = delay
}

// Load fetches the property and prices the stay.
func (f *Flow) Load(ctx context.Context) (err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelFlowScopeName, constant.OtelFlowScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	f.property, err = f.api.Property(ctx, f.propertyID)
	if err != nil {
		return fmt.Errorf("loading property: %w", err)
	}

	f.quote, err = pricing.NewQuote(f.property.Price, f.checkInDate, f.checkOutDate)
	if err != nil {
		return fmt.Errorf("pricing stay: %w", err)
	}

	return nil
}

// Submit validates the form and sends the booking. An invalid form keeps the
// flow in its current state and returns ErrFormInvalid. A rejected submission
// moves the flow to its failed state so the form can be corrected and
// resubmitted.
func (f *Flow) Submit(ctx context.Context) (err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelFlowScopeName, constant.OtelFlowScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !f.form.Validate() {
		return ErrFormInvalid
	}

	next, err := Transition(f.state, EventSubmit)
	if err != nil {
		return err
	}
	f.state = next

	details := bookingDTO.BookingDetails{
		PropertyID:   f.propertyID,
		CheckInDate:  f.checkInDate,
		CheckOutDate: f.checkOutDate,
		Guests:       f.guests,
		TotalPrice:   f.quote.Total,
		ContactInfo: bookingDTO.ContactInfo{
			Name:  f.form.ContactName(),
			Email: f.form.Email,
			Phone: f.form.PhoneNumber,
		},
		SpecialRequests: f.form.SpecialRequests,
	}

	booking, err := f.api.SubmitBooking(ctx, details)
	if err != nil {
		log.Error().Err(err).Str("property_id", f.propertyID).Msg("booking submission rejected")

		f.lastErr = err
		f.state, _ = Transition(f.state, EventRejected)

		return fmt.Errorf("submitting booking: %w", err)
	}

	f.booking = booking
	f.lastErr = nil
	f.state, _ = Transition(f.state, EventAccepted)

	scope.AddEvent("Booking accepted with confirmation number " + booking.ConfirmationNumber)

	return nil
}

// AwaitConfirmation waits out the redirect delay, then fetches the stored
// booking and moves to the confirmed state. Cancelling the context abandons
// the redirect and leaves the state untouched.
func (f *Flow) AwaitConfirmation(ctx context.Context) (err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelFlowScopeName, constant.OtelFlowScopeName+".AwaitConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if f.state != StateSuccess {
		return fmt.Errorf("invalid transition: %s on %s", EventRedirect, f.state)
	}

	timer := time.NewTimer(f.redirectDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() // nolint:wrapcheck
	case <-timer.C:
	}

	booking, err := f.api.Booking(ctx, f.booking.ID)
	if err != nil {
		return fmt.Errorf("loading confirmation: %w", err)
	}

	f.booking = booking
	f.state, _ = Transition(f.state, EventRedirect)

	return nil
}
