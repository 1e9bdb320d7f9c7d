package booking

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/service"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/validator"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	BookingService service.Booking
	Otel           otel.Otel
}

func New(bookingSvc service.Booking, ot otel.Otel) Handler {
	return Handler{
		BookingService: bookingSvc,
		Otel:           ot,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.MethodNotAllowed(response.MethodNotAllowedHandler(http.MethodPost))
		r.Post("/", h.CreateBooking)

		r.Route("/{id}", func(r chi.Router) {
			r.MethodNotAllowed(response.MethodNotAllowedHandler(http.MethodGet))
			r.Get("/", h.GetBookingByID)
		})
	})
}

// CreateBooking accepts a booking submission and returns the confirmed record.
// @Summary Create booking
// @Description Validates the submission and stores a confirmed booking.
// @Tags booking
// @Accept json
// @Param request body dto.BookingDetails true "Booking details"
// @Produce json
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Router /bookings [post]
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.Otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.BookingDetails
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("Invalid booking data"))

		return
	}

	booking, err := h.BookingService.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookingByID returns a stored booking.
// @Summary Get booking
// @Description Returns a stored booking by its id.
// @Tags booking
// @Param id path string true "Booking ID"
// @Produce json
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} response.Error
// @Router /bookings/{id} [get]
func (h *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.Otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := h.BookingService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
