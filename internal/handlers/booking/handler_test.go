package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"staybook/infras/otel/mocks"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/repository"
	"staybook/internal/domains/booking/service"
	"staybook/internal/handlers/booking"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mockOtel := mocks.NewOtel()

	handler := booking.New(
		service.New(repository.New(mockOtel), mockOtel),
		mockOtel,
	)

	mux := chi.NewRouter()
	handler.Router(mux)

	return mux
}

const validPayload = `{
	"propertyId": "property-1",
	"checkInDate": "2024-06-01",
	"checkOutDate": "2024-06-04",
	"guests": 2,
	"totalPrice": 1025,
	"contactInfo": {
		"name": "Jane Doe",
		"email": "jane.doe@example.com",
		"phone": "+1 555 123 4567"
	}
}`

func TestCreateBooking(t *testing.T) {
	router := newTestRouter(t)

	t.Run("created", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(validPayload)))

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var body dto.BookingResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Regexp(t, `^booking-\d+$`, body.ID)
		assert.Regexp(t, `^CONF-[0-9A-Z]{13}$`, body.ConfirmationNumber)
		assert.Equal(t, "confirmed", body.Status)
		assert.Equal(t, "property-1", body.BookingDetails.PropertyID)
	})

	t.Run("missing booking details", func(t *testing.T) {
		payload := `{"contactInfo": {"name": "Jane Doe", "email": "jane.doe@example.com"}}`

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(payload)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error": "Missing required booking details"}`, recorder.Body.String())
	})

	t.Run("missing contact info", func(t *testing.T) {
		payload := `{
			"propertyId": "property-1",
			"checkInDate": "2024-06-01",
			"checkOutDate": "2024-06-04"
		}`

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(payload)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error": "Contact information is required"}`, recorder.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error": "Invalid booking data"}`, recorder.Body.String())
	})
}

func TestGetBookingByID(t *testing.T) {
	router := newTestRouter(t)

	t.Run("round trip", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(validPayload)))
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var created dto.BookingResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/bookings/"+created.ID, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var fetched dto.BookingResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.ConfirmationNumber, fetched.ConfirmationNumber)
	})

	t.Run("not found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/bookings/booking-0", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error": "Booking not found"}`, recorder.Body.String())
	})
}

func TestBookingsMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	t.Run("collection accepts POST only", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/bookings", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		assert.Equal(t, http.MethodPost, recorder.Header().Get("Allow"))
		assert.JSONEq(t, `{"error": "Method GET Not Allowed"}`, recorder.Body.String())
	})

	t.Run("item accepts GET only", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/bookings/booking-1", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		assert.Equal(t, http.MethodGet, recorder.Header().Get("Allow"))
		assert.JSONEq(t, `{"error": "Method DELETE Not Allowed"}`, recorder.Body.String())
	})
}
