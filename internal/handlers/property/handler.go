package property

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/property/model/dto"
	propertyService "staybook/internal/domains/property/service"
	reviewService "staybook/internal/domains/review/service"
	"staybook/shared/constant"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	PropertyService propertyService.Property
	ReviewService   reviewService.Review
	Otel            otel.Otel
}

func New(
	propertySvc propertyService.Property,
	reviewSvc reviewService.Review,
	ot otel.Otel,
) Handler {
	return Handler{
		PropertyService: propertySvc,
		ReviewService:   reviewSvc,
		Otel:            ot,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/properties", func(r chi.Router) {
		r.MethodNotAllowed(response.MethodNotAllowedHandler(http.MethodGet))
		r.Get("/", h.GetProperties)
		r.Get("/{id}", h.GetPropertyByID)
		r.Get("/{id}/reviews", h.GetPropertyReviews)
	})
}

// GetProperties lists the catalog, optionally filtered.
// @Summary List properties
// @Description Lists the property catalog, filtered by category, price range, and location.
// @Tags property
// @Param category query string false "Category substring, case-insensitive"
// @Param minPrice query number false "Minimum nightly price"
// @Param maxPrice query number false "Maximum nightly price"
// @Param location query string false "Location substring, case-insensitive"
// @Produce json
// @Success 200 {array} model.Property
// @Failure 400 {object} response.Error
// @Router /properties [get]
func (h *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.Otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	var filter dto.CatalogFilter
	if err := filter.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	properties, err := h.PropertyService.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, properties)
}

// GetPropertyByID returns the detail view of a single property.
// @Summary Get property detail
// @Description Returns a single property with its detail fields populated.
// @Tags property
// @Param id path string true "Property ID"
// @Produce json
// @Success 200 {object} model.Property
// @Failure 404 {object} response.Error
// @Router /properties/{id} [get]
func (h *Handler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.Otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, err := h.PropertyService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, property)
}

// GetPropertyReviews lists the reviews of a property.
// @Summary List property reviews
// @Description Lists the reviews attached to a property.
// @Tags property
// @Param id path string true "Property ID"
// @Produce json
// @Success 200 {array} model.Review
// @Failure 400 {object} response.Error
// @Router /properties/{id}/reviews [get]
func (h *Handler) GetPropertyReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.Otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyReviews")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reviews, err := h.ReviewService.ListForProperty(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}
