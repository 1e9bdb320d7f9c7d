package dto

import (
	"net/http"
	"net/url"
	"staybook/internal/domains/property/model"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"strconv"
	"strings"
)

// CatalogFilter narrows the property catalog. Unset fields impose no
// constraint; all set fields must match.
type CatalogFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Location string
}

// FromRequest populates the filter from query parameters. Malformed price
// parameters are rejected rather than silently matching nothing.
func (f *CatalogFilter) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	f.Category = queryParams.Get(constant.RequestParamCategory)
	f.Location = queryParams.Get(constant.RequestParamLocation)

	if minPrice := queryParams.Get(constant.RequestParamMinPrice); minPrice != "" {
		parsed, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return failure.InvalidPriceParam
		}

		f.MinPrice = &parsed
	}

	if maxPrice := queryParams.Get(constant.RequestParamMaxPrice); maxPrice != "" {
		parsed, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return failure.InvalidPriceParam
		}

		f.MaxPrice = &parsed
	}

	return nil
}

// Values encodes the filter as query parameters for the API client.
func (f CatalogFilter) Values() url.Values {
	values := url.Values{}

	if f.Category != "" {
		values.Set(constant.RequestParamCategory, f.Category)
	}

	if f.MinPrice != nil {
		values.Set(constant.RequestParamMinPrice, strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}

	if f.MaxPrice != nil {
		values.Set(constant.RequestParamMaxPrice, strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}

	if f.Location != "" {
		values.Set(constant.RequestParamLocation, f.Location)
	}

	return values
}

// Matches reports whether a property satisfies every supplied constraint.
func (f CatalogFilter) Matches(property model.Property) bool {
	if f.Category != "" {
		found := false
		needle := strings.ToLower(f.Category)

		for _, category := range property.Category {
			if strings.Contains(strings.ToLower(category), needle) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	if f.MinPrice != nil && property.Price < *f.MinPrice {
		return false
	}

	if f.MaxPrice != nil && property.Price > *f.MaxPrice {
		return false
	}

	if f.Location != "" {
		needle := strings.ToLower(f.Location)

		if !strings.Contains(strings.ToLower(property.Address.City), needle) &&
			!strings.Contains(strings.ToLower(property.Address.State), needle) &&
			!strings.Contains(strings.ToLower(property.Address.Country), needle) {
			return false
		}
	}

	return true
}
