package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"staybook/config"
	"staybook/infras/otel"
	bookingDTO "staybook/internal/domains/booking/model/dto"
	propertyModel "staybook/internal/domains/property/model"
	propertyDTO "staybook/internal/domains/property/model/dto"
	reviewModel "staybook/internal/domains/review/model"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"strings"
	"time"
)

// API is the typed client the booking flow talks through. Every method maps
// to one endpoint of the booking service.
type API interface {
	Properties(ctx context.Context, filter propertyDTO.CatalogFilter) ([]propertyModel.Property, error)
	Property(ctx context.Context, id string) (propertyModel.Property, error)
	Reviews(ctx context.Context, propertyID string) ([]reviewModel.Review, error)
	SubmitBooking(ctx context.Context, details bookingDTO.BookingDetails) (bookingDTO.BookingResponse, error)
	Booking(ctx context.Context, id string) (bookingDTO.BookingResponse, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(config *config.Config, ot otel.Otel) API {
	timeout := time.Duration(config.Client.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &clientImpl{
		baseURL:    strings.TrimRight(config.Client.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		otel:       ot,
	}
}

func (c *clientImpl) Properties(ctx context.Context, filter propertyDTO.CatalogFilter) (res []propertyModel.Property, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Properties")
	defer scope.End()
	defer scope.TraceIfError(err)

	path := "/properties"
	if query := filter.Values().Encode(); query != "" {
		path += "?" + query
	}

	err = c.do(ctx, http.MethodGet, path, nil, &res)

	return res, err
}

func (c *clientImpl) Property(ctx context.Context, id string) (res propertyModel.Property, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Property")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/properties/"+id, nil, &res)

	return res, err
}

func (c *clientImpl) Reviews(ctx context.Context, propertyID string) (res []reviewModel.Review, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Reviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/properties/"+propertyID+"/reviews", nil, &res)

	return res, err
}

func (c *clientImpl) SubmitBooking(ctx context.Context, details bookingDTO.BookingDetails) (res bookingDTO.BookingResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".SubmitBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodPost, "/bookings", details, &res)

	return res, err
}

func (c *clientImpl) Booking(ctx context.Context, id string) (res bookingDTO.BookingResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/bookings/"+id, nil, &res)

	return res, err
}

// do performs a request against the service, decoding the bare JSON payload
// on success and the error envelope otherwise.
func (c *clientImpl) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		envelope.Error = http.StatusText(resp.StatusCode)
	}

	return &failure.Failure{
		Code:    resp.StatusCode,
		Message: envelope.Error,
	}
}
