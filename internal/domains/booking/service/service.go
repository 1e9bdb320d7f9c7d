package service

import (
	"context"
	"fmt"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/model"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/repository"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/random"
	"staybook/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.BookingDetails) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, ot otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

// Create validates the submission, builds the confirmed record, and appends
// it to the store. Nothing is committed when validation fails.
func (s *serviceImpl) Create(ctx context.Context, req dto.BookingDetails) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PropertyID == constant.Empty || req.CheckInDate == constant.Empty || req.CheckOutDate == constant.Empty {
		return res, failure.MissingBookingFields
	}

	if req.ContactInfo.Name == constant.Empty || req.ContactInfo.Email == constant.Empty {
		return res, failure.MissingContactInfo
	}

	now := timezone.Now()

	booking := model.Booking{
		ID:                 fmt.Sprintf("%s%d", model.IDPrefix, now.UnixMilli()),
		Status:             model.StatusConfirmed,
		Details:            req.ToModel(),
		ConfirmationNumber: random.ConfirmationNumber(),
	}
	booking.CreatedAt = now
	booking.CreatedBy = req.UserID

	if err = s.repo.Append(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to store booking")

		return res, fmt.Errorf("failed to store booking: %w", err)
	}

	scope.AddEvent("Booking stored with confirmation number " + booking.ConfirmationNumber)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}
