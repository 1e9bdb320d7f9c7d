package service

import (
	"context"
	"fmt"
	"slices"
	"staybook/infras/otel"
	"staybook/internal/domains/property/model"
	"staybook/internal/domains/property/model/dto"
	"staybook/internal/domains/property/repository"
	"staybook/shared/constant"
	"staybook/shared/failure"

	"github.com/rs/zerolog/log"
)

// Extra amenities every detail view advertises on top of the listing's own
// category tags.
var detailAmenities = []string{"High-speed internet", "Air conditioning", "Heating"}

type Property interface {
	GetAll(ctx context.Context, filter dto.CatalogFilter) ([]model.Property, error)
	Get(ctx context.Context, id string) (model.Property, error)
}

type serviceImpl struct {
	repo repository.Property
	otel otel.Otel
}

func New(repo repository.Property, ot otel.Otel) Property {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.CatalogFilter) (res []model.Property, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return nil, fmt.Errorf("failed to get properties: %w", err)
	}

	return res, nil
}

// Get returns the detail view of a single property. Seed entries without a
// description, amenity list, or host get stand-in values, matching what the
// storefront's detail page shows.
func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Property, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if id == constant.Empty {
		return res, failure.MissingPropertyID
	}

	property, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("Property not found") // nolint:wrapcheck
	}

	return enrichDetail(property), nil
}

func enrichDetail(property model.Property) model.Property {
	if property.Description == "" {
		property.Description = fmt.Sprintf(
			"Experience the ultimate in luxury and comfort at %s. This stunning property offers breathtaking views and premium amenities for an unforgettable stay.",
			property.Name,
		)
	}

	if len(property.Amenities) == 0 {
		property.Amenities = append(slices.Clone(property.Category), detailAmenities...)
	}

	if property.Host == nil {
		property.Host = &model.Host{
			Name:     "John Doe",
			Avatar:   "/images/host-avatar.jpg",
			Verified: true,
		}
	}

	return property
}
