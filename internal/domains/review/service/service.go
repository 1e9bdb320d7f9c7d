package service

import (
	"context"
	"fmt"
	"staybook/infras/otel"
	"staybook/internal/domains/review/model"
	"staybook/internal/domains/review/repository"
	"staybook/shared/constant"
	"staybook/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	ListForProperty(ctx context.Context, propertyID string) ([]model.Review, error)
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, ot otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

// ListForProperty returns the base review set relabeled for the property,
// ids namespaced as {propertyId}-{baseReviewId}.
func (s *serviceImpl) ListForProperty(ctx context.Context, propertyID string) (res []model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	if propertyID == constant.Empty {
		return nil, failure.MissingPropertyID
	}

	reviews, err := s.repo.GetBase(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	for i := range reviews {
		reviews[i].ID = fmt.Sprintf("%s-%s", propertyID, reviews[i].ID)
	}

	return reviews, nil
}
