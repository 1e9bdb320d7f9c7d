package repository

import (
	"context"
	"slices"
	"staybook/infras/otel"
	"staybook/internal/domains/review/model"
	"staybook/shared/constant"
)

// baseReviews is the fixed review set returned for every property. A real
// per-property relation would replace this slice without changing the
// interface.
var baseReviews = []model.Review{
	{
		ID:         "review-1",
		UserID:     "user-1",
		UserName:   "Sarah Johnson",
		UserAvatar: "/images/user-1.jpg",
		Rating:     5,
		Comment:    "Amazing property! The location was perfect and the amenities exceeded our expectations. Will definitely book again!",
		Date:       "2024-01-15",
	},
	{
		ID:         "review-2",
		UserID:     "user-2",
		UserName:   "Mike Chen",
		UserAvatar: "/images/user-2.jpg",
		Rating:     4,
		Comment:    "Great stay overall. The property was clean and well-maintained. Only minor issue was the WiFi speed.",
		Date:       "2024-01-10",
	},
	{
		ID:         "review-3",
		UserID:     "user-3",
		UserName:   "Emily Davis",
		UserAvatar: "/images/user-3.jpg",
		Rating:     5,
		Comment:    "Absolutely loved this place! The host was very responsive and the check-in process was seamless.",
		Date:       "2024-01-08",
	},
	{
		ID:         "review-4",
		UserID:     "user-4",
		UserName:   "James Wilson",
		UserAvatar: "/images/user-4.jpg",
		Rating:     4,
		Comment:    "Solid choice for a weekend getaway. The property matched the photos and was in a great neighborhood.",
		Date:       "2024-01-05",
	},
}

type Review interface {
	GetBase(ctx context.Context) ([]model.Review, error)
}

type repositoryImpl struct {
	reviews []model.Review
	otel    otel.Otel
}

func New(ot otel.Otel) Review {
	return &repositoryImpl{
		reviews: baseReviews,
		otel:    ot,
	}
}

func (r *repositoryImpl) GetBase(ctx context.Context) ([]model.Review, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetBase")
	defer scope.End()

	return slices.Clone(r.reviews), nil
}
