package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"staybook/infras/otel/mocks"
	"staybook/internal/domains/review/repository"
	"staybook/internal/domains/review/service"
	"staybook/shared/failure"
)

func TestReviewService_ListForProperty(t *testing.T) {
	mockOtel := mocks.NewOtel()
	svc := service.New(repository.New(mockOtel), mockOtel)

	t.Run("ids are namespaced per property", func(t *testing.T) {
		reviews, err := svc.ListForProperty(context.Background(), "property-3")

		assert.NoError(t, err)
		assert.Len(t, reviews, 4)
		assert.Equal(t, "property-3-review-1", reviews[0].ID)
		assert.Equal(t, "property-3-review-4", reviews[3].ID)
		assert.Equal(t, "Sarah Johnson", reviews[0].UserName)
	})

	t.Run("different properties get distinct ids", func(t *testing.T) {
		first, err := svc.ListForProperty(context.Background(), "property-1")
		assert.NoError(t, err)

		second, err := svc.ListForProperty(context.Background(), "property-2")
		assert.NoError(t, err)

		assert.NotEqual(t, first[0].ID, second[0].ID)
	})

	t.Run("empty property id", func(t *testing.T) {
		_, err := svc.ListForProperty(context.Background(), "")

		assert.ErrorIs(t, err, failure.MissingPropertyID)
	})
}
