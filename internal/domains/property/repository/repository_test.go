package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"staybook/infras/otel/mocks"
	"staybook/internal/domains/property/model/dto"
	"staybook/internal/domains/property/repository"
)

func ptr(v float64) *float64 {
	return &v
}

func TestPropertyRepository_GetAll(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  dto.CatalogFilter
		wantIDs []string
	}{
		{
			name:   "no filter returns full catalog in seed order",
			filter: dto.CatalogFilter{},
			wantIDs: []string{
				"property-1", "property-2", "property-3", "property-4", "property-5",
				"property-6", "property-7", "property-8", "property-9", "property-10",
			},
		},
		{
			name:    "price range",
			filter:  dto.CatalogFilter{MinPrice: ptr(100), MaxPrice: ptr(200)},
			wantIDs: []string{"property-2", "property-3", "property-5", "property-8", "property-9"},
		},
		{
			name:    "category is case-insensitive substring",
			filter:  dto.CatalogFilter{Category: "pool"},
			wantIDs: []string{"property-1", "property-3"},
		},
		{
			name:    "location matches city state or country",
			filter:  dto.CatalogFilter{Location: "bali"},
			wantIDs: []string{"property-1"},
		},
		{
			name:    "location substring across entries",
			filter:  dto.CatalogFilter{Location: "usa"},
			wantIDs: []string{"property-2", "property-3", "property-4"},
		},
		{
			name:    "combined filters",
			filter:  dto.CatalogFilter{Category: "fireplace", MaxPrice: ptr(150)},
			wantIDs: []string{"property-5"},
		},
		{
			name:    "no match",
			filter:  dto.CatalogFilter{Category: "igloo"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties, err := repo.GetAll(ctx, tt.filter)

			assert.NoError(t, err)

			ids := make([]string, 0, len(properties))
			for _, property := range properties {
				ids = append(ids, property.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPropertyRepository_Get(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		property, err := repo.Get(ctx, "property-1")

		assert.NoError(t, err)
		assert.Equal(t, "Villa Ocean Breeze", property.Name)
		assert.Equal(t, 320.0, property.Price)
	})

	t.Run("unknown id returns zero value", func(t *testing.T) {
		property, err := repo.Get(ctx, "property-999")

		assert.NoError(t, err)
		assert.Empty(t, property.ID)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		property, err := repo.Get(ctx, "property-1")
		assert.NoError(t, err)

		property.Category[0] = "Mutated"

		again, err := repo.Get(ctx, "property-1")
		assert.NoError(t, err)
		assert.Equal(t, "Luxury Villa", again.Category[0])
	})
}

func TestPropertyRepository_Exist(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	exists, err := repo.Exist(ctx, "property-7")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exist(ctx, "property-0")
	assert.NoError(t, err)
	assert.False(t, exists)
}
