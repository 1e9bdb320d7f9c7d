package repository

import (
	"context"
	"fmt"
	"slices"
	"staybook/infras/otel"
	"staybook/internal/domains/property/model"
	"staybook/internal/domains/property/model/dto"
	"staybook/shared/constant"
	"sync"
)

type Property interface {
	GetAll(ctx context.Context, filter dto.CatalogFilter) ([]model.Property, error)
	Get(ctx context.Context, id string) (model.Property, error)
	Exist(ctx context.Context, id string) (bool, error)
}

// repositoryImpl holds the catalog in memory, seeded once at construction.
// Reads are guarded so the store stays safe once requests interleave.
type repositoryImpl struct {
	mu         sync.RWMutex
	properties []model.Property
	otel       otel.Otel
}

func New(ot otel.Otel) Property {
	properties := make([]model.Property, len(propertyListingSample))

	for i, property := range propertyListingSample {
		if property.ID == "" {
			property.ID = fmt.Sprintf("%s%d", model.IDPrefix, i+1)
		}

		properties[i] = property
	}

	return &repositoryImpl{
		properties: properties,
		otel:       ot,
	}
}

// GetAll returns the properties satisfying the filter, in seed order.
func (r *repositoryImpl) GetAll(ctx context.Context, filter dto.CatalogFilter) ([]model.Property, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]model.Property, 0, len(r.properties))

	for _, property := range r.properties {
		if filter.Matches(property) {
			filtered = append(filtered, clone(property))
		}
	}

	return filtered, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Property, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, property := range r.properties {
		if property.ID == id {
			return clone(property), nil
		}
	}

	return model.Property{}, nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Exist")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, property := range r.properties {
		if property.ID == id {
			return true, nil
		}
	}

	return false, nil
}

// clone copies the record so callers cannot mutate the seeded catalog through
// the shared slices.
func clone(property model.Property) model.Property {
	property.Category = slices.Clone(property.Category)
	property.Amenities = slices.Clone(property.Amenities)

	if property.Host != nil {
		host := *property.Host
		property.Host = &host
	}

	return property
}
