package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/model"
	"staybook/shared/constant"
	"sync"
)

type Booking interface {
	Append(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, error)
	Count(ctx context.Context) (int, error)
}

// repositoryImpl is the append-only booking store. There is no update or
// delete path; records survive until the process exits. The mutex keeps the
// append atomic once concurrent requests arrive.
type repositoryImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
	otel     otel.Otel
}

func New(ot otel.Otel) Booking {
	return &repositoryImpl{
		otel: ot,
	}
}

func (r *repositoryImpl) Append(ctx context.Context, booking model.Booking) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Append")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, booking := range r.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}

	return model.Booking{}, nil
}

func (r *repositoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Count")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings), nil
}
