package interfaces

import (
	"context"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
)

// ISellingRepository abstracts persistence for sale proposals.
//
// Update writes s only while the stored status still equals expected; when a
// concurrent transition got there first the store rejects the write and the
// method returns the zero value with a nil error, so the caller can surface
// a stale-state conflict.

type ISellingRepository interface {
	Create(ctx context.Context, s entities.Selling) (entities.Selling, error)
	GetByID(ctx context.Context, id string) (entities.Selling, error)
	List(ctx context.Context) ([]entities.Selling, error)
	ListBySeller(ctx context.Context, seller string) ([]entities.Selling, error)
	ListByBuyer(ctx context.Context, buyer string) ([]entities.Selling, error)
	Update(ctx context.Context, s entities.Selling, expected entities.SellingStatus) (entities.Selling, error)
}
