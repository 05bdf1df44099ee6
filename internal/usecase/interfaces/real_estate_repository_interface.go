package interfaces

import (
	"context"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
)

// IRealEstateRepository abstracts persistence for the asset ledger.
//
// Save overwrites the full record; the engine uses it to flip the
// encumbrance flag and to transfer the proprietor on completed transactions.

type IRealEstateRepository interface {
	Create(ctx context.Context, r entities.RealEstate) (entities.RealEstate, error)
	GetByID(ctx context.Context, id string) (entities.RealEstate, error)
	List(ctx context.Context) ([]entities.RealEstate, error)
	ListByProprietor(ctx context.Context, proprietor string) ([]entities.RealEstate, error)
	Save(ctx context.Context, r entities.RealEstate) (entities.RealEstate, error)
}
