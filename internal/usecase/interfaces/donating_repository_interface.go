package interfaces

import (
	"context"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
)

// IDonatingRepository abstracts persistence for donation proposals.
//
// Update follows the same expected-status contract as ISellingRepository.

type IDonatingRepository interface {
	Create(ctx context.Context, d entities.Donating) (entities.Donating, error)
	GetByID(ctx context.Context, id string) (entities.Donating, error)
	List(ctx context.Context) ([]entities.Donating, error)
	ListByDonor(ctx context.Context, donor string) ([]entities.Donating, error)
	ListByGrantee(ctx context.Context, grantee string) ([]entities.Donating, error)
	Update(ctx context.Context, d entities.Donating, expected entities.DonatingStatus) (entities.Donating, error)
}
