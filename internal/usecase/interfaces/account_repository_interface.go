package interfaces

import (
	"context"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
)

// IAccountRepository abstracts persistence for the account registry.
//
// Reads return the zero value (empty AccountID) when no record exists.
// UpdateBalance is the only mutation the engine performs on accounts: it
// moves escrowed funds during selling transitions. A write that loses its
// conditional check to a concurrent writer reports a zero-value account
// with no error; callers re-issue the delta against the fresh balance.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
	UpdateBalance(ctx context.Context, id string, delta float64) (entities.Account, error)
}
