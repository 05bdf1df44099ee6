package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase/interfaces"
)

// IAccountUseCase exposes the account registry's read paths (the login and
// account-selection screens list accounts; nothing mutates them over HTTP).

type IAccountUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
}

type AccountUseCase struct {
	accounts interfaces.IAccountRepository
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(accounts interfaces.IAccountRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts}
}

func (u *AccountUseCase) GetByID(ctx context.Context, id string) (entities.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Account{}, ErrInvalidActorID
	}
	a, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}, err
	}
	if a.AccountID == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (u *AccountUseCase) List(ctx context.Context) ([]entities.Account, error) {
	list, err := u.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].AccountID < list[j].AccountID
	})
	return list, nil
}
