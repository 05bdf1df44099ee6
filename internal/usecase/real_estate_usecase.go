package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase/interfaces"
)

var (
	ErrRealEstateNotFound = fmt.Errorf("%w: real estate", entities.ErrNotFound)
	ErrInvalidArea        = fmt.Errorf("%w: total area and living space must be positive", entities.ErrValidation)
)

// IRealEstateUseCase exposes the asset ledger's registration and read paths.

type IRealEstateUseCase interface {
	CreateRealEstate(ctx context.Context, actorID string, totalArea, livingSpace float64) (entities.RealEstate, error)
	GetByID(ctx context.Context, id string) (entities.RealEstate, error)
	List(ctx context.Context, actorID string, scope QueryScope) ([]entities.RealEstate, error)
}

type RealEstateUseCase struct {
	realEstates interfaces.IRealEstateRepository
	accounts    interfaces.IAccountRepository
}

var _ IRealEstateUseCase = (*RealEstateUseCase)(nil)

func NewRealEstateUseCase(realEstates interfaces.IRealEstateRepository, accounts interfaces.IAccountRepository) *RealEstateUseCase {
	return &RealEstateUseCase{realEstates: realEstates, accounts: accounts}
}

// CreateRealEstate registers a parcel owned by the acting account. Admins
// are read-only here as everywhere else.
func (u *RealEstateUseCase) CreateRealEstate(ctx context.Context, actorID string, totalArea, livingSpace float64) (entities.RealEstate, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.RealEstate{}, ErrInvalidActorID
	}
	if totalArea <= 0 || livingSpace <= 0 {
		return entities.RealEstate{}, ErrInvalidArea
	}

	actor, err := u.accounts.GetByID(ctx, actorID)
	if err != nil {
		return entities.RealEstate{}, err
	}
	if actor.AccountID == "" {
		return entities.RealEstate{}, ErrAccountNotFound
	}
	if actor.IsAdmin() {
		return entities.RealEstate{}, ErrAdminReadOnly
	}

	re := entities.RealEstate{
		RealEstateID: uuid.NewString(),
		Proprietor:   actor.AccountID,
		TotalArea:    totalArea,
		LivingSpace:  livingSpace,
		Encumbrance:  false,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.realEstates.Create(ctx, re)
	if err != nil {
		return entities.RealEstate{}, err
	}
	log.Printf("[realestate][usecase] created real_estate_id=%s proprietor=%s total_area=%.2f", created.RealEstateID, created.Proprietor, created.TotalArea)
	return created, nil
}

func (u *RealEstateUseCase) GetByID(ctx context.Context, id string) (entities.RealEstate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RealEstate{}, fmt.Errorf("%w: real estate id required", entities.ErrValidation)
	}
	re, err := u.realEstates.GetByID(ctx, id)
	if err != nil {
		return entities.RealEstate{}, err
	}
	if re.RealEstateID == "" {
		return entities.RealEstate{}, ErrRealEstateNotFound
	}
	return re, nil
}

func (u *RealEstateUseCase) List(ctx context.Context, actorID string, scope QueryScope) ([]entities.RealEstate, error) {
	actorID = strings.TrimSpace(actorID)
	var (
		list []entities.RealEstate
		err  error
	)
	switch scope {
	case ScopeAll:
		list, err = u.realEstates.List(ctx)
	case ScopeMine:
		if actorID == "" {
			return nil, ErrInvalidActorID
		}
		list, err = u.realEstates.ListByProprietor(ctx, actorID)
	default:
		return nil, ErrInvalidScope
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
