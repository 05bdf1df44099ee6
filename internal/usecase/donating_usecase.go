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
	ErrDonatingNotFound       = fmt.Errorf("%w: donating", entities.ErrNotFound)
	ErrGranteeNotFound        = fmt.Errorf("%w: grantee account", entities.ErrNotFound)
	ErrNotGrantee             = fmt.Errorf("%w: only the grantee can confirm receipt", entities.ErrForbidden)
	ErrNotDonationParticipant = fmt.Errorf("%w: actor is not a party to this donation", entities.ErrForbidden)
	ErrDonatingClosed         = fmt.Errorf("%w: donation does not accept this action", entities.ErrInvalidState)
	ErrInvalidDonatingID      = fmt.Errorf("%w: donating id required", entities.ErrValidation)
	ErrSelfGrantee            = fmt.Errorf("%w: donor and grantee cannot be the same account", entities.ErrValidation)
	ErrAdminGrantee           = fmt.Errorf("%w: cannot donate to an admin account", entities.ErrValidation)
)

// IDonatingUseCase drives the donation state machine. Donations carry no
// deadline and move no funds; the parcel is handed over on confirmation.

type IDonatingUseCase interface {
	CreateDonating(ctx context.Context, actorID, realEstateID, granteeID string) (entities.Donating, error)
	ConfirmDone(ctx context.Context, actorID, donatingID string) (entities.Donating, error)
	Cancel(ctx context.Context, actorID, donatingID string) (entities.Donating, error)
	List(ctx context.Context, actorID string, scope QueryScope) ([]entities.Donating, error)
	ListByGrantee(ctx context.Context, actorID string) ([]entities.Donating, error)
}

type DonatingUseCase struct {
	donatings   interfaces.IDonatingRepository
	realEstates interfaces.IRealEstateRepository
	accounts    interfaces.IAccountRepository
	locker      *AssetLocker
}

var _ IDonatingUseCase = (*DonatingUseCase)(nil)

func NewDonatingUseCase(
	donatings interfaces.IDonatingRepository,
	realEstates interfaces.IRealEstateRepository,
	accounts interfaces.IAccountRepository,
	locker *AssetLocker,
) *DonatingUseCase {
	return &DonatingUseCase{donatings: donatings, realEstates: realEstates, accounts: accounts, locker: locker}
}

func (u *DonatingUseCase) CreateDonating(ctx context.Context, actorID, realEstateID, granteeID string) (entities.Donating, error) {
	actorID = strings.TrimSpace(actorID)
	realEstateID = strings.TrimSpace(realEstateID)
	granteeID = strings.TrimSpace(granteeID)
	if actorID == "" {
		return entities.Donating{}, ErrInvalidActorID
	}
	if realEstateID == "" {
		return entities.Donating{}, fmt.Errorf("%w: real estate id required", entities.ErrValidation)
	}
	if granteeID == "" {
		return entities.Donating{}, fmt.Errorf("%w: grantee account id required", entities.ErrValidation)
	}
	if granteeID == actorID {
		return entities.Donating{}, ErrSelfGrantee
	}

	actor, err := u.mutatingActor(ctx, actorID)
	if err != nil {
		return entities.Donating{}, err
	}
	grantee, err := u.accounts.GetByID(ctx, granteeID)
	if err != nil {
		return entities.Donating{}, err
	}
	if grantee.AccountID == "" {
		return entities.Donating{}, ErrGranteeNotFound
	}
	if grantee.IsAdmin() {
		return entities.Donating{}, ErrAdminGrantee
	}

	unlock := u.locker.Lock(realEstateID)
	defer unlock()

	re, err := u.realEstates.GetByID(ctx, realEstateID)
	if err != nil {
		return entities.Donating{}, err
	}
	if re.RealEstateID == "" {
		return entities.Donating{}, ErrRealEstateNotFound
	}
	if re.Proprietor != actor.AccountID {
		return entities.Donating{}, ErrNotProprietor
	}
	if re.Encumbrance {
		return entities.Donating{}, ErrRealEstateEncumbered
	}

	now := time.Now().UTC()
	d := entities.Donating{
		DonatingID:       uuid.NewString(),
		ObjectOfDonating: re.RealEstateID,
		Donor:            actor.AccountID,
		Grantee:          grantee.AccountID,
		Status:           entities.DonatingStatusInProgress,
		CreateTime:       now,
		UpdateTime:       now,
	}
	created, err := u.donatings.Create(ctx, d)
	if err != nil {
		return entities.Donating{}, err
	}

	re.Encumbrance = true
	if _, err := u.realEstates.Save(ctx, re); err != nil {
		return entities.Donating{}, err
	}
	log.Printf("[donating][usecase] created donating_id=%s object=%s donor=%s grantee=%s", created.DonatingID, created.ObjectOfDonating, created.Donor, created.Grantee)
	return created, nil
}

func (u *DonatingUseCase) ConfirmDone(ctx context.Context, actorID, donatingID string) (entities.Donating, error) {
	actor, d, unlock, err := u.openForTransition(ctx, actorID, donatingID)
	if err != nil {
		return entities.Donating{}, err
	}
	defer unlock()

	if d.Status != entities.DonatingStatusInProgress {
		return entities.Donating{}, ErrDonatingClosed
	}
	if actor.AccountID != d.Grantee {
		return entities.Donating{}, ErrNotGrantee
	}

	d.Status = entities.DonatingStatusDone
	d.UpdateTime = time.Now().UTC()
	updated, err := u.donatings.Update(ctx, d, entities.DonatingStatusInProgress)
	if err != nil {
		return entities.Donating{}, err
	}
	if updated.DonatingID == "" {
		return entities.Donating{}, ErrStaleTransition
	}

	re, err := u.realEstates.GetByID(ctx, d.ObjectOfDonating)
	if err != nil {
		return entities.Donating{}, err
	}
	if re.RealEstateID != "" {
		re.Proprietor = d.Grantee
		re.Encumbrance = false
		if _, err := u.realEstates.Save(ctx, re); err != nil {
			return entities.Donating{}, err
		}
	}
	log.Printf("[donating][usecase] done donating_id=%s object=%s new_proprietor=%s", updated.DonatingID, d.ObjectOfDonating, d.Grantee)
	return updated, nil
}

func (u *DonatingUseCase) Cancel(ctx context.Context, actorID, donatingID string) (entities.Donating, error) {
	actor, d, unlock, err := u.openForTransition(ctx, actorID, donatingID)
	if err != nil {
		return entities.Donating{}, err
	}
	defer unlock()

	if d.Status != entities.DonatingStatusInProgress {
		return entities.Donating{}, ErrDonatingClosed
	}
	if actor.AccountID != d.Donor && actor.AccountID != d.Grantee {
		return entities.Donating{}, ErrNotDonationParticipant
	}

	d.Status = entities.DonatingStatusCancelled
	d.UpdateTime = time.Now().UTC()
	updated, err := u.donatings.Update(ctx, d, entities.DonatingStatusInProgress)
	if err != nil {
		return entities.Donating{}, err
	}
	if updated.DonatingID == "" {
		return entities.Donating{}, ErrStaleTransition
	}

	re, err := u.realEstates.GetByID(ctx, d.ObjectOfDonating)
	if err != nil {
		return entities.Donating{}, err
	}
	if re.RealEstateID != "" && re.Encumbrance {
		re.Encumbrance = false
		if _, err := u.realEstates.Save(ctx, re); err != nil {
			return entities.Donating{}, err
		}
	}
	log.Printf("[donating][usecase] cancelled donating_id=%s by=%s", updated.DonatingID, actor.AccountID)
	return updated, nil
}

func (u *DonatingUseCase) List(ctx context.Context, actorID string, scope QueryScope) ([]entities.Donating, error) {
	actorID = strings.TrimSpace(actorID)
	var (
		list []entities.Donating
		err  error
	)
	switch scope {
	case ScopeAll:
		list, err = u.donatings.List(ctx)
	case ScopeMine:
		if actorID == "" {
			return nil, ErrInvalidActorID
		}
		list, err = u.donatings.ListByDonor(ctx, actorID)
	default:
		return nil, ErrInvalidScope
	}
	if err != nil {
		return nil, err
	}
	sortDonatings(list)
	return list, nil
}

func (u *DonatingUseCase) ListByGrantee(ctx context.Context, actorID string) ([]entities.Donating, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrInvalidActorID
	}
	list, err := u.donatings.ListByGrantee(ctx, actorID)
	if err != nil {
		return nil, err
	}
	sortDonatings(list)
	return list, nil
}

func (u *DonatingUseCase) openForTransition(ctx context.Context, actorID, donatingID string) (entities.Account, entities.Donating, func(), error) {
	actorID = strings.TrimSpace(actorID)
	donatingID = strings.TrimSpace(donatingID)
	if actorID == "" {
		return entities.Account{}, entities.Donating{}, nil, ErrInvalidActorID
	}
	if donatingID == "" {
		return entities.Account{}, entities.Donating{}, nil, ErrInvalidDonatingID
	}

	actor, err := u.mutatingActor(ctx, actorID)
	if err != nil {
		return entities.Account{}, entities.Donating{}, nil, err
	}

	d, err := u.donatings.GetByID(ctx, donatingID)
	if err != nil {
		return entities.Account{}, entities.Donating{}, nil, err
	}
	if d.DonatingID == "" {
		return entities.Account{}, entities.Donating{}, nil, ErrDonatingNotFound
	}

	unlock := u.locker.Lock(d.ObjectOfDonating)
	d, err = u.donatings.GetByID(ctx, donatingID)
	if err != nil {
		unlock()
		return entities.Account{}, entities.Donating{}, nil, err
	}
	if d.DonatingID == "" {
		unlock()
		return entities.Account{}, entities.Donating{}, nil, ErrDonatingNotFound
	}
	return actor, d, unlock, nil
}

func (u *DonatingUseCase) mutatingActor(ctx context.Context, actorID string) (entities.Account, error) {
	actor, err := u.accounts.GetByID(ctx, actorID)
	if err != nil {
		return entities.Account{}, err
	}
	if actor.AccountID == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	if actor.IsAdmin() {
		return entities.Account{}, ErrAdminReadOnly
	}
	return actor, nil
}

func sortDonatings(list []entities.Donating) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreateTime.After(list[j].CreateTime)
	})
}
