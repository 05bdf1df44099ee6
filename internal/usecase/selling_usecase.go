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
	ErrAccountNotFound      = fmt.Errorf("%w: account", entities.ErrNotFound)
	ErrSellingNotFound      = fmt.Errorf("%w: selling", entities.ErrNotFound)
	ErrAdminReadOnly        = fmt.Errorf("%w: admin accounts are read-only", entities.ErrForbidden)
	ErrNotProprietor        = fmt.Errorf("%w: actor does not own this real estate", entities.ErrForbidden)
	ErrBuyOwnSale           = fmt.Errorf("%w: seller cannot buy an own sale", entities.ErrForbidden)
	ErrNotSeller            = fmt.Errorf("%w: only the seller can confirm receipt", entities.ErrForbidden)
	ErrNotSaleParticipant   = fmt.Errorf("%w: actor is not a party to this selling", entities.ErrForbidden)
	ErrRealEstateEncumbered = fmt.Errorf("%w: real estate already tied to an outstanding transaction", entities.ErrConflict)
	ErrStaleTransition      = fmt.Errorf("%w: a concurrent transition committed first", entities.ErrConflict)
	ErrSellingClosed        = fmt.Errorf("%w: selling does not accept this action", entities.ErrInvalidState)
	ErrInvalidActorID       = fmt.Errorf("%w: actor account id required", entities.ErrValidation)
	ErrInvalidSellingID     = fmt.Errorf("%w: selling id required", entities.ErrValidation)
	ErrInvalidPrice         = fmt.Errorf("%w: price must be positive", entities.ErrValidation)
	ErrInvalidSalePeriod    = fmt.Errorf("%w: sale period must be positive", entities.ErrValidation)
	ErrInsufficientBalance  = fmt.Errorf("%w: balance below sale price", entities.ErrValidation)
	ErrInvalidScope         = fmt.Errorf("%w: scope must be all or mine", entities.ErrValidation)
)

// QueryScope selects the projection of a list query.

type QueryScope string

const (
	ScopeAll  QueryScope = "all"
	ScopeMine QueryScope = "mine"
)

// ISellingUseCase drives the sale state machine.
//
// Every mutating call threads the acting account explicitly; there is no
// ambient session state. Transitions on one parcel are serialised through
// the shared AssetLocker.

type ISellingUseCase interface {
	CreateSelling(ctx context.Context, actorID, realEstateID string, price float64, salePeriod int) (entities.Selling, error)
	Buy(ctx context.Context, actorID, sellingID string) (entities.Selling, error)
	ConfirmDone(ctx context.Context, actorID, sellingID string) (entities.Selling, error)
	Cancel(ctx context.Context, actorID, sellingID string) (entities.Selling, error)
	List(ctx context.Context, actorID string, scope QueryScope) ([]entities.Selling, error)
	ListByBuyer(ctx context.Context, actorID string) ([]entities.Selling, error)
	ExpireOverdue(ctx context.Context) (int, error)
}

type SellingUseCase struct {
	sellings    interfaces.ISellingRepository
	realEstates interfaces.IRealEstateRepository
	accounts    interfaces.IAccountRepository
	locker      *AssetLocker
}

var _ ISellingUseCase = (*SellingUseCase)(nil)

func NewSellingUseCase(
	sellings interfaces.ISellingRepository,
	realEstates interfaces.IRealEstateRepository,
	accounts interfaces.IAccountRepository,
	locker *AssetLocker,
) *SellingUseCase {
	return &SellingUseCase{sellings: sellings, realEstates: realEstates, accounts: accounts, locker: locker}
}

func (u *SellingUseCase) CreateSelling(ctx context.Context, actorID, realEstateID string, price float64, salePeriod int) (entities.Selling, error) {
	actorID = strings.TrimSpace(actorID)
	realEstateID = strings.TrimSpace(realEstateID)
	if actorID == "" {
		return entities.Selling{}, ErrInvalidActorID
	}
	if realEstateID == "" {
		return entities.Selling{}, fmt.Errorf("%w: real estate id required", entities.ErrValidation)
	}
	if price <= 0 {
		return entities.Selling{}, ErrInvalidPrice
	}
	if salePeriod <= 0 {
		return entities.Selling{}, ErrInvalidSalePeriod
	}

	actor, err := u.mutatingActor(ctx, actorID)
	if err != nil {
		return entities.Selling{}, err
	}

	unlock := u.locker.Lock(realEstateID)
	defer unlock()

	re, err := u.realEstates.GetByID(ctx, realEstateID)
	if err != nil {
		return entities.Selling{}, err
	}
	if re.RealEstateID == "" {
		return entities.Selling{}, ErrRealEstateNotFound
	}
	if re.Proprietor != actor.AccountID {
		return entities.Selling{}, ErrNotProprietor
	}
	if re.Encumbrance {
		return entities.Selling{}, ErrRealEstateEncumbered
	}

	now := time.Now().UTC()
	s := entities.Selling{
		SellingID:    uuid.NewString(),
		ObjectOfSale: re.RealEstateID,
		Seller:       actor.AccountID,
		Price:        price,
		SalePeriod:   salePeriod,
		Status:       entities.SellingStatusOnSale,
		CreateTime:   now,
		UpdateTime:   now,
	}
	created, err := u.sellings.Create(ctx, s)
	if err != nil {
		return entities.Selling{}, err
	}

	re.Encumbrance = true
	if _, err := u.realEstates.Save(ctx, re); err != nil {
		return entities.Selling{}, err
	}
	log.Printf("[selling][usecase] created selling_id=%s object=%s seller=%s price=%.2f period_days=%d", created.SellingID, created.ObjectOfSale, created.Seller, created.Price, created.SalePeriod)
	return created, nil
}

func (u *SellingUseCase) Buy(ctx context.Context, actorID, sellingID string) (entities.Selling, error) {
	actor, s, unlock, err := u.openForTransition(ctx, actorID, sellingID)
	if err != nil {
		return entities.Selling{}, err
	}
	defer unlock()

	if s.Status != entities.SellingStatusOnSale {
		return entities.Selling{}, ErrSellingClosed
	}
	if actor.AccountID == s.Seller {
		return entities.Selling{}, ErrBuyOwnSale
	}
	if actor.Balance < s.Price {
		return entities.Selling{}, ErrInsufficientBalance
	}

	s.Buyer = actor.AccountID
	s.Status = entities.SellingStatusInProgress
	s.UpdateTime = time.Now().UTC()
	updated, err := u.sellings.Update(ctx, s, entities.SellingStatusOnSale)
	if err != nil {
		return entities.Selling{}, err
	}
	if updated.SellingID == "" {
		return entities.Selling{}, ErrStaleTransition
	}

	// Escrow: the price leaves the buyer now and reaches the seller only
	// when the seller confirms receipt.
	if err := u.applyBalanceDelta(ctx, actor.AccountID, -s.Price); err != nil {
		return entities.Selling{}, err
	}
	log.Printf("[selling][usecase] bought selling_id=%s buyer=%s escrow=%.2f", updated.SellingID, actor.AccountID, s.Price)
	return updated, nil
}

func (u *SellingUseCase) ConfirmDone(ctx context.Context, actorID, sellingID string) (entities.Selling, error) {
	actor, s, unlock, err := u.openForTransition(ctx, actorID, sellingID)
	if err != nil {
		return entities.Selling{}, err
	}
	defer unlock()

	if s.Status != entities.SellingStatusInProgress {
		return entities.Selling{}, ErrSellingClosed
	}
	if actor.AccountID != s.Seller {
		return entities.Selling{}, ErrNotSeller
	}

	s.Status = entities.SellingStatusCompleted
	s.UpdateTime = time.Now().UTC()
	updated, err := u.sellings.Update(ctx, s, entities.SellingStatusInProgress)
	if err != nil {
		return entities.Selling{}, err
	}
	if updated.SellingID == "" {
		return entities.Selling{}, ErrStaleTransition
	}

	// Settle the escrowed funds and hand the parcel to the buyer.
	if err := u.applyBalanceDelta(ctx, s.Seller, s.Price); err != nil {
		return entities.Selling{}, err
	}
	re, err := u.realEstates.GetByID(ctx, s.ObjectOfSale)
	if err != nil {
		return entities.Selling{}, err
	}
	if re.RealEstateID != "" {
		re.Proprietor = s.Buyer
		re.Encumbrance = false
		if _, err := u.realEstates.Save(ctx, re); err != nil {
			return entities.Selling{}, err
		}
	}
	log.Printf("[selling][usecase] completed selling_id=%s object=%s new_proprietor=%s", updated.SellingID, s.ObjectOfSale, s.Buyer)
	return updated, nil
}

func (u *SellingUseCase) Cancel(ctx context.Context, actorID, sellingID string) (entities.Selling, error) {
	actor, s, unlock, err := u.openForTransition(ctx, actorID, sellingID)
	if err != nil {
		return entities.Selling{}, err
	}
	defer unlock()

	if s.Status.Terminal() {
		return entities.Selling{}, ErrSellingClosed
	}
	if actor.AccountID != s.Seller && actor.AccountID != s.Buyer {
		return entities.Selling{}, ErrNotSaleParticipant
	}

	updated, err := u.closeSelling(ctx, s, entities.SellingStatusCancelled)
	if err != nil {
		return entities.Selling{}, err
	}
	log.Printf("[selling][usecase] cancelled selling_id=%s by=%s", updated.SellingID, actor.AccountID)
	return updated, nil
}

func (u *SellingUseCase) List(ctx context.Context, actorID string, scope QueryScope) ([]entities.Selling, error) {
	actorID = strings.TrimSpace(actorID)
	var (
		list []entities.Selling
		err  error
	)
	switch scope {
	case ScopeAll:
		list, err = u.sellings.List(ctx)
	case ScopeMine:
		if actorID == "" {
			return nil, ErrInvalidActorID
		}
		list, err = u.sellings.ListBySeller(ctx, actorID)
	default:
		return nil, ErrInvalidScope
	}
	if err != nil {
		return nil, err
	}
	sortSellings(list)
	return list, nil
}

func (u *SellingUseCase) ListByBuyer(ctx context.Context, actorID string) ([]entities.Selling, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrInvalidActorID
	}
	list, err := u.sellings.ListByBuyer(ctx, actorID)
	if err != nil {
		return nil, err
	}
	sortSellings(list)
	return list, nil
}

// ExpireOverdue transitions every overdue OnSale/InProgress selling to
// Expired and releases its parcel. Per-record failures are logged and
// skipped; the sweep retries on its next run.
func (u *SellingUseCase) ExpireOverdue(ctx context.Context) (int, error) {
	list, err := u.sellings.List(ctx)
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	expired := 0
	for _, s := range list {
		if s.Status.Terminal() || !s.Overdue(now) {
			continue
		}
		if err := func() error {
			unlock := u.locker.Lock(s.ObjectOfSale)
			defer unlock()

			current, err := u.sellings.GetByID(ctx, s.SellingID)
			if err != nil {
				return err
			}
			if current.SellingID == "" || current.Status.Terminal() || !current.Overdue(now) {
				return nil
			}
			if _, err := u.closeSelling(ctx, current, entities.SellingStatusExpired); err != nil {
				return err
			}
			expired++
			return nil
		}(); err != nil {
			log.Printf("[selling][usecase] expire failed selling_id=%s err=%v", s.SellingID, err)
		}
	}
	return expired, nil
}

// openForTransition performs the shared entry of every mutating call against
// an existing selling: validate ids, load the actor, acquire the parcel lock,
// re-read the record under it, and apply lazy expiry when the deadline has
// strictly elapsed. On the lazy-expiry or error paths the lock is released
// before returning.
func (u *SellingUseCase) openForTransition(ctx context.Context, actorID, sellingID string) (entities.Account, entities.Selling, func(), error) {
	actorID = strings.TrimSpace(actorID)
	sellingID = strings.TrimSpace(sellingID)
	if actorID == "" {
		return entities.Account{}, entities.Selling{}, nil, ErrInvalidActorID
	}
	if sellingID == "" {
		return entities.Account{}, entities.Selling{}, nil, ErrInvalidSellingID
	}

	actor, err := u.mutatingActor(ctx, actorID)
	if err != nil {
		return entities.Account{}, entities.Selling{}, nil, err
	}

	s, err := u.sellings.GetByID(ctx, sellingID)
	if err != nil {
		return entities.Account{}, entities.Selling{}, nil, err
	}
	if s.SellingID == "" {
		return entities.Account{}, entities.Selling{}, nil, ErrSellingNotFound
	}

	unlock := u.locker.Lock(s.ObjectOfSale)
	s, err = u.sellings.GetByID(ctx, sellingID)
	if err != nil {
		unlock()
		return entities.Account{}, entities.Selling{}, nil, err
	}
	if s.SellingID == "" {
		unlock()
		return entities.Account{}, entities.Selling{}, nil, ErrSellingNotFound
	}

	// Once the deadline has strictly elapsed, expiry takes precedence over
	// any manual action.
	if !s.Status.Terminal() && s.Overdue(time.Now().UTC()) {
		if _, err := u.closeSelling(ctx, s, entities.SellingStatusExpired); err != nil {
			unlock()
			return entities.Account{}, entities.Selling{}, nil, err
		}
		unlock()
		return entities.Account{}, entities.Selling{}, nil, ErrSellingClosed
	}
	return actor, s, unlock, nil
}

// closeSelling moves an OnSale/InProgress selling to Cancelled or Expired,
// refunds the escrowed buyer when the sale was InProgress, and releases the
// parcel. Caller holds the parcel lock.
func (u *SellingUseCase) closeSelling(ctx context.Context, s entities.Selling, to entities.SellingStatus) (entities.Selling, error) {
	from := s.Status
	s.Status = to
	s.UpdateTime = time.Now().UTC()
	updated, err := u.sellings.Update(ctx, s, from)
	if err != nil {
		return entities.Selling{}, err
	}
	if updated.SellingID == "" {
		return entities.Selling{}, ErrStaleTransition
	}

	if from == entities.SellingStatusInProgress && s.Buyer != "" {
		if err := u.applyBalanceDelta(ctx, s.Buyer, s.Price); err != nil {
			return entities.Selling{}, err
		}
	}

	re, err := u.realEstates.GetByID(ctx, s.ObjectOfSale)
	if err != nil {
		return entities.Selling{}, err
	}
	if re.RealEstateID != "" && re.Encumbrance {
		re.Encumbrance = false
		if _, err := u.realEstates.Save(ctx, re); err != nil {
			return entities.Selling{}, err
		}
	}
	return updated, nil
}

// balanceWriteAttempts bounds retries of a balance write that keeps losing
// its conditional check to concurrent writers.
const balanceWriteAttempts = 3

// applyBalanceDelta moves funds on one account. The account repository pins
// the balance it read, so a concurrent writer surfaces as a zero-value
// account with no error; re-issuing the delta picks up the fresh balance.
// Exhausting the attempts reports the settlement as lost.
func (u *SellingUseCase) applyBalanceDelta(ctx context.Context, accountID string, delta float64) error {
	for attempt := 0; attempt < balanceWriteAttempts; attempt++ {
		acc, err := u.accounts.UpdateBalance(ctx, accountID, delta)
		if err != nil {
			return err
		}
		if acc.AccountID != "" {
			return nil
		}
		log.Printf("[selling][usecase] balance write lost a race account=%s attempt=%d", accountID, attempt+1)
	}
	return fmt.Errorf("balance settlement for account %s: %w", accountID, ErrStaleTransition)
}

// mutatingActor resolves the acting account and enforces the uniform
// capability rule: admins are read-only.
func (u *SellingUseCase) mutatingActor(ctx context.Context, actorID string) (entities.Account, error) {
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

func sortSellings(list []entities.Selling) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreateTime.After(list[j].CreateTime)
	})
}
