package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase"
)

const (
	owner1 = "6b86b273ff34"
	owner2 = "d4735e3a265e"
	owner3 = "4e07408562be"
	admin  = "5feceb66ffc8"
)

type engine struct {
	store       *Store
	realEstates *usecase.RealEstateUseCase
	sellings    *usecase.SellingUseCase
	donatings   *usecase.DonatingUseCase
	accounts    *usecase.AccountUseCase
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	store := NewStore()
	store.Seed()
	locker := usecase.NewAssetLocker()
	return &engine{
		store:       store,
		realEstates: usecase.NewRealEstateUseCase(store.RealEstates(), store.Accounts()),
		sellings:    usecase.NewSellingUseCase(store.Sellings(), store.RealEstates(), store.Accounts(), locker),
		donatings:   usecase.NewDonatingUseCase(store.Donatings(), store.RealEstates(), store.Accounts(), locker),
		accounts:    usecase.NewAccountUseCase(store.Accounts()),
	}
}

func (e *engine) mustRegisterParcel(t *testing.T, owner string) entities.RealEstate {
	t.Helper()
	re, err := e.realEstates.CreateRealEstate(context.Background(), owner, 100, 80)
	if err != nil {
		t.Fatalf("register parcel: %v", err)
	}
	return re
}

func (e *engine) balance(t *testing.T, id string) float64 {
	t.Helper()
	a, err := e.accounts.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("balance %s: %v", id, err)
	}
	return a.Balance
}

func (e *engine) parcel(t *testing.T, id string) entities.RealEstate {
	t.Helper()
	re, err := e.realEstates.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("parcel %s: %v", id, err)
	}
	return re
}

func TestSeededAccounts(t *testing.T) {
	e := newEngine(t)
	list, err := e.accounts.List(context.Background())
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(list) != 6 {
		t.Fatalf("expected 6 fixture accounts, got %d", len(list))
	}
	adm, err := e.accounts.GetByID(context.Background(), admin)
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if !adm.IsAdmin() {
		t.Fatalf("expected admin role, got %s", adm.Role)
	}
}

func TestFullSaleFlow(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	re := e.mustRegisterParcel(t, owner1)

	s, err := e.sellings.CreateSelling(ctx, owner1, re.RealEstateID, 250000, 30)
	if err != nil {
		t.Fatalf("create selling: %v", err)
	}
	if !e.parcel(t, re.RealEstateID).Encumbrance {
		t.Fatalf("expected parcel encumbered after listing")
	}

	if _, err := e.sellings.Buy(ctx, owner2, s.SellingID); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if got := e.balance(t, owner2); got != 5000000-250000 {
		t.Fatalf("expected escrow withheld, got %.0f", got)
	}

	done, err := e.sellings.ConfirmDone(ctx, owner1, s.SellingID)
	if err != nil {
		t.Fatalf("confirm done: %v", err)
	}
	if done.Status != entities.SellingStatusCompleted {
		t.Fatalf("expected Completed, got %s", done.Status)
	}

	p := e.parcel(t, re.RealEstateID)
	if p.Proprietor != owner2 {
		t.Fatalf("expected parcel handed to buyer, proprietor=%s", p.Proprietor)
	}
	if p.Encumbrance {
		t.Fatalf("expected encumbrance released on completion")
	}
	if got := e.balance(t, owner1); got != 5000000+250000 {
		t.Fatalf("expected seller credited, got %.0f", got)
	}

	// Parcel is free again: the new owner can immediately relist it.
	if _, err := e.sellings.CreateSelling(ctx, owner2, re.RealEstateID, 300000, 30); err != nil {
		t.Fatalf("relist after completion: %v", err)
	}
}

func TestCancelRefundsEscrow(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	re := e.mustRegisterParcel(t, owner1)

	s, err := e.sellings.CreateSelling(ctx, owner1, re.RealEstateID, 100000, 30)
	if err != nil {
		t.Fatalf("create selling: %v", err)
	}
	if _, err := e.sellings.Buy(ctx, owner2, s.SellingID); err != nil {
		t.Fatalf("buy: %v", err)
	}

	if _, err := e.sellings.Cancel(ctx, owner2, s.SellingID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := e.balance(t, owner2); got != 5000000 {
		t.Fatalf("expected full refund, got %.0f", got)
	}
	p := e.parcel(t, re.RealEstateID)
	if p.Proprietor != owner1 || p.Encumbrance {
		t.Fatalf("expected parcel back with seller and free, got %+v", p)
	}
}

func TestExpirySweep(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	re := e.mustRegisterParcel(t, owner1)

	s, err := e.sellings.CreateSelling(ctx, owner1, re.RealEstateID, 100000, 1)
	if err != nil {
		t.Fatalf("create selling: %v", err)
	}
	if _, err := e.sellings.Buy(ctx, owner2, s.SellingID); err != nil {
		t.Fatalf("buy: %v", err)
	}

	// Backdate the record past its deadline.
	stored, err := e.store.Sellings().GetByID(ctx, s.SellingID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	stored.CreateTime = time.Now().UTC().Add(-72 * time.Hour)
	if _, err := e.store.Sellings().Update(ctx, stored, entities.SellingStatusInProgress); err != nil {
		t.Fatalf("backdate: %v", err)
	}

	expired, err := e.sellings.ExpireOverdue(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if expired != 1 {
		t.Fatalf("expected 1 expired, got %d", expired)
	}

	final, err := e.store.Sellings().GetByID(ctx, s.SellingID)
	if err != nil {
		t.Fatalf("get final: %v", err)
	}
	if final.Status != entities.SellingStatusExpired {
		t.Fatalf("expected Expired, got %s", final.Status)
	}
	if got := e.balance(t, owner2); got != 5000000 {
		t.Fatalf("expected escrow refunded on expiry, got %.0f", got)
	}
	if e.parcel(t, re.RealEstateID).Encumbrance {
		t.Fatalf("expected encumbrance released on expiry")
	}
}

func TestExpiryPrecedesManualAction(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	re := e.mustRegisterParcel(t, owner1)

	s, err := e.sellings.CreateSelling(ctx, owner1, re.RealEstateID, 100000, 1)
	if err != nil {
		t.Fatalf("create selling: %v", err)
	}

	stored, err := e.store.Sellings().GetByID(ctx, s.SellingID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	stored.CreateTime = time.Now().UTC().Add(-48 * time.Hour)
	if _, err := e.store.Sellings().Update(ctx, stored, entities.SellingStatusOnSale); err != nil {
		t.Fatalf("backdate: %v", err)
	}

	// A buy attempt against the overdue record expires it instead.
	_, err = e.sellings.Buy(ctx, owner2, s.SellingID)
	if !errors.Is(err, entities.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}

	final, err := e.store.Sellings().GetByID(ctx, s.SellingID)
	if err != nil {
		t.Fatalf("get final: %v", err)
	}
	if final.Status != entities.SellingStatusExpired {
		t.Fatalf("expected Expired, got %s", final.Status)
	}
}

func TestFullDonationFlow(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	re := e.mustRegisterParcel(t, owner1)

	d, err := e.donatings.CreateDonating(ctx, owner1, re.RealEstateID, owner3)
	if err != nil {
		t.Fatalf("create donating: %v", err)
	}
	if !e.parcel(t, re.RealEstateID).Encumbrance {
		t.Fatalf("expected parcel encumbered by open donation")
	}

	// The encumbered parcel cannot be listed for sale meanwhile.
	if _, err := e.sellings.CreateSelling(ctx, owner1, re.RealEstateID, 100000, 30); !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("expected conflict on double transaction, got %v", err)
	}

	done, err := e.donatings.ConfirmDone(ctx, owner3, d.DonatingID)
	if err != nil {
		t.Fatalf("confirm done: %v", err)
	}
	if done.Status != entities.DonatingStatusDone {
		t.Fatalf("expected Done, got %s", done.Status)
	}

	p := e.parcel(t, re.RealEstateID)
	if p.Proprietor != owner3 || p.Encumbrance {
		t.Fatalf("expected parcel handed over and free, got %+v", p)
	}
	// Donations move no funds.
	if e.balance(t, owner1) != 5000000 || e.balance(t, owner3) != 5000000 {
		t.Fatalf("donation must not touch balances")
	}
}

func TestAdminIsReadOnlyEverywhere(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	re := e.mustRegisterParcel(t, owner1)
	s, err := e.sellings.CreateSelling(ctx, owner1, re.RealEstateID, 100000, 30)
	if err != nil {
		t.Fatalf("create selling: %v", err)
	}

	if _, err := e.realEstates.CreateRealEstate(ctx, admin, 100, 80); !errors.Is(err, entities.ErrForbidden) {
		t.Fatalf("expected forbidden on parcel registration, got %v", err)
	}
	if _, err := e.sellings.Buy(ctx, admin, s.SellingID); !errors.Is(err, entities.ErrForbidden) {
		t.Fatalf("expected forbidden on buy, got %v", err)
	}
	if _, err := e.sellings.Cancel(ctx, admin, s.SellingID); !errors.Is(err, entities.ErrForbidden) {
		t.Fatalf("expected forbidden on cancel, got %v", err)
	}
	if _, err := e.donatings.CreateDonating(ctx, admin, re.RealEstateID, owner2); !errors.Is(err, entities.ErrForbidden) {
		t.Fatalf("expected forbidden on donation, got %v", err)
	}

	// Reads stay open.
	if _, err := e.sellings.List(ctx, admin, usecase.ScopeAll); err != nil {
		t.Fatalf("admin list: %v", err)
	}
}

func TestConcurrentCancelHasOneWinner(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	re := e.mustRegisterParcel(t, owner1)

	s, err := e.sellings.CreateSelling(ctx, owner1, re.RealEstateID, 100000, 30)
	if err != nil {
		t.Fatalf("create selling: %v", err)
	}
	if _, err := e.sellings.Buy(ctx, owner2, s.SellingID); err != nil {
		t.Fatalf("buy: %v", err)
	}

	actors := []string{owner1, owner2}
	errs := make([]error, len(actors))
	var wg sync.WaitGroup
	wg.Add(len(actors))
	for i, actor := range actors {
		go func(i int, actor string) {
			defer wg.Done()
			_, errs[i] = e.sellings.Cancel(ctx, actor, s.SellingID)
		}(i, actor)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, entities.ErrInvalidState):
			losses++
		default:
			t.Fatalf("unexpected error class: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("expected exactly one winner, got wins=%d losses=%d", wins, losses)
	}

	// The single cancel refunded the buyer exactly once.
	if got := e.balance(t, owner2); got != 5000000 {
		t.Fatalf("expected single refund, got %.0f", got)
	}
	if e.parcel(t, re.RealEstateID).Encumbrance {
		t.Fatalf("expected encumbrance released")
	}
}

func TestEncumbranceInvariantAfterMixedOperations(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	reA := e.mustRegisterParcel(t, owner1)
	reB := e.mustRegisterParcel(t, owner2)

	sA, err := e.sellings.CreateSelling(ctx, owner1, reA.RealEstateID, 100000, 30)
	if err != nil {
		t.Fatalf("sell A: %v", err)
	}
	dB, err := e.donatings.CreateDonating(ctx, owner2, reB.RealEstateID, owner3)
	if err != nil {
		t.Fatalf("donate B: %v", err)
	}
	if _, err := e.sellings.Buy(ctx, owner3, sA.SellingID); err != nil {
		t.Fatalf("buy A: %v", err)
	}
	if _, err := e.sellings.Cancel(ctx, owner1, sA.SellingID); err != nil {
		t.Fatalf("cancel A: %v", err)
	}
	if _, err := e.donatings.ConfirmDone(ctx, owner3, dB.DonatingID); err != nil {
		t.Fatalf("done B: %v", err)
	}

	// Every parcel's flag must equal "has exactly one open transaction".
	open := map[string]int{}
	sellings, _ := e.store.Sellings().List(ctx)
	for _, s := range sellings {
		if !s.Status.Terminal() {
			open[s.ObjectOfSale]++
		}
	}
	donatings, _ := e.store.Donatings().List(ctx)
	for _, d := range donatings {
		if !d.Status.Terminal() {
			open[d.ObjectOfDonating]++
		}
	}
	parcels, _ := e.store.RealEstates().List(ctx)
	for _, p := range parcels {
		if n := open[p.RealEstateID]; n > 1 {
			t.Fatalf("parcel %s has %d open transactions", p.RealEstateID, n)
		} else if p.Encumbrance != (n == 1) {
			t.Fatalf("parcel %s: encumbrance=%v but open=%d", p.RealEstateID, p.Encumbrance, n)
		}
	}
}
