// Package memory provides in-process repositories backing local runs
// (DATABASE_DRIVER=memory) and the engine's concurrency and invariant tests.
// All four ports share one store so a snapshot read never observes a
// partially applied transition.
package memory

import (
	"context"
	"sync"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase/interfaces"
)

type Store struct {
	mu          sync.RWMutex
	accounts    map[string]entities.Account
	realEstates map[string]entities.RealEstate
	sellings    map[string]entities.Selling
	donatings   map[string]entities.Donating
}

func NewStore() *Store {
	return &Store{
		accounts:    make(map[string]entities.Account),
		realEstates: make(map[string]entities.RealEstate),
		sellings:    make(map[string]entities.Selling),
		donatings:   make(map[string]entities.Donating),
	}
}

// Seed loads the platform's fixture registry: the virtual admin plus five
// owner accounts with their starting balances.
func (s *Store) Seed() {
	fixtures := []entities.Account{
		{AccountID: "5feceb66ffc8", UserName: "Admin", Role: entities.AccountRoleAdmin, Balance: 0},
		{AccountID: "6b86b273ff34", UserName: "Owner #1", Role: entities.AccountRoleUser, Balance: 5000000},
		{AccountID: "d4735e3a265e", UserName: "Owner #2", Role: entities.AccountRoleUser, Balance: 5000000},
		{AccountID: "4e07408562be", UserName: "Owner #3", Role: entities.AccountRoleUser, Balance: 5000000},
		{AccountID: "4b227777d4dd", UserName: "Owner #4", Role: entities.AccountRoleUser, Balance: 5000000},
		{AccountID: "ef2d127de37b", UserName: "Owner #5", Role: entities.AccountRoleUser, Balance: 5000000},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range fixtures {
		s.accounts[a.AccountID] = a
	}
}

// Accounts returns the account registry port.
func (s *Store) Accounts() interfaces.IAccountRepository { return &accountRepo{s} }

// RealEstates returns the asset ledger port.
func (s *Store) RealEstates() interfaces.IRealEstateRepository { return &realEstateRepo{s} }

// Sellings returns the sale proposal port.
func (s *Store) Sellings() interfaces.ISellingRepository { return &sellingRepo{s} }

// Donatings returns the donation proposal port.
func (s *Store) Donatings() interfaces.IDonatingRepository { return &donatingRepo{s} }

type accountRepo struct{ s *Store }

var _ interfaces.IAccountRepository = (*accountRepo)(nil)

func (r *accountRepo) Create(_ context.Context, a entities.Account) (entities.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.accounts[a.AccountID]; exists {
		return entities.Account{}, nil
	}
	r.s.accounts[a.AccountID] = a
	return a, nil
}

func (r *accountRepo) GetByID(_ context.Context, id string) (entities.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.accounts[id], nil
}

func (r *accountRepo) List(_ context.Context) ([]entities.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Account, 0, len(r.s.accounts))
	for _, a := range r.s.accounts {
		list = append(list, a)
	}
	return list, nil
}

func (r *accountRepo) UpdateBalance(_ context.Context, id string, delta float64) (entities.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, exists := r.s.accounts[id]
	if !exists {
		return entities.Account{}, nil
	}
	a.Balance += delta
	r.s.accounts[id] = a
	return a, nil
}

type realEstateRepo struct{ s *Store }

var _ interfaces.IRealEstateRepository = (*realEstateRepo)(nil)

func (r *realEstateRepo) Create(_ context.Context, re entities.RealEstate) (entities.RealEstate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.realEstates[re.RealEstateID]; exists {
		return entities.RealEstate{}, nil
	}
	r.s.realEstates[re.RealEstateID] = re
	return re, nil
}

func (r *realEstateRepo) GetByID(_ context.Context, id string) (entities.RealEstate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.realEstates[id], nil
}

func (r *realEstateRepo) List(_ context.Context) ([]entities.RealEstate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.RealEstate, 0, len(r.s.realEstates))
	for _, re := range r.s.realEstates {
		list = append(list, re)
	}
	return list, nil
}

func (r *realEstateRepo) ListByProprietor(_ context.Context, proprietor string) ([]entities.RealEstate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entities.RealEstate
	for _, re := range r.s.realEstates {
		if re.Proprietor == proprietor {
			list = append(list, re)
		}
	}
	return list, nil
}

func (r *realEstateRepo) Save(_ context.Context, re entities.RealEstate) (entities.RealEstate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.realEstates[re.RealEstateID] = re
	return re, nil
}

type sellingRepo struct{ s *Store }

var _ interfaces.ISellingRepository = (*sellingRepo)(nil)

func (r *sellingRepo) Create(_ context.Context, sel entities.Selling) (entities.Selling, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.sellings[sel.SellingID]; exists {
		return entities.Selling{}, nil
	}
	r.s.sellings[sel.SellingID] = sel
	return sel, nil
}

func (r *sellingRepo) GetByID(_ context.Context, id string) (entities.Selling, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sellings[id], nil
}

func (r *sellingRepo) List(_ context.Context) ([]entities.Selling, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Selling, 0, len(r.s.sellings))
	for _, sel := range r.s.sellings {
		list = append(list, sel)
	}
	return list, nil
}

func (r *sellingRepo) ListBySeller(_ context.Context, seller string) ([]entities.Selling, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entities.Selling
	for _, sel := range r.s.sellings {
		if sel.Seller == seller {
			list = append(list, sel)
		}
	}
	return list, nil
}

func (r *sellingRepo) ListByBuyer(_ context.Context, buyer string) ([]entities.Selling, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entities.Selling
	for _, sel := range r.s.sellings {
		if sel.Buyer == buyer {
			list = append(list, sel)
		}
	}
	return list, nil
}

func (r *sellingRepo) Update(_ context.Context, sel entities.Selling, expected entities.SellingStatus) (entities.Selling, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, exists := r.s.sellings[sel.SellingID]
	if !exists || current.Status != expected {
		return entities.Selling{}, nil
	}
	r.s.sellings[sel.SellingID] = sel
	return sel, nil
}

type donatingRepo struct{ s *Store }

var _ interfaces.IDonatingRepository = (*donatingRepo)(nil)

func (r *donatingRepo) Create(_ context.Context, d entities.Donating) (entities.Donating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.donatings[d.DonatingID]; exists {
		return entities.Donating{}, nil
	}
	r.s.donatings[d.DonatingID] = d
	return d, nil
}

func (r *donatingRepo) GetByID(_ context.Context, id string) (entities.Donating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.donatings[id], nil
}

func (r *donatingRepo) List(_ context.Context) ([]entities.Donating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Donating, 0, len(r.s.donatings))
	for _, d := range r.s.donatings {
		list = append(list, d)
	}
	return list, nil
}

func (r *donatingRepo) ListByDonor(_ context.Context, donor string) ([]entities.Donating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entities.Donating
	for _, d := range r.s.donatings {
		if d.Donor == donor {
			list = append(list, d)
		}
	}
	return list, nil
}

func (r *donatingRepo) ListByGrantee(_ context.Context, grantee string) ([]entities.Donating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entities.Donating
	for _, d := range r.s.donatings {
		if d.Grantee == grantee {
			list = append(list, d)
		}
	}
	return list, nil
}

func (r *donatingRepo) Update(_ context.Context, d entities.Donating, expected entities.DonatingStatus) (entities.Donating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, exists := r.s.donatings[d.DonatingID]
	if !exists || current.Status != expected {
		return entities.Donating{}, nil
	}
	r.s.donatings[d.DonatingID] = d
	return d, nil
}
