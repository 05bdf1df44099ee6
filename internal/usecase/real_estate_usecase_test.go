package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	mock_interfaces "github.com/rahulchavan424/real-estate-hyperledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newRealEstateUseCaseForTest(t *testing.T) (*RealEstateUseCase, *mock_interfaces.MockIRealEstateRepository, *mock_interfaces.MockIAccountRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	realEstates := mock_interfaces.NewMockIRealEstateRepository(ctrl)
	accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
	return NewRealEstateUseCase(realEstates, accounts), realEstates, accounts
}

func TestRealEstateUseCase_CreateRealEstate(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc, _, _ := newRealEstateUseCaseForTest(t)
		_, err := uc.CreateRealEstate(context.Background(), "", 100, 80)
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("invalid areas", func(t *testing.T) {
		uc, _, _ := newRealEstateUseCaseForTest(t)
		for _, dims := range [][2]float64{{0, 80}, {100, 0}, {-1, 80}} {
			_, err := uc.CreateRealEstate(context.Background(), "u1", dims[0], dims[1])
			if !errors.Is(err, ErrInvalidArea) {
				t.Fatalf("dims %v: expected ErrInvalidArea, got %v", dims, err)
			}
		}
	})

	t.Run("admin is read-only", func(t *testing.T) {
		uc, _, accounts := newRealEstateUseCaseForTest(t)
		accounts.EXPECT().GetByID(gomock.Any(), "adm").Return(entities.Account{AccountID: "adm", Role: entities.AccountRoleAdmin}, nil)

		_, err := uc.CreateRealEstate(context.Background(), "adm", 100, 80)
		if !errors.Is(err, ErrAdminReadOnly) {
			t.Fatalf("expected ErrAdminReadOnly, got %v", err)
		}
	})

	t.Run("success registers an unencumbered parcel", func(t *testing.T) {
		uc, realEstates, accounts := newRealEstateUseCaseForTest(t)
		accounts.EXPECT().GetByID(gomock.Any(), "u1").Return(userAccount("u1", 100), nil)
		realEstates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RealEstate{})).DoAndReturn(
			func(_ context.Context, re entities.RealEstate) (entities.RealEstate, error) {
				if re.RealEstateID == "" || re.Proprietor != "u1" {
					t.Fatalf("unexpected parcel: %+v", re)
				}
				if re.Encumbrance {
					t.Fatalf("new parcel must start unencumbered")
				}
				if re.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return re, nil
			},
		)

		re, err := uc.CreateRealEstate(context.Background(), " u1 ", 120.5, 90)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if re.TotalArea != 120.5 || re.LivingSpace != 90 {
			t.Fatalf("unexpected dimensions: %+v", re)
		}
	})
}

func TestRealEstateUseCase_GetByID(t *testing.T) {
	t.Run("unknown parcel", func(t *testing.T) {
		uc, realEstates, _ := newRealEstateUseCaseForTest(t)
		realEstates.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.RealEstate{}, nil)

		_, err := uc.GetByID(context.Background(), "nope")
		if !errors.Is(err, ErrRealEstateNotFound) {
			t.Fatalf("expected ErrRealEstateNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, realEstates, _ := newRealEstateUseCaseForTest(t)
		realEstates.EXPECT().GetByID(gomock.Any(), "re-1").Return(entities.RealEstate{RealEstateID: "re-1", Proprietor: "u1"}, nil)

		re, err := uc.GetByID(context.Background(), " re-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if re.RealEstateID != "re-1" {
			t.Fatalf("unexpected parcel: %+v", re)
		}
	})
}

func TestRealEstateUseCase_List(t *testing.T) {
	t.Run("invalid scope", func(t *testing.T) {
		uc, _, _ := newRealEstateUseCaseForTest(t)
		_, err := uc.List(context.Background(), "u1", "ours")
		if !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("expected ErrInvalidScope, got %v", err)
		}
	})

	t.Run("all is sorted newest first", func(t *testing.T) {
		uc, realEstates, _ := newRealEstateUseCaseForTest(t)
		now := time.Now().UTC()
		realEstates.EXPECT().List(gomock.Any()).Return([]entities.RealEstate{
			{RealEstateID: "old", CreatedAt: now.Add(-time.Hour)},
			{RealEstateID: "new", CreatedAt: now},
		}, nil)

		list, err := uc.List(context.Background(), "", ScopeAll)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 || list[0].RealEstateID != "new" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})

	t.Run("mine filters by proprietor", func(t *testing.T) {
		uc, realEstates, _ := newRealEstateUseCaseForTest(t)
		realEstates.EXPECT().ListByProprietor(gomock.Any(), "u1").Return([]entities.RealEstate{{RealEstateID: "re-1", Proprietor: "u1"}}, nil)

		list, err := uc.List(context.Background(), "u1", ScopeMine)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].Proprietor != "u1" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})
}
