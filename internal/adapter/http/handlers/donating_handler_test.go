package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/handlers/mocks"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDonatingRouter(t *testing.T) (*gin.Engine, *mocks.MockIDonatingUseCase, *mocks.MockIAccountUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIDonatingUseCase(ctrl)
	accounts := mocks.NewMockIAccountUseCase(ctrl)
	h := NewDonatingHandler(uc, accounts)

	r := gin.New()
	r.POST("/v1/donatings", h.CreateDonating)
	r.GET("/v1/donatings", h.ListDonatings)
	r.GET("/v1/donatings/received", h.ListReceived)
	r.PATCH("/v1/donatings/:donating_id", h.UpdateDonating)
	return r, uc, accounts
}

func TestDonatingHandler_CreateDonating(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newDonatingRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/donatings", "u1", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("self grantee maps to 400", func(t *testing.T) {
		r, uc, _ := newDonatingRouter(t)
		uc.EXPECT().CreateDonating(gomock.Any(), "u1", "re-1", "u1").Return(entities.Donating{}, usecase.ErrSelfGrantee)

		w := doJSON(r, http.MethodPost, "/v1/donatings", "u1", `{"real_estate_id":"re-1","grantee":"u1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with grantee hint suppressed for donor", func(t *testing.T) {
		r, uc, accounts := newDonatingRouter(t)
		uc.EXPECT().CreateDonating(gomock.Any(), "u1", "re-1", "u2").Return(entities.Donating{
			DonatingID: "d-1", ObjectOfDonating: "re-1", Donor: "u1", Grantee: "u2",
			Status: entities.DonatingStatusInProgress,
		}, nil)
		accounts.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.Account{AccountID: "u1", Role: entities.AccountRoleUser}, nil)

		w := doJSON(r, http.MethodPost, "/v1/donatings", "u1", `{"real_estate_id":"re-1","grantee":"u2"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			DonatingID string   `json:"donating_id"`
			Actions    []string `json:"actions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.DonatingID != "d-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if len(body.Actions) != 1 || body.Actions[0] != string(entities.ActionCancel) {
			t.Fatalf("donor should only see cancel, got %v", body.Actions)
		}
	})
}

func TestDonatingHandler_UpdateDonating(t *testing.T) {
	t.Run("unsupported status", func(t *testing.T) {
		r, _, _ := newDonatingRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/donatings/d-1", "u2", `{"status":"rejected"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("grantee confirms", func(t *testing.T) {
		r, uc, accounts := newDonatingRouter(t)
		uc.EXPECT().ConfirmDone(gomock.Any(), "u2", "d-1").Return(entities.Donating{
			DonatingID: "d-1", Donor: "u1", Grantee: "u2", Status: entities.DonatingStatusDone,
		}, nil)
		accounts.EXPECT().GetByID(gomock.Any(), "u2").Return(entities.Account{AccountID: "u2", Role: entities.AccountRoleUser}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/donatings/d-1", "u2", `{"status":"done"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("donor cannot confirm", func(t *testing.T) {
		r, uc, _ := newDonatingRouter(t)
		uc.EXPECT().ConfirmDone(gomock.Any(), "u1", "d-1").Return(entities.Donating{}, usecase.ErrNotGrantee)

		w := doJSON(r, http.MethodPatch, "/v1/donatings/d-1", "u1", `{"status":"done"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("closed donation maps to 422", func(t *testing.T) {
		r, uc, _ := newDonatingRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "u1", "d-1").Return(entities.Donating{}, usecase.ErrDonatingClosed)

		w := doJSON(r, http.MethodPatch, "/v1/donatings/d-1", "u1", `{"status":"cancelled"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestDonatingHandler_Lists(t *testing.T) {
	t.Run("scope mine", func(t *testing.T) {
		r, uc, accounts := newDonatingRouter(t)
		uc.EXPECT().List(gomock.Any(), "u1", usecase.ScopeMine).Return([]entities.Donating{{DonatingID: "d-1", Donor: "u1"}}, nil)
		accounts.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.Account{AccountID: "u1", Role: entities.AccountRoleUser}, nil)

		w := doJSON(r, http.MethodGet, "/v1/donatings?scope=mine", "u1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("received lists the grantee side", func(t *testing.T) {
		r, uc, accounts := newDonatingRouter(t)
		uc.EXPECT().ListByGrantee(gomock.Any(), "u2").Return([]entities.Donating{{DonatingID: "d-1", Grantee: "u2"}}, nil)
		accounts.EXPECT().GetByID(gomock.Any(), "u2").Return(entities.Account{AccountID: "u2", Role: entities.AccountRoleUser}, nil)

		w := doJSON(r, http.MethodGet, "/v1/donatings/received", "u2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing actor on received maps to 400", func(t *testing.T) {
		r, uc, _ := newDonatingRouter(t)
		uc.EXPECT().ListByGrantee(gomock.Any(), "").Return(nil, usecase.ErrInvalidActorID)

		w := doJSON(r, http.MethodGet, "/v1/donatings/received", "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
