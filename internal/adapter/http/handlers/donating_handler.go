package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/dto/request"
	response "github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/dto/response"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase"
)

// DonatingHandler handles HTTP requests for the donation lifecycle.
type DonatingHandler struct {
	usecase  usecase.IDonatingUseCase
	accounts usecase.IAccountUseCase
}

func NewDonatingHandler(uc usecase.IDonatingUseCase, accounts usecase.IAccountUseCase) *DonatingHandler {
	return &DonatingHandler{usecase: uc, accounts: accounts}
}

// CreateDonating godoc
// @Summary      Offer a parcel as a donation
// @Description  Opens a donation of a parcel owned by the acting account to a named grantee and places the encumbrance lock on it.
// @Tags         donatings
// @Accept       json
// @Produce      json
// @Param        X-Account-Id  header    string                         true  "Acting account"
// @Param        payload       body      request.CreateDonatingRequest  true  "Donation terms"
// @Success      201           {object}  response.DonatingResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      403           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Router       /v1/donatings [post]
func (h *DonatingHandler) CreateDonating(c *gin.Context) {
	var payload request.CreateDonatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	actor := actorID(c)
	donating, err := h.usecase.CreateDonating(c.Request.Context(), actor, payload.RealEstateID, payload.Grantee)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDonating(donating, h.actorAccount(c.Request.Context(), actor)))
}

// UpdateDonating godoc
// @Summary      Close a donation
// @Description  Moves an open donation to done (grantee accepts, ownership transfers) or cancelled (either party backs out).
// @Tags         donatings
// @Accept       json
// @Produce      json
// @Param        X-Account-Id  header    string                         true  "Acting account"
// @Param        donating_id   path      string                         true  "Donating ID"
// @Param        payload       body      request.UpdateDonatingRequest  true  "Target status"
// @Success      200           {object}  response.DonatingResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      403           {object}  pkg.HTTPError
// @Failure      422           {object}  pkg.HTTPError
// @Router       /v1/donatings/{donating_id} [patch]
func (h *DonatingHandler) UpdateDonating(c *gin.Context) {
	var payload request.UpdateDonatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	var updater func(ctx context.Context, actorID, donatingID string) (entities.Donating, error)
	switch status {
	case request.StatusActionDone:
		updater = h.usecase.ConfirmDone
	case request.StatusActionCancelled:
		updater = h.usecase.Cancel
	}

	actor := actorID(c)
	donating, err := updater(c.Request.Context(), actor, c.Param("donating_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonating(donating, h.actorAccount(c.Request.Context(), actor)))
}

// ListDonatings godoc
// @Summary      List donations
// @Description  Lists donations newest first. scope=all returns every record, scope=mine only those the acting account opened as donor.
// @Tags         donatings
// @Produce      json
// @Param        X-Account-Id  header    string  true   "Acting account"
// @Param        scope         query     string  false  "all or mine"  default(all)
// @Success      200           {array}   response.DonatingResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /v1/donatings [get]
func (h *DonatingHandler) ListDonatings(c *gin.Context) {
	actor := actorID(c)
	scope := usecase.QueryScope(strings.ToLower(strings.TrimSpace(c.DefaultQuery("scope", string(usecase.ScopeAll)))))

	donatings, err := h.usecase.List(c.Request.Context(), actor, scope)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonatingList(donatings, h.actorAccount(c.Request.Context(), actor)))
}

// ListReceived godoc
// @Summary      List donations naming the acting account as grantee
// @Tags         donatings
// @Produce      json
// @Param        X-Account-Id  header    string  true  "Acting account"
// @Success      200           {array}   response.DonatingResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /v1/donatings/received [get]
func (h *DonatingHandler) ListReceived(c *gin.Context) {
	actor := actorID(c)
	donatings, err := h.usecase.ListByGrantee(c.Request.Context(), actor)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonatingList(donatings, h.actorAccount(c.Request.Context(), actor)))
}

func (h *DonatingHandler) actorAccount(ctx context.Context, id string) entities.Account {
	if id == "" {
		return entities.Account{}
	}
	account, err := h.accounts.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}
	}
	return account
}
