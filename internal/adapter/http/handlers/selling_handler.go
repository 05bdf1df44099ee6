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

// SellingHandler handles HTTP requests for the sale lifecycle.
type SellingHandler struct {
	usecase  usecase.ISellingUseCase
	accounts usecase.IAccountUseCase
}

func NewSellingHandler(uc usecase.ISellingUseCase, accounts usecase.IAccountUseCase) *SellingHandler {
	return &SellingHandler{usecase: uc, accounts: accounts}
}

// CreateSelling godoc
// @Summary      Put a parcel up for sale
// @Description  Opens a sale for a parcel owned by the acting account and places the encumbrance lock on it.
// @Tags         sellings
// @Accept       json
// @Produce      json
// @Param        X-Account-Id  header    string                        true  "Acting account"
// @Param        payload       body      request.CreateSellingRequest  true  "Sale terms"
// @Success      201           {object}  response.SellingResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      403           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Router       /v1/sellings [post]
func (h *SellingHandler) CreateSelling(c *gin.Context) {
	var payload request.CreateSellingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	actor := actorID(c)
	selling, err := h.usecase.CreateSelling(c.Request.Context(), actor, payload.RealEstateID, payload.Price, payload.SalePeriod)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSelling(selling, h.actorAccount(c.Request.Context(), actor)))
}

// Buy godoc
// @Summary      Buy an open sale
// @Description  Commits the acting account as buyer and moves the sale to inProgress. The price is withheld from the buyer's balance.
// @Tags         sellings
// @Produce      json
// @Param        X-Account-Id  header    string  true  "Acting account"
// @Param        selling_id    path      string  true  "Selling ID"
// @Success      200           {object}  response.SellingResponse
// @Failure      403           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Failure      422           {object}  pkg.HTTPError
// @Router       /v1/sellings/{selling_id}/buy [post]
func (h *SellingHandler) Buy(c *gin.Context) {
	actor := actorID(c)
	selling, err := h.usecase.Buy(c.Request.Context(), actor, c.Param("selling_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSelling(selling, h.actorAccount(c.Request.Context(), actor)))
}

// UpdateSelling godoc
// @Summary      Close a sale
// @Description  Moves an open sale to done (seller confirms receipt) or cancelled (either party backs out).
// @Tags         sellings
// @Accept       json
// @Produce      json
// @Param        X-Account-Id  header    string                        true  "Acting account"
// @Param        selling_id    path      string                        true  "Selling ID"
// @Param        payload       body      request.UpdateSellingRequest  true  "Target status"
// @Success      200           {object}  response.SellingResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      403           {object}  pkg.HTTPError
// @Failure      422           {object}  pkg.HTTPError
// @Router       /v1/sellings/{selling_id} [patch]
func (h *SellingHandler) UpdateSelling(c *gin.Context) {
	var payload request.UpdateSellingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	var updater func(ctx context.Context, actorID, sellingID string) (entities.Selling, error)
	switch status {
	case request.StatusActionDone:
		updater = h.usecase.ConfirmDone
	case request.StatusActionCancelled:
		updater = h.usecase.Cancel
	}

	actor := actorID(c)
	selling, err := updater(c.Request.Context(), actor, c.Param("selling_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSelling(selling, h.actorAccount(c.Request.Context(), actor)))
}

// ListSellings godoc
// @Summary      List sales
// @Description  Lists sales newest first. scope=all returns every record, scope=mine only those the acting account opened as seller.
// @Tags         sellings
// @Produce      json
// @Param        X-Account-Id  header    string  true   "Acting account"
// @Param        scope         query     string  false  "all or mine"  default(all)
// @Success      200           {array}   response.SellingResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /v1/sellings [get]
func (h *SellingHandler) ListSellings(c *gin.Context) {
	actor := actorID(c)
	scope := usecase.QueryScope(strings.ToLower(strings.TrimSpace(c.DefaultQuery("scope", string(usecase.ScopeAll)))))

	sellings, err := h.usecase.List(c.Request.Context(), actor, scope)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSellingList(sellings, h.actorAccount(c.Request.Context(), actor)))
}

// ListBought godoc
// @Summary      List sales the acting account joined as buyer
// @Tags         sellings
// @Produce      json
// @Param        X-Account-Id  header    string  true  "Acting account"
// @Success      200           {array}   response.SellingResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /v1/sellings/bought [get]
func (h *SellingHandler) ListBought(c *gin.Context) {
	actor := actorID(c)
	sellings, err := h.usecase.ListByBuyer(c.Request.Context(), actor)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSellingList(sellings, h.actorAccount(c.Request.Context(), actor)))
}

// actorAccount resolves the acting account for response action hints. A
// missing or unknown account yields the zero value, which carries no hints.
func (h *SellingHandler) actorAccount(ctx context.Context, id string) entities.Account {
	if id == "" {
		return entities.Account{}
	}
	account, err := h.accounts.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}
	}
	return account
}
