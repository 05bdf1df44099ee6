package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/dto/response"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase"
)

// AccountHandler handles HTTP requests for the account registry.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// ListAccounts godoc
// @Summary      List registered accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}   response.AccountResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /v1/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccountList(accounts))
}

// GetAccount godoc
// @Summary      Fetch an account by ID
// @Tags         accounts
// @Produce      json
// @Param        account_id  path      string  true  "Account ID"
// @Success      200         {object}  response.AccountResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/accounts/{account_id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.usecase.GetByID(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccount(account))
}
