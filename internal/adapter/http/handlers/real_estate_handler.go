package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/dto/request"
	response "github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/dto/response"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase"
)

// RealEstateHandler handles HTTP requests for the parcel registry.
type RealEstateHandler struct {
	usecase usecase.IRealEstateUseCase
}

func NewRealEstateHandler(uc usecase.IRealEstateUseCase) *RealEstateHandler {
	return &RealEstateHandler{usecase: uc}
}

// CreateRealEstate godoc
// @Summary      Register a parcel
// @Description  Registers a new parcel owned by the acting account. An optional proprietor field must name the acting account. Administrators cannot register parcels.
// @Tags         realestates
// @Accept       json
// @Produce      json
// @Param        X-Account-Id  header    string                           true  "Acting account"
// @Param        payload       body      request.CreateRealEstateRequest  true  "Parcel dimensions"
// @Success      201           {object}  response.RealEstateResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      403           {object}  pkg.HTTPError
// @Router       /v1/realestates [post]
func (h *RealEstateHandler) CreateRealEstate(c *gin.Context) {
	var payload request.CreateRealEstateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if p := strings.TrimSpace(payload.Proprietor); p != "" && p != actorID(c) {
		c.JSON(errProprietorMismatch.HTTPStatus, errProprietorMismatch.ToHTTPError())
		return
	}

	realEstate, err := h.usecase.CreateRealEstate(c.Request.Context(), actorID(c), payload.TotalArea, payload.LivingSpace)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRealEstate(realEstate))
}

// GetRealEstate godoc
// @Summary      Fetch a parcel by ID
// @Tags         realestates
// @Produce      json
// @Param        real_estate_id  path      string  true  "Real estate ID"
// @Success      200             {object}  response.RealEstateResponse
// @Failure      404             {object}  pkg.HTTPError
// @Router       /v1/realestates/{real_estate_id} [get]
func (h *RealEstateHandler) GetRealEstate(c *gin.Context) {
	realEstate, err := h.usecase.GetByID(c.Request.Context(), c.Param("real_estate_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRealEstate(realEstate))
}

// ListRealEstates godoc
// @Summary      List parcels
// @Description  Lists parcels newest first. scope=all returns every parcel, scope=mine only those the acting account owns.
// @Tags         realestates
// @Produce      json
// @Param        X-Account-Id  header    string  true   "Acting account"
// @Param        scope         query     string  false  "all or mine"  default(all)
// @Success      200           {array}   response.RealEstateResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /v1/realestates [get]
func (h *RealEstateHandler) ListRealEstates(c *gin.Context) {
	scope := usecase.QueryScope(strings.ToLower(strings.TrimSpace(c.DefaultQuery("scope", string(usecase.ScopeAll)))))

	realEstates, err := h.usecase.List(c.Request.Context(), actorID(c), scope)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRealEstateList(realEstates))
}
