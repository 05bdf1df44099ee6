package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/handlers"
)

const (
	PathRealEstates = "/realestates"
	PathAccounts    = "/accounts"
)

func addRegistryRoutes(rg *gin.RouterGroup, realEstateHandler *handlers.RealEstateHandler, accountHandler *handlers.AccountHandler) {
	realEstates := rg.Group(PathRealEstates)
	{
		realEstates.POST("", realEstateHandler.CreateRealEstate)
		realEstates.GET("", realEstateHandler.ListRealEstates)
		realEstates.GET("/:real_estate_id", realEstateHandler.GetRealEstate)
	}

	accounts := rg.Group(PathAccounts)
	{
		accounts.GET("", accountHandler.ListAccounts)
		accounts.GET("/:account_id", accountHandler.GetAccount)
	}
}
