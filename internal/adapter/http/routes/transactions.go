package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/handlers"
)

const (
	PathSellings  = "/sellings"
	PathDonatings = "/donatings"
)

func addTransactionRoutes(rg *gin.RouterGroup, sellingHandler *handlers.SellingHandler, donatingHandler *handlers.DonatingHandler) {
	sellings := rg.Group(PathSellings)
	{
		sellings.POST("", sellingHandler.CreateSelling)
		sellings.GET("", sellingHandler.ListSellings)
		sellings.GET("/bought", sellingHandler.ListBought)
		sellings.POST("/:selling_id/buy", sellingHandler.Buy)
		sellings.PATCH("/:selling_id", sellingHandler.UpdateSelling)
	}

	donatings := rg.Group(PathDonatings)
	{
		donatings.POST("", donatingHandler.CreateDonating)
		donatings.GET("", donatingHandler.ListDonatings)
		donatings.GET("/received", donatingHandler.ListReceived)
		donatings.PATCH("/:donating_id", donatingHandler.UpdateDonating)
	}
}
