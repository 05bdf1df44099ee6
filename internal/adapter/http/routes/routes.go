package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rahulchavan424/real-estate-hyperledger/docs" // swagger docs registration
	"github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/http/handlers"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/persistence/memory"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/adapter/persistence/repository"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/infrastructure/database"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/infrastructure/sweep"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	accountRepo, realEstateRepo, sellingRepo, donatingRepo := buildRepositories()

	locker := usecase.NewAssetLocker()

	accountUseCase := usecase.NewAccountUseCase(accountRepo)
	realEstateUseCase := usecase.NewRealEstateUseCase(realEstateRepo, accountRepo)
	sellingUseCase := usecase.NewSellingUseCase(sellingRepo, realEstateRepo, accountRepo, locker)
	donatingUseCase := usecase.NewDonatingUseCase(donatingRepo, realEstateRepo, accountRepo, locker)

	sweep.Start(sellingUseCase)

	accountHandler := handlers.NewAccountHandler(accountUseCase)
	realEstateHandler := handlers.NewRealEstateHandler(realEstateUseCase)
	sellingHandler := handlers.NewSellingHandler(sellingUseCase, accountUseCase)
	donatingHandler := handlers.NewDonatingHandler(donatingUseCase, accountUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, realEstateHandler, accountHandler)
	addTransactionRoutes(v1, sellingHandler, donatingHandler)
}

// buildRepositories selects the persistence driver. DATABASE_DRIVER=memory
// runs against a seeded in-memory store, anything else against DynamoDB.
func buildRepositories() (
	interfaces.IAccountRepository,
	interfaces.IRealEstateRepository,
	interfaces.ISellingRepository,
	interfaces.IDonatingRepository,
) {
	if driver := getenvDefault("DATABASE_DRIVER", "dynamodb"); driver == "memory" {
		log.Printf("[routes][persistence] using in-memory store with fixture accounts")
		store := memory.NewStore()
		store.Seed()
		return store.Accounts(), store.RealEstates(), store.Sellings(), store.Donatings()
	}

	ddb := database.ConnectDynamoDB()
	return repository.NewAccountDynamoRepository(ddb),
		repository.NewRealEstateDynamoRepository(ddb),
		repository.NewSellingDynamoRepository(ddb),
		repository.NewDonatingDynamoRepository(ddb)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
