package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "hopebridge/docs" // This will be auto-generated
	"hopebridge/internal/adapter/http/handlers"
	repository2 "hopebridge/internal/adapter/persistence/repository"
	"hopebridge/internal/infrastructure/database"
	"hopebridge/internal/infrastructure/payments"
	"hopebridge/internal/infrastructure/storage"
	"hopebridge/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	ddb := database.ConnectDynamoDB()

	donationRepo := repository2.NewDonationDynamoRepository(ddb)
	sectionRepo := repository2.NewSectionDynamoRepository(ddb)

	gateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Fatalf("Stripe gateway not configured: %v", err)
	}

	donationUseCase := usecase.NewDonationUseCase(donationRepo, gateway)
	sectionUseCase := usecase.NewSectionUseCase(sectionRepo)

	s3Client, bucket, region := storage.ConnectS3()
	uploadStore := storage.NewS3UploadStore(s3Client, bucket, region)

	donationHandler := handlers.NewDonationHandler(donationUseCase, os.Getenv("STRIPE_WEBHOOK_SECRET"))
	sectionHandler := handlers.NewSectionHandler(sectionUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadStore)

	api := router.Group("/api")
	addPingRoutes(api)
	addDonationRoutes(api, donationHandler, sectionHandler)
	addAdminRoutes(api, os.Getenv("ADMIN_API_TOKEN"), sectionHandler, uploadHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
