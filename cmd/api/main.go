package main

import (
	_ "hopebridge/docs"
	"hopebridge/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           HopeBridge API
// @version         1.0
// @description     Donation and site content API for the HopeBridge nonprofit, backed by DynamoDB and Stripe.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin API token.

func main() {
	routes.Run()
}
