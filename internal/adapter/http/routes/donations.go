package routes

import (
	"hopebridge/internal/adapter/http/handlers"
	"hopebridge/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPublicSections = "/public/sections"
	PathStripe         = "/stripe"
	PathDonations      = "/donations"
	PathAdmin          = "/admin"
)

func addDonationRoutes(rg *gin.RouterGroup, donationHandler *handlers.DonationHandler, sectionHandler *handlers.SectionHandler) {
	public := rg.Group(PathPublicSections)
	{
		// Consumed by public pages and the purpose catalog builder.
		public.GET("/:slug", sectionHandler.GetPublicSection)
	}

	stripe := rg.Group(PathStripe)
	{
		stripe.POST("/create-intent", donationHandler.CreateIntent)
		stripe.POST("/webhook", donationHandler.HandleProviderWebhook)
	}

	donations := rg.Group(PathDonations)
	{
		// Status poll target for created intents.
		donations.GET("/by-id/:donation_id", donationHandler.GetDonationByID)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminToken string, sectionHandler *handlers.SectionHandler, uploadHandler *handlers.UploadHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireBearerToken(adminToken))
	{
		admin.GET("/sections/:slug", sectionHandler.GetAdminSection)
		admin.PUT("/sections/:slug", sectionHandler.SaveSection)
		admin.POST("/uploads", uploadHandler.Upload)
	}
}
