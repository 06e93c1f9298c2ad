package routes

import (
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/configs"
	"github.com/cataleon/cataleon/app/handlers"
	"github.com/cataleon/cataleon/app/handlers/admin"
	"github.com/cataleon/cataleon/app/middlewares"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/services"
	"github.com/cataleon/cataleon/app/utils/renderer"
	appsessions "github.com/cataleon/cataleon/app/utils/sessions"
	"github.com/cataleon/cataleon/app/ws"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, rdb *redis.Client, keys *configs.SessionKeys) *mux.Router {
	render := renderer.New()
	store := appsessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewVendorProfileRepository(db)
	productRepo := repositories.NewProductRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	rewardRepo := repositories.NewRewardRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	contentRepo := repositories.NewContentRepository(db)

	rateService := services.NewRateService(profileRepo, productRepo)
	bulkService := services.NewBulkService(productRepo)
	shareService := services.NewShareLinkService(configs.LoadENV.JWTSecret)
	exchangeClient := services.NewExchangeRateClient(configs.LoadENV.ExchangeAPIBaseURL, rdb)
	mailer := services.NewMailer(services.MailConfig{
		Host:     configs.LoadENV.EmailHost,
		Port:     configs.LoadENV.EmailPort,
		Username: configs.LoadENV.EmailUsername,
		Password: configs.LoadENV.EmailPassword,
		From:     configs.LoadENV.EmailFrom,
	})
	hub := ws.NewHub()

	authHandler := handlers.NewAuthHandler(userRepo, profileRepo, store, render)
	profileHandler := handlers.NewProfileHandler(profileRepo, userRepo, render)
	productHandler := handlers.NewProductHandler(productRepo, profileRepo, render)
	rateHandler := handlers.NewRateHandler(rateService, render)
	bulkHandler := handlers.NewBulkHandler(bulkService, render)
	shareHandler := handlers.NewShareHandler(shareService, productRepo, profileRepo, configs.LoadENV.PublicBaseURL, render)
	inquiryHandler := handlers.NewInquiryHandler(inquiryRepo, profileRepo, shareService, mailer, hub, render)
	rewardHandler := handlers.NewRewardHandler(rewardRepo, render)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceRepo, productRepo, profileRepo, render)
	exportHandler := handlers.NewExportHandler(productRepo, profileRepo, exchangeClient, render)
	exchangeHandler := handlers.NewExchangeHandler(exchangeClient, render)
	contentHandler := handlers.NewContentHandler(contentRepo, render)
	contentAdmin := admin.NewContentAdminHandler(contentRepo, render)

	router := mux.NewRouter()

	// Public surface: registration, login, shared catalogs and site content.
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/exchange-rate", exchangeHandler.GetRate).Methods("GET")
	router.HandleFunc("/api/content/posts", contentHandler.ListPosts).Methods("GET")
	router.HandleFunc("/api/content/posts/{slug}", contentHandler.GetPost).Methods("GET")
	router.HandleFunc("/api/content/press", contentHandler.ListPress).Methods("GET")
	router.HandleFunc("/api/content/brand-logos", contentHandler.ListBrandLogos).Methods("GET")
	router.HandleFunc("/share/{token}", shareHandler.ViewShared).Methods("GET")

	inquiryLimiter := middlewares.EmailRateLimitMiddleware(10, render)
	router.Handle("/share/{token}/inquiries",
		inquiryLimiter(http.HandlerFunc(inquiryHandler.Create))).Methods("POST")

	// Vendor surface: session auth plus CSRF on every mutating method.
	vendor := router.PathPrefix("/api").Subrouter()
	vendor.Use(middlewares.AuthMiddleware(store, userRepo, render))
	vendor.Use(csrf.Protect(keys.AuthKey,
		csrf.Path("/"),
		csrf.Secure(false),
	))

	vendor.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	vendor.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	vendor.HandleFunc("/auth/password", authHandler.ChangePassword).Methods("PUT")

	vendor.HandleFunc("/profile", profileHandler.Get).Methods("GET")
	vendor.HandleFunc("/profile", profileHandler.Update).Methods("PUT")
	vendor.HandleFunc("/profile/rates", rateHandler.UpdateRate).Methods("PUT")

	vendor.HandleFunc("/products", productHandler.List).Methods("GET")
	vendor.HandleFunc("/products", productHandler.Create).Methods("POST")
	vendor.HandleFunc("/products/export/pdf", exportHandler.CatalogPDF).Methods("GET")
	vendor.HandleFunc("/products/templates/{type}", exportHandler.ImportTemplate).Methods("GET")
	vendor.HandleFunc("/products/bulk-delete", bulkHandler.DeleteSelected).Methods("POST")
	vendor.HandleFunc("/products/bulk-update", bulkHandler.BulkUpdate).Methods("POST")
	vendor.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")
	vendor.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	vendor.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	vendor.HandleFunc("/share-links", shareHandler.CreateShareLink).Methods("POST")

	vendor.HandleFunc("/inquiries", inquiryHandler.List).Methods("GET")
	vendor.HandleFunc("/inquiries/{id}/status", inquiryHandler.UpdateStatus).Methods("PUT")
	vendor.Handle("/inquiries/reminder",
		inquiryLimiter(http.HandlerFunc(inquiryHandler.SendPendingReminder))).Methods("POST")
	vendor.HandleFunc("/notifications/ws", inquiryHandler.Notifications).Methods("GET")

	vendor.HandleFunc("/rewards", rewardHandler.List).Methods("GET")
	vendor.HandleFunc("/rewards", rewardHandler.Create).Methods("POST")
	vendor.HandleFunc("/rewards/balance", rewardHandler.Balance).Methods("GET")

	vendor.HandleFunc("/invoices", invoiceHandler.List).Methods("GET")
	vendor.HandleFunc("/invoices", invoiceHandler.Create).Methods("POST")
	vendor.HandleFunc("/invoices/{id}", invoiceHandler.Get).Methods("GET")
	vendor.HandleFunc("/invoices/{id}/pdf", invoiceHandler.DownloadPDF).Methods("GET")

	// Admin surface: site content management.
	adminRouter := router.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(middlewares.AuthMiddleware(store, userRepo, render))
	adminRouter.Use(middlewares.AdminAuthMiddleware(render))

	adminRouter.HandleFunc("/content/posts", contentAdmin.ListPosts).Methods("GET")
	adminRouter.HandleFunc("/content/posts", contentAdmin.CreatePost).Methods("POST")
	adminRouter.HandleFunc("/content/posts/{slug}", contentAdmin.UpdatePost).Methods("PUT")
	adminRouter.HandleFunc("/content/posts/{id}", contentAdmin.DeletePost).Methods("DELETE")
	adminRouter.HandleFunc("/content/press", contentAdmin.CreatePressItem).Methods("POST")
	adminRouter.HandleFunc("/content/press/{id}", contentAdmin.DeletePressItem).Methods("DELETE")
	adminRouter.HandleFunc("/content/brand-logos", contentAdmin.CreateBrandLogo).Methods("POST")
	adminRouter.HandleFunc("/content/brand-logos/{id}", contentAdmin.DeleteBrandLogo).Methods("DELETE")

	log.Println("✅ Routes registered.")

	return router
}
