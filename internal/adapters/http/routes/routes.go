package routes

import (
	"time"

	"psc-chapterhub/internal/adapters/http/handlers"
	"psc-chapterhub/internal/adapters/http/middleware"
	"psc-chapterhub/internal/adapters/persistence/repositories"
	"psc-chapterhub/internal/config"
	"psc-chapterhub/internal/core/domain"
	"psc-chapterhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	memberRepo := repositories.NewMemberProfileRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	researchRepo := repositories.NewResearchRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	branchRepo := repositories.NewBranchRepository(db)
	awardRepo := repositories.NewAwardRepository(db)
	carouselRepo := repositories.NewCarouselRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	counterRepo := repositories.NewViewCounterRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	analyticsService := services.NewAnalyticsService(counterRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	memberHandler := handlers.NewMemberHandler(memberRepo)
	contentHandler := handlers.NewContentHandler(newsRepo, researchRepo)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	catalogHandler := handlers.NewCatalogHandler(branchRepo, awardRepo, carouselRepo, settingRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	migrationHandler := handlers.NewMigrationHandler(db)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Public routes (no auth)
	publicRoutes := apiV1.Group("/public")
	setupPublicRoutes(publicRoutes, eventHandler, memberHandler, contentHandler,
		newsletterHandler, catalogHandler, analyticsHandler)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Profile routes (any authenticated user)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Use(middleware.RequirePermission(domain.PermProfile))
	setupProfileRoutes(profileRoutes, userHandler)

	// User management routes (admins capability)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.RequirePermission(domain.PermAdmins))
	setupUserRoutes(userRoutes, userHandler)

	// Event routes
	eventRoutes := apiV1.Group("/events")
	eventRoutes.Use(middleware.AuthMiddleware(cfg))
	eventRoutes.Use(middleware.RequirePermission(domain.PermEvents))
	setupEventRoutes(eventRoutes, eventHandler)

	// Member directory routes
	memberRoutes := apiV1.Group("/members")
	memberRoutes.Use(middleware.AuthMiddleware(cfg))
	memberRoutes.Use(middleware.RequirePermission(domain.PermMembers))
	setupMemberRoutes(memberRoutes, memberHandler)

	// News routes
	newsRoutes := apiV1.Group("/news")
	newsRoutes.Use(middleware.AuthMiddleware(cfg))
	newsRoutes.Use(middleware.RequirePermission(domain.PermContent))
	setupNewsRoutes(newsRoutes, contentHandler)

	// Research routes
	researchRoutes := apiV1.Group("/research")
	researchRoutes.Use(middleware.AuthMiddleware(cfg))
	researchRoutes.Use(middleware.RequirePermission(domain.PermResearch))
	setupResearchRoutes(researchRoutes, contentHandler)

	// Newsletter routes
	newsletterRoutes := apiV1.Group("/newsletters")
	newsletterRoutes.Use(middleware.AuthMiddleware(cfg))
	newsletterRoutes.Use(middleware.RequirePermission(domain.PermNewsletter))
	setupNewsletterRoutes(newsletterRoutes, newsletterHandler)

	// Award routes
	awardRoutes := apiV1.Group("/awards")
	awardRoutes.Use(middleware.AuthMiddleware(cfg))
	awardRoutes.Use(middleware.RequirePermission(domain.PermAwards))
	awardRoutes.Post("/", catalogHandler.CreateAward)
	awardRoutes.Put("/:id", catalogHandler.UpdateAward)
	awardRoutes.Delete("/:id", catalogHandler.DeleteAward)

	// Carousel routes
	carouselRoutes := apiV1.Group("/carousel")
	carouselRoutes.Use(middleware.AuthMiddleware(cfg))
	carouselRoutes.Use(middleware.RequirePermission(domain.PermCarousel))
	carouselRoutes.Get("/", catalogHandler.ListAllSlides)
	carouselRoutes.Post("/", catalogHandler.CreateSlide)
	carouselRoutes.Put("/:id", catalogHandler.UpdateSlide)
	carouselRoutes.Delete("/:id", catalogHandler.DeleteSlide)

	// Branch routes (branches capability, super-admin or explicit grant)
	branchRoutes := apiV1.Group("/branches")
	branchRoutes.Use(middleware.AuthMiddleware(cfg))
	branchRoutes.Use(middleware.RequirePermission(domain.PermBranches))
	branchRoutes.Get("/", catalogHandler.ListAllBranches)
	branchRoutes.Post("/", catalogHandler.CreateBranch)
	branchRoutes.Put("/:id", catalogHandler.UpdateBranch)
	branchRoutes.Delete("/:id", catalogHandler.DeleteBranch)

	// Settings routes
	settingRoutes := apiV1.Group("/settings")
	settingRoutes.Use(middleware.AuthMiddleware(cfg))
	settingRoutes.Use(middleware.RequirePermission(domain.PermSettings))
	settingRoutes.Get("/", catalogHandler.ListSettings)
	settingRoutes.Get("/:key", catalogHandler.GetSetting)
	settingRoutes.Put("/:key", catalogHandler.SetSetting)

	// Analytics routes (settings capability guards the admin view)
	analyticsRoutes := apiV1.Group("/analytics")
	analyticsRoutes.Use(middleware.AuthMiddleware(cfg))
	analyticsRoutes.Use(middleware.RequirePermission(domain.PermSettings))
	analyticsRoutes.Get("/views", analyticsHandler.GetStats)

	// Dashboard routes (settings capability)
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.RequirePermission(domain.PermSettings))
	dashboardRoutes.Get("/", dashboardHandler.GetAdminDashboard)

	// Migration routes (migration capability, rate limited)
	migrationRoutes := apiV1.Group("/migration")
	migrationRoutes.Use(middleware.AuthMiddleware(cfg))
	migrationRoutes.Use(middleware.RequirePermission(domain.PermMigration))
	migrationRoutes.Post("/run", middleware.StrictRateLimiter(), migrationHandler.RunMigration)
}

// setupPublicRoutes configures the unauthenticated site routes
func setupPublicRoutes(
	router fiber.Router,
	eventHandler *handlers.EventHandler,
	memberHandler *handlers.MemberHandler,
	contentHandler *handlers.ContentHandler,
	newsletterHandler *handlers.NewsletterHandler,
	catalogHandler *handlers.CatalogHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	// Published content, cached for 5 minutes
	cached := middleware.PublicCache(5 * time.Minute)

	router.Get("/events", cached, eventHandler.ListPublicEvents)
	router.Get("/events/upcoming", cached, eventHandler.ListUpcomingEvents)
	router.Get("/events/:slug", cached, eventHandler.GetPublicEvent)

	router.Get("/members", cached, memberHandler.ListPublicMembers)

	router.Get("/news", cached, contentHandler.ListPublicNews)
	router.Get("/news/:slug", cached, contentHandler.GetPublicNews)

	router.Get("/research", cached, contentHandler.ListPublicResearch)
	router.Get("/newsletters", cached, newsletterHandler.ListPublicNewsletters)

	router.Get("/branches", cached, catalogHandler.ListBranches)
	router.Get("/awards", cached, catalogHandler.ListAwards)
	router.Get("/carousel", cached, catalogHandler.ListSlides)

	// View counter: tracking is rate limited, the snapshot is never cached
	router.Post("/views/track", middleware.TrackRateLimiter(), analyticsHandler.TrackView)
	router.Get("/views", middleware.NoCacheHeaders(), analyticsHandler.GetSnapshot)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, rate limited against brute force
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupProfileRoutes configures profile routes (authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.GetProfile)
	router.Put("/", handler.UpdateProfile)
	router.Put("/password", middleware.StrictRateLimiter(), handler.ChangePassword)
}

// setupUserRoutes configures user management routes (admins capability)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Post("/", handler.CreateUser)
	router.Get("/:id", handler.GetUser)
	router.Put("/:id", handler.UpdateUser)
	router.Delete("/:id", handler.DeleteUser)
	router.Put("/:id/role", handler.SetUserRole)
	router.Put("/:id/permissions", handler.SetPermissions)
}

// setupEventRoutes configures event management routes
func setupEventRoutes(router fiber.Router, handler *handlers.EventHandler) {
	router.Get("/", handler.ListEvents)
	router.Post("/", handler.CreateEvent)
	router.Get("/:id", handler.GetEvent)
	router.Put("/:id", handler.UpdateEvent)
	router.Delete("/:id", handler.DeleteEvent)
}

// setupMemberRoutes configures member directory management routes
func setupMemberRoutes(router fiber.Router, handler *handlers.MemberHandler) {
	router.Get("/", handler.ListMembers)
	router.Post("/", handler.CreateMember)
	router.Get("/:id", handler.GetMember)
	router.Put("/:id", handler.UpdateMember)
	router.Delete("/:id", handler.DeleteMember)
}

// setupNewsRoutes configures news management routes
func setupNewsRoutes(router fiber.Router, handler *handlers.ContentHandler) {
	router.Get("/", handler.ListNews)
	router.Post("/", handler.CreateNews)
	router.Get("/:id", handler.GetNews)
	router.Put("/:id", handler.UpdateNews)
	router.Delete("/:id", handler.DeleteNews)
}

// setupResearchRoutes configures research management routes
func setupResearchRoutes(router fiber.Router, handler *handlers.ContentHandler) {
	router.Get("/", handler.ListResearch)
	router.Post("/", handler.CreateResearch)
	router.Put("/:id", handler.UpdateResearch)
	router.Delete("/:id", handler.DeleteResearch)
}

// setupNewsletterRoutes configures newsletter management routes
func setupNewsletterRoutes(router fiber.Router, handler *handlers.NewsletterHandler) {
	router.Get("/", handler.ListNewsletters)
	router.Post("/", handler.CreateNewsletter)
	router.Get("/:id", handler.GetNewsletter)
	router.Put("/:id", handler.UpdateNewsletter)
	router.Delete("/:id", handler.DeleteNewsletter)
	router.Post("/:id/publish", handler.PublishNewsletter)
}
