package routes

import (
	"context"
	"log"
	"time"

	_ "hvac_crm/docs" // swag registration
	"hvac_crm/internal/adapter/http/handlers"
	"hvac_crm/internal/adapter/http/middleware"
	repository2 "hvac_crm/internal/adapter/persistence/repository"
	"hvac_crm/internal/config"
	"hvac_crm/internal/infrastructure/auth"
	"hvac_crm/internal/infrastructure/database"
	"hvac_crm/internal/infrastructure/mailer"
	"hvac_crm/internal/infrastructure/notify"
	"hvac_crm/internal/infrastructure/payments"
	"hvac_crm/internal/usecase"
	"hvac_crm/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type handlerSet struct {
	auth       *handlers.AuthHandler
	leads      *handlers.LeadHandler
	projects   *handlers.ProjectHandler
	employees  *handlers.EmployeeHandler
	forms      *handlers.FormHandler
	backOffice *handlers.BackOfficeHandler
	authUC     usecase.IAuthUseCase
}

func getRoutes(cfg config.Config) {
	db := database.ConnectGorm(cfg)
	if cfg.AdminEmail != "" {
		if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Printf("[db] admin seed failed email=%s err=%v", cfg.AdminEmail, err)
		}
	}

	ddb := database.ConnectDynamoDB()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureReconciliationTable(ctx, ddb, cfg.ReconciliationTable); err != nil {
		log.Printf("[dynamodb] reconciliation table not ready table=%s err=%v", cfg.ReconciliationTable, err)
	}
	cancel()

	entityRepo := repository2.NewEntityGormRepository(db)
	leadRepo := repository2.NewLeadGormRepository(db)
	customerRepo := repository2.NewCustomerGormRepository(db)
	employeeRepo := repository2.NewEmployeeGormRepository(db)
	userRepo := repository2.NewUserGormRepository(db)
	referenceRepo := repository2.NewReferenceGormRepository(db)
	dashboardRepo := repository2.NewDashboardGormRepository(db)
	reconciliationRepo := repository2.NewReconciliationDynamoRepository(ddb, cfg.ReconciliationTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
	if err != nil {
		log.Printf("[payment] Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var progression interfaces.IStatusProgression
	if m := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.NotifyFrom, cfg.NotifyStaffTo); m != nil {
		progression = m
	}

	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("[auth] token service: %v", err)
	}

	notifier := notify.LogNotifier{}
	forms := usecase.NewFormManager(entityRepo, referenceRepo, reconciliationRepo, paymentGateway, notifier)
	dashboard := usecase.NewDashboardUseCase(dashboardRepo)
	authUC := usecase.NewAuthUseCase(userRepo, tokens)
	conversions := usecase.NewConversionUseCase(leadRepo, customerRepo, entityRepo, forms, reconciliationRepo, progression, dashboard, notifier)

	h := handlerSet{
		auth:       handlers.NewAuthHandler(authUC, cfg.AuthCookie, cfg.SecureCookie),
		leads:      handlers.NewLeadHandler(usecase.NewLeadUseCase(leadRepo, forms), conversions),
		projects:   handlers.NewProjectHandler(usecase.NewProjectUseCase(forms, entityRepo)),
		employees:  handlers.NewEmployeeHandler(usecase.NewEmployeeUseCase(employeeRepo, forms)),
		forms:      handlers.NewFormHandler(forms),
		backOffice: handlers.NewBackOfficeHandler(dashboard, usecase.NewReconciliationUseCase(reconciliationRepo)),
		authUC:     authUC,
	}

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addAuthRoutes(api, h.auth)
	api.POST(PathConsultationRequests, h.leads.Submit)

	// Rotas autenticadas
	private := api.Group("", middleware.RequireAuth(h.authUC, cfg.AuthCookie))
	addCRMRoutes(private, h)
	addFormRoutes(private, h.forms)
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
