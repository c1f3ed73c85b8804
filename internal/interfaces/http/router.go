package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dashboardUsecases "gymdesk/internal/application/dashboard/usecases"
	memberUsecases "gymdesk/internal/application/member/usecases"
	paymentUsecases "gymdesk/internal/application/payment/usecases"
	planUsecases "gymdesk/internal/application/plan/usecases"
	"gymdesk/internal/infrastructure/auth"
	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/infrastructure/persistence/repository"
	"gymdesk/internal/interfaces/http/handlers"
	"gymdesk/internal/interfaces/http/middleware"
	"gymdesk/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface from the database handle and
// configuration.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger(log))
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	thresholdDays := cfg.Membership.ExpiringThresholdDays

	// Repositories
	planRepo := repository.NewPlanRepository(db, log)
	memberRepo := repository.NewMemberRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	paymentRepo := repository.NewPaymentRepository(db, log)

	// Auth services
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	credentialService := auth.NewCredentialService(&cfg.Auth)

	// Handlers
	authHandler := handlers.NewAuthHandler(credentialService, jwtService, log)

	planHandler := handlers.NewPlanHandler(
		planUsecases.NewSavePlanUseCase(planRepo, log),
		planUsecases.NewGetPlanUseCase(planRepo, log),
		planUsecases.NewListPlansUseCase(planRepo, log),
		planUsecases.NewGetActivePlansUseCase(planRepo, log),
		planUsecases.NewSetPlanStatusUseCase(planRepo, log),
		planUsecases.NewDeletePlanUseCase(planRepo, log),
		log,
	)

	memberHandler := handlers.NewMemberHandler(
		memberUsecases.NewEnrollMemberUseCase(memberRepo, assignmentRepo, planRepo, log),
		memberUsecases.NewGetMemberUseCase(memberRepo, assignmentRepo, planRepo, paymentRepo, thresholdDays, log),
		memberUsecases.NewListMembersUseCase(memberRepo, assignmentRepo, thresholdDays, log),
		memberUsecases.NewUpdateMemberUseCase(memberRepo, assignmentRepo, thresholdDays, log),
		memberUsecases.NewDeleteMemberUseCase(memberRepo, log),
		memberUsecases.NewRenewMembershipUseCase(memberRepo, assignmentRepo, planRepo, log),
		log,
	)

	paymentHandler := handlers.NewPaymentHandler(
		paymentUsecases.NewRecordPaymentUseCase(paymentRepo, memberRepo, log),
		paymentUsecases.NewListPaymentsUseCase(paymentRepo, memberRepo, log),
		log,
	)

	dashboardHandler := handlers.NewDashboardHandler(
		dashboardUsecases.NewGetOverviewUseCase(memberRepo, assignmentRepo, planRepo, paymentRepo, thresholdDays, log),
		log,
	)

	// Routes
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwtService))
	{
		protected.GET("/dashboard", dashboardHandler.GetOverview)

		plans := protected.Group("/plans")
		{
			plans.POST("", planHandler.CreatePlan)
			plans.GET("", planHandler.ListPlans)
			plans.GET("/active", planHandler.GetActivePlans)
			plans.GET("/:id", planHandler.GetPlan)
			plans.PUT("/:id", planHandler.UpdatePlan)
			plans.PATCH("/:id/status", planHandler.UpdatePlanStatus)
			plans.DELETE("/:id", planHandler.DeletePlan)
		}

		members := protected.Group("/members")
		{
			members.POST("", memberHandler.EnrollMember)
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.POST("/:id/renew", memberHandler.RenewMembership)
			members.POST("/:id/payments", paymentHandler.RecordPayment)
			members.GET("/:id/payments", paymentHandler.ListMemberPayments)
		}

		protected.GET("/payments", paymentHandler.ListPayments)
	}

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
