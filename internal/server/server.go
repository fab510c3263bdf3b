package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/analytics"
	"gymdesk/internal/auth"
	"gymdesk/internal/cache"
	"gymdesk/internal/config"
	"gymdesk/internal/equipment"
	"gymdesk/internal/expense"
	"gymdesk/internal/gym"
	"gymdesk/internal/member"
	"gymdesk/internal/payment"
	"gymdesk/internal/plan"
	"gymdesk/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, snapshots *cache.Cache) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitTTL))

	gymRepo := gym.NewRepository(db)
	userRepo := user.NewRepository(db)
	planRepo := plan.NewRepository(db)
	memberRepo := member.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	expenseRepo := expense.NewRepository(db)
	equipmentRepo := equipment.NewRepository(db)

	userService := user.NewService(userRepo, gymRepo, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	memberService := member.NewService(memberRepo, planRepo, snapshots)
	paymentService := payment.NewService(paymentRepo, memberRepo, snapshots)
	expenseService := expense.NewService(expenseRepo, snapshots)
	equipmentService := equipment.NewService(equipmentRepo, snapshots)
	analyticsService := analytics.NewService(memberService, paymentService, expenseService, equipmentService)

	userHandler := user.NewHandler(userService)
	gymHandler := gym.NewHandler(gymRepo)
	planHandler := plan.NewHandler(planRepo, snapshots)
	memberHandler := member.NewHandler(memberService)
	paymentHandler := payment.NewHandler(paymentService)
	expenseHandler := expense.NewHandler(expenseService)
	equipmentHandler := equipment.NewHandler(equipmentService)
	analyticsHandler := analytics.NewHandler(analyticsService, cfg.DashboardMonths)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTAccessSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/gym", gymHandler.GetMyGym)

		protected.GET("/dashboard", analyticsHandler.GetDashboard)

		protected.GET("/plans", planHandler.ListPlans)
		protected.GET("/plans/:planID", planHandler.GetPlan)

		protected.GET("/members", memberHandler.ListMembers)
		protected.GET("/members/expiring", memberHandler.ExpiringMembers)
		protected.GET("/members/export", memberHandler.ExportMembers)
		protected.GET("/members/:memberID", memberHandler.GetMember)
		protected.POST("/members", memberHandler.CreateMember)
		protected.PUT("/members/:memberID", memberHandler.UpdateMember)
		protected.POST("/members/:memberID/renew", memberHandler.RenewMember)
		protected.POST("/members/:memberID/quit", memberHandler.QuitMember)
		protected.GET("/members/:memberID/payments", paymentHandler.MemberPayments)

		protected.GET("/payments", paymentHandler.ListPayments)
		protected.GET("/payments/export", paymentHandler.ExportPayments)
		protected.POST("/payments", paymentHandler.RecordPayment)

		protected.GET("/expenses", expenseHandler.ListExpenses)
		protected.GET("/expenses/breakdown", expenseHandler.ExpenseBreakdown)
		protected.GET("/expenses/export", expenseHandler.ExportExpenses)
		protected.GET("/expenses/:expenseID", expenseHandler.GetExpense)
		protected.POST("/expenses", expenseHandler.CreateExpense)
		protected.PUT("/expenses/:expenseID", expenseHandler.UpdateExpense)

		protected.GET("/equipment", equipmentHandler.ListEquipment)
		protected.GET("/equipment/attention", equipmentHandler.EquipmentNeedsAttention)
		protected.GET("/equipment/export", equipmentHandler.ExportEquipment)
		protected.GET("/equipment/:equipmentID", equipmentHandler.GetEquipment)
		protected.POST("/equipment", equipmentHandler.CreateEquipment)
		protected.PUT("/equipment/:equipmentID", equipmentHandler.UpdateEquipment)
	}

	// destructive and settings routes are admin-only
	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.PUT("/gym", gymHandler.UpdateMyGym)

		admin.POST("/plans", planHandler.CreatePlan)
		admin.PUT("/plans/:planID", planHandler.UpdatePlan)

		admin.PUT("/payments/:paymentID", paymentHandler.UpdatePayment)
		admin.DELETE("/payments/:paymentID", paymentHandler.DeletePayment)

		admin.DELETE("/expenses/:expenseID", expenseHandler.DeleteExpense)
		admin.DELETE("/equipment/:equipmentID", equipmentHandler.DeleteEquipment)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
