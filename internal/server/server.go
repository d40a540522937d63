package server

import (
	"context"
	"net/http"

	"gym-application/internal/attendance"
	"gym-application/internal/auth"
	"gym-application/internal/billing"
	"gym-application/internal/class"
	"gym-application/internal/config"
	"gym-application/internal/email"
	"gym-application/internal/member"
	"gym-application/internal/payment"
	"gym-application/internal/pricing"
	"gym-application/internal/report"
	"gym-application/internal/subscription"
	"gym-application/internal/supplement"
	"gym-application/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	resetJob := payment.NewJob(payment.NewRepository(db))

	userHandler := user.NewHandler(db, cfg.JWTSecret)
	memberHandler := member.NewHandler(db)
	attendanceHandler := attendance.NewHandler(db)
	supplementHandler := supplement.NewHandler(db)
	pricingHandler := pricing.NewHandler(db)
	subscriptionHandler := subscription.NewHandler(db)
	billingHandler := billing.NewHandler(db)
	reportHandler := report.NewHandler(db)
	classHandler := class.NewHandler(db)
	reminderHandler := email.NewHandler(db, emailService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
	}

	// every dashboard read triggers the monthly payment reset check
	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"), resetJob.Middleware())
	{
		admin.GET("/members", memberHandler.List)
		admin.POST("/members", memberHandler.Create)
		admin.GET("/members/:id", memberHandler.Get)
		admin.PATCH("/members/:id", memberHandler.Update)
		admin.DELETE("/members/:id", memberHandler.Delete)

		admin.POST("/members/:id/attendance", attendanceHandler.Mark)
		admin.DELETE("/members/:id/attendance", attendanceHandler.Unmark)
		admin.GET("/members/:id/attendance", attendanceHandler.Dates)
		admin.GET("/attendance/stats", attendanceHandler.Stats)

		admin.PUT("/members/:id/supplements/:type/scoops/increment", supplementHandler.IncrementScoops)
		admin.PUT("/members/:id/supplements/:type/scoops/decrement", supplementHandler.DecrementScoops)
		admin.PUT("/members/:id/supplements/:type/cost", supplementHandler.SetManualCost)
		admin.GET("/members/:id/supplements", supplementHandler.GetUsage)

		admin.GET("/settings", pricingHandler.GetSettings)
		admin.PUT("/settings/:category", pricingHandler.SaveSettings)
		admin.GET("/pricing/cardio/quote", pricingHandler.QuoteCardioPlan)
		admin.GET("/pricing/pt/quote", pricingHandler.QuotePTPlan)

		admin.PUT("/members/:id/subscriptions/:category", subscriptionHandler.Assign)
		admin.DELETE("/members/:id/subscriptions/:category", subscriptionHandler.Remove)
		admin.GET("/subscriptions/:category", subscriptionHandler.ListActive)

		admin.GET("/members/:id/invoice", billingHandler.Invoice)
		admin.GET("/reports", reportHandler.Monthly)

		admin.GET("/classes", classHandler.List)
		admin.POST("/classes", classHandler.Create)
		admin.DELETE("/classes/:id", classHandler.Delete)

		admin.POST("/reminders", reminderHandler.RemindUnpaid)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
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
