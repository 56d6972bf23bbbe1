package routes

import (
	"net/http"

	"fitbrand-backend/controllers"
	"fitbrand-backend/middlewares"
	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, logger *zap.Logger) *gin.Engine {
	brandSvc := services.NewBrandService(db, logger)
	authSvc := services.NewAuthService(db, logger)
	userSvc := services.NewUserService(db, logger)
	planSvc := services.NewPlanService(db, logger)
	proSvc := services.NewProfessionalService(db, logger)
	workoutSvc := services.NewWorkoutService(db, logger)
	sessionSvc := services.NewSessionService(db, logger)
	waterSvc := services.NewWaterService(db, logger)
	assessSvc := services.NewAssessmentService(db, logger)
	photoSvc := services.NewPhotoService(db, logger)
	webhookSvc := services.NewWebhookService(db, logger)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	brandCtl := controllers.NewBrandController(brandSvc)
	planCtl := controllers.NewPlanController(planSvc)
	proCtl := controllers.NewProfessionalController(proSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	sessionCtl := controllers.NewSessionController(sessionSvc)
	waterCtl := controllers.NewWaterController(waterSvc)
	assessCtl := controllers.NewAssessmentController(assessSvc)
	photoCtl := controllers.NewPhotoController(photoSvc)
	webhookCtl := controllers.NewWebhookController(webhookSvc)

	tenant := middlewares.TenantMiddleware(brandSvc)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public, tenant-resolved
	auth := r.Group("/auth", tenant)
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(), userCtl.GetProfile)
	}

	webhooks := r.Group("/webhooks", tenant)
	{
		webhooks.POST("/:provider", webhookCtl.Receive)
	}

	// Authenticated end-user surface
	user := r.Group("/user", tenant, middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.POST("/challenge/start", userCtl.StartChallenge)
		user.GET("/professionals", proCtl.ListProfessionals)

		user.POST("/water", waterCtl.Add)
		user.GET("/water", waterCtl.Today)
		user.GET("/water/history", waterCtl.History)

		user.GET("/workouts", workoutCtl.List)
		user.GET("/workouts/:id", workoutCtl.Get)
		user.POST("/sessions", sessionCtl.Start)
		user.GET("/sessions", sessionCtl.History)
		user.GET("/sessions/:id", sessionCtl.Get)
		user.PATCH("/sessions/:id/items/:itemId", sessionCtl.SetItemDone)
		user.POST("/sessions/:id/complete", sessionCtl.Complete)

		user.POST("/assessments", assessCtl.Create)
		user.GET("/assessments", assessCtl.List)

		user.POST("/photos", photoCtl.Upload)
		user.GET("/photos", photoCtl.List)
	}

	// Coaching surface (pros and admins)
	pro := r.Group("/pro", tenant, middlewares.AuthMiddleware(),
		middlewares.RequireRole(models.RolePro, models.RoleAdmin))
	{
		pro.GET("/clients", proCtl.ListClients)
		pro.POST("/workouts", workoutCtl.Create)
		pro.PUT("/workouts/:id", workoutCtl.Update)
		pro.PUT("/workouts/:id/exercises", workoutCtl.ReplaceExercises)
		pro.DELETE("/workouts/:id", workoutCtl.Delete)
	}

	// Brand administration
	admin := r.Group("/admin", tenant, middlewares.AuthMiddleware(),
		middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", userCtl.ListUsers)
		admin.DELETE("/users/:id", userCtl.DeactivateUser)
		admin.PUT("/users/:id/subscription", userCtl.UpdateSubscription)

		admin.POST("/assignments", proCtl.Assign)
		admin.DELETE("/assignments", proCtl.Unassign)

		admin.POST("/plans", planCtl.Create)
		admin.GET("/plans", planCtl.List)
		admin.GET("/plans/:id", planCtl.Get)
		admin.PUT("/plans/:id", planCtl.Update)
		admin.DELETE("/plans/:id", planCtl.Deactivate)

		admin.GET("/webhook-events", webhookCtl.ListEvents)
	}

	// Cross-brand administration (super admins only)
	super := r.Group("/admin/brands", middlewares.AuthMiddleware(),
		middlewares.RequireRole(models.RoleSuperAdmin))
	{
		super.POST("", brandCtl.Create)
		super.GET("", brandCtl.List)
		super.GET("/:id", brandCtl.Get)
		super.PUT("/:id", brandCtl.Update)
		super.DELETE("/:id", brandCtl.Deactivate)
	}

	return r
}
