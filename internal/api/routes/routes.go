package routes

import (
	"brokerage-rotation-backend/internal/api/handlers"
	"brokerage-rotation-backend/internal/api/middleware"
	"brokerage-rotation-backend/internal/config"
	"brokerage-rotation-backend/internal/repository"
	"brokerage-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, rules *config.FairnessRules) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	groupRepo := repository.NewRotationGroupRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	rosterRepo := repository.NewRosterEntryRepository(db)
	queueRepo := repository.NewQueuePositionRepository(db)
	assignRepo := repository.NewAssignmentRepository(db)
	creditRepo := repository.NewFairnessCreditRepository(db)
	forfeitureRepo := repository.NewForfeitureRepository(db)
	vacationRepo := repository.NewVacationAllocationRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Initialize services. One lock registry serializes assignments, roster
	// changes and reconciliations touching the same group.
	groupLocks := service.NewGroupLocks()
	fairnessService := service.NewFairnessService(participantRepo, vacationRepo, forfeitureRepo, assignRepo, rules)
	groupService := service.NewRotationGroupService(groupRepo, validator)
	participantService := service.NewParticipantService(participantRepo, creditRepo, forfeitureRepo, vacationRepo, validator)
	rosterService := service.NewRosterService(db, groupRepo, participantRepo, rosterRepo, queueRepo, groupLocks)
	queueService := service.NewQueueService(db, groupRepo, queueRepo, assignRepo, creditRepo, auditRepo, fairnessService, groupLocks, validator)
	exceptionService := service.NewExceptionService(db, assignRepo, participantRepo, creditRepo, vacationRepo, auditRepo, fairnessService, validator)
	reconcilerService := service.NewReconcilerService(db, groupRepo, rosterService, auditRepo, groupLocks)
	auditService := service.NewAuditService(auditRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	groupHandler := handlers.NewRotationGroupHandler(groupService)
	participantHandler := handlers.NewParticipantHandler(participantService)
	queueHandler := handlers.NewQueueHandler(queueService, rosterService, reconcilerService)
	exceptionHandler := handlers.NewExceptionHandler(exceptionService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Rotation group routes
		rotationGroups := v1.Group("/rotation-groups")
		{
			rotationGroups.GET("", groupHandler.ListRotationGroups)
			rotationGroups.POST("", groupHandler.CreateRotationGroup)
			rotationGroups.GET("/:id", groupHandler.GetRotationGroup)
			rotationGroups.PUT("/:id", groupHandler.UpdateRotationGroup)
			rotationGroups.DELETE("/:id", groupHandler.DeactivateRotationGroup)
			rotationGroups.GET("/:id/queue", queueHandler.GetQueue)
			rotationGroups.GET("/:id/next", queueHandler.NextEligible)
			rotationGroups.GET("/:id/assignments", queueHandler.ListAssignments)
			rotationGroups.POST("/:id/members", queueHandler.AddMember)
			rotationGroups.DELETE("/:id/members/:participantId", queueHandler.RemoveMember)
			rotationGroups.POST("/:id/sync", queueHandler.SyncRoster)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", queueHandler.CreateAssignment)
			assignments.POST("/bulk", queueHandler.CreateBulkAssignments)
			assignments.POST("/swap", exceptionHandler.SwapAssignments)
			assignments.POST("/:id/move", exceptionHandler.MoveAssignment)
			assignments.DELETE("/:id", exceptionHandler.RemoveAssignment)
		}

		// Vacation allocation routes
		vacationAllocations := v1.Group("/vacation-allocations")
		{
			vacationAllocations.POST("/:id/reduce", exceptionHandler.ReduceAllocation)
		}

		// Participant routes
		participants := v1.Group("/participants")
		{
			participants.GET("", participantHandler.ListParticipants)
			participants.POST("", participantHandler.CreateParticipant)
			participants.GET("/:id", participantHandler.GetParticipant)
			participants.PUT("/:id", participantHandler.UpdateParticipant)
			participants.GET("/:id/credits", participantHandler.GetCredits)
			participants.GET("/:id/forfeitures", participantHandler.GetForfeitures)
			participants.POST("/:id/forfeitures", participantHandler.CreateForfeiture)
			participants.POST("/:id/vacation-allocations", participantHandler.CreateVacationAllocation)
		}

		// Audit log routes
		auditLog := v1.Group("/audit-log")
		{
			auditLog.GET("", auditHandler.ListAuditRecords)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
