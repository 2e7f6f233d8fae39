package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/controllers"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	roomController *controllers.RoomController,
	leaveController *controllers.LeaveController,
	listingController *controllers.ListingController,
	authMiddleware *middleware.AuthMiddleware,
	cacheMiddleware gin.HandlerFunc,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Unauthenticated liveness probe for the dashboard and deploy checks.
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// All hostel routes sit behind the (config-gated) auth middleware.
	// When auth is disabled in config JWTAuth passes everything through.
	api := v1.Group("")
	if authMiddleware != nil {
		api.Use(authMiddleware.JWTAuth())
	}

	// Listing routes are the only cacheable surface. Each registered
	// collection gets an explicit route onto the shared handler.
	listed := api.Group("")
	if cacheMiddleware != nil {
		listed.Use(cacheMiddleware)
	}
	{
		listed.GET("/students", listingController.ListHandler("students"))
		listed.GET("/rooms", listingController.ListHandler("rooms"))
		listed.GET("/leaves", listingController.ListHandler("leaves"))
		listed.GET("/complaints", listingController.ListHandler("complaints"))
		listed.GET("/notices", listingController.ListHandler("notices"))
	}

	// Student routes
	students := api.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.POST("/:id/allocate-room", studentController.AllocateRoom)
		students.POST("/:id/deallocate-room", studentController.DeallocateRoom)
	}

	// Room routes. Mutations are warden-only; reads stay open to any
	// authenticated caller.
	rooms := api.Group("/rooms")
	{
		rooms.GET("/:id", roomController.GetRoomByID)
		if authMiddleware != nil {
			adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))
			rooms.POST("", adminOnly, roomController.CreateRoom)
			rooms.PUT("/:id", adminOnly, roomController.UpdateRoom)
		} else {
			rooms.POST("", roomController.CreateRoom)
			rooms.PUT("/:id", roomController.UpdateRoom)
		}
	}

	// Leave lifecycle routes
	leaves := api.Group("/leaves")
	{
		leaves.POST("", leaveController.CreateLeave)
		leaves.GET("/:id", leaveController.GetLeaveByID)
		leaves.PATCH("/:id/status", leaveController.DecideLeave)
		leaves.PATCH("/:id/checkout", leaveController.CheckoutLeave)
		leaves.PATCH("/:id/checkin", leaveController.CheckinLeave)
	}
}
