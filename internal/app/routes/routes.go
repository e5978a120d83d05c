package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yosefd/rollbook/internal/app/controllers"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/app/models/dto"
	"github.com/yosefd/rollbook/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	orgController *controllers.OrgController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/users/login", authController.Login)
	v1.POST("/admin/login", authController.AdminLogin)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Attendance routes, open to all authenticated staff
		attendances := authenticated.Group("/attendances")
		{
			attendances.POST("/save-attendance", attendanceController.SaveDailyAttendance)
			attendances.GET("/get-attendance", attendanceController.GetAttendance)
			attendances.GET("/summary", attendanceController.GetMonthlySummary)
			attendances.DELETE("/delete", attendanceController.DeleteAttendance)
		}

		// Session (slot) attendance routes
		sessionAttendances := authenticated.Group("/Tattendances")
		{
			sessionAttendances.POST("/save-attendance", attendanceController.SaveSessionAttendance)
			sessionAttendances.GET("/get-attendance", attendanceController.GetSessionAttendance)
		}

		// Roster routes
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		// Organization hierarchy; creation restricted to admins and
		// department heads, listing open to all authenticated staff
		orgWrite := authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleDepHead))
		{
			authenticated.GET("/school", orgController.GetAllSchools)
			authenticated.POST("/school", orgWrite, orgController.CreateSchool)
			authenticated.GET("/department", orgController.GetAllDepartments)
			authenticated.POST("/department", orgWrite, orgController.CreateDepartment)
			authenticated.GET("/course", orgController.GetAllCourses)
			authenticated.POST("/course", orgWrite, orgController.CreateCourse)
		}

		// Staff account routes
		users := authenticated.Group("/users")
		{
			users.GET("/get-profile", authController.GetProfile)

			usersAdminProtected := users.Group("")
			usersAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleDepHead)))
			{
				usersAdminProtected.POST("/create", authController.CreateUser)
				usersAdminProtected.GET("/get-users", authController.GetAllUsers)
				usersAdminProtected.PUT("/update-user/:id", authController.UpdateUser)
				usersAdminProtected.PUT("/update-password/:id", authController.UpdatePassword)
			}
		}
	}

	// Swagger routes are set up in bootstrap.go already
}
