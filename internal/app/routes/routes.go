package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scholaris/internal/app/controllers"
	"scholaris/internal/middleware"
)

const adminRole = "ADMIN"

// SetupRouter configures all application routes. Reads are public; every
// mutating route sits behind JWT auth plus the ADMIN role.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	professorController *controllers.ProfessorController,
	courseController *controllers.CourseController,
	departmentController *controllers.DepartmentController,
	userController *controllers.UserController,
	roleController *controllers.RoleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudent)
		students.GET("/:id/profile", studentController.GetProfile)
	}

	professors := v1.Group("/professors")
	{
		professors.GET("", professorController.GetProfessors)
		professors.GET("/:id", professorController.GetProfessor)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourse)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetDepartments)
	}

	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(adminRole))
	{
		admin.POST("/students", studentController.AddStudent)
		admin.DELETE("/students/:id", studentController.DeleteStudent)
		admin.POST("/students/:id/profile", studentController.AddProfile)

		admin.POST("/professors", professorController.AddProfessor)
		admin.PUT("/professors/:id", professorController.UpdateProfessor)
		admin.DELETE("/professors/:id", professorController.DeleteProfessor)

		admin.POST("/courses", courseController.AddCourse)
		admin.DELETE("/courses/:id", courseController.DeleteCourse)

		admin.POST("/departments", departmentController.CreateDepartment)

		admin.POST("/users", userController.RegisterUser)
		admin.GET("/users", userController.GetUsers)
		admin.GET("/users/:id", userController.GetUser)
		admin.DELETE("/users/:id", userController.DeleteUser)
		// gin requires one wildcard name per position, so the username
		// travels in the :id segment here.
		admin.POST("/users/:id/roles/:role", userController.AssignRole)
		admin.DELETE("/users/:id/roles/:role", userController.RemoveRole)

		admin.POST("/roles", roleController.CreateRole)
		admin.GET("/roles", roleController.GetRoles)
		admin.DELETE("/roles/:name", roleController.DeleteRole)
	}
}
