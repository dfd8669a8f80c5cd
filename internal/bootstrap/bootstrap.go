// Package bootstrap wires configuration, logging, persistence and the HTTP
// layer together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "scholaris/docs" // generated swagger docs
	appControllers "scholaris/internal/app/controllers"
	appMigrations "scholaris/internal/app/migrations"
	appRepos "scholaris/internal/app/repositories"
	appRoutes "scholaris/internal/app/routes"
	appServices "scholaris/internal/app/services"
	"scholaris/internal/config"
	"scholaris/internal/db"
	appMiddleware "scholaris/internal/middleware"
	pkgAuth "scholaris/internal/pkg/auth"
	"scholaris/internal/pkg/logger"
	"scholaris/internal/seed"
)

// Dependencies holds the assembled application graph
type Dependencies struct {
	Store appServices.Store

	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware

	AuthService       *appServices.AuthService
	CourseService     *appServices.CourseService
	StudentService    *appServices.StudentService
	ProfessorService  *appServices.ProfessorService
	ProfileService    *appServices.ProfileService
	UserService       *appServices.UserService
	RoleService       *appServices.RoleService
	DepartmentService *appServices.DepartmentService

	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	ProfessorController  *appControllers.ProfessorController
	CourseController     *appControllers.CourseController
	DepartmentController *appControllers.DepartmentController
	UserController       *appControllers.UserController
	RoleController       *appControllers.RoleController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.EnsureAdminUser(context.Background(), appRepos.NewRepositories(dbPool)); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin user, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes the store, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Store = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.GetAccessTokenExpiration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.CourseService = appServices.NewCourseService(deps.Store)
	deps.StudentService = appServices.NewStudentService(deps.Store, deps.CourseService)
	deps.ProfessorService = appServices.NewProfessorService(deps.Store)
	deps.ProfileService = appServices.NewProfileService(deps.Store)
	deps.UserService = appServices.NewUserService(deps.Store)
	deps.RoleService = appServices.NewRoleService(deps.Store)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Store)
	deps.AuthService = appServices.NewAuthService(deps.Store, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.ProfileService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.RoleController = appControllers.NewRoleController(deps.RoleService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.ProfessorController,
		deps.CourseController,
		deps.DepartmentController,
		deps.UserController,
		deps.RoleController,
		deps.AuthMiddleware,
	)

	return router
}
