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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yosefd/rollbook/docs" // Import generated swagger docs
	appControllers "github.com/yosefd/rollbook/internal/app/controllers"
	appMigrations "github.com/yosefd/rollbook/internal/app/migrations"
	appRepos "github.com/yosefd/rollbook/internal/app/repositories"
	appRoutes "github.com/yosefd/rollbook/internal/app/routes"
	appServices "github.com/yosefd/rollbook/internal/app/services"
	"github.com/yosefd/rollbook/internal/config"
	"github.com/yosefd/rollbook/internal/db"
	appMiddleware "github.com/yosefd/rollbook/internal/middleware"
	pkgAuth "github.com/yosefd/rollbook/internal/pkg/auth"
	"github.com/yosefd/rollbook/internal/pkg/logger"
	"github.com/yosefd/rollbook/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AttendanceService    *appServices.AttendanceService
	ReportService        *appServices.ReportService
	OrgService           *appServices.OrgService
	StudentService       *appServices.StudentService
	AuthService          *appServices.AuthService
	AuthController       *appControllers.AuthController
	OrgController        *appControllers.OrgController
	StudentController    *appControllers.StudentController
	AttendanceController *appControllers.AttendanceController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
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

// SetupDatabase establishes the database connection and runs migrations.
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenDuration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.DailyAttendanceRepository,
		deps.Repos.SessionAttendanceRepository,
	)
	deps.ReportService = appServices.NewReportService()
	deps.OrgService = appServices.NewOrgService(
		deps.Repos.SchoolRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.CourseRepository,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, cfg, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.OrgController = appControllers.NewOrgController(deps.OrgService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService, deps.ReportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Register the fixed-set field validators used by binding tags
	appMiddleware.RegisterCustomValidators()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.OrgController,
		deps.StudentController,
		deps.AttendanceController,
		deps.AuthMiddleware,
	)

	return router
}
