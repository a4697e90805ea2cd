package bootstrap

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/gpacalc/internal/app/controllers"
	appRepos "github.com/yigit/gpacalc/internal/app/repositories"
	appRoutes "github.com/yigit/gpacalc/internal/app/routes"
	appServices "github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/config"
	"github.com/yigit/gpacalc/internal/domain/grading"
	appMiddleware "github.com/yigit/gpacalc/internal/middleware"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/gpacalc/internal/pkg/auth"
	"github.com/yigit/gpacalc/internal/pkg/helpers"
	"github.com/yigit/gpacalc/internal/pkg/i18n"
	"github.com/yigit/gpacalc/internal/pkg/logger"
)

// ConfigPathEnv overrides the default config file location
const ConfigPathEnv = "CONFIG_PATH"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Scale             *grading.GradeScale
	Catalog           *i18n.Catalog
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	GPAService        appServices.GPAService     // Interface type
	SessionService    appServices.SessionService // Interface type
	SessionController *appControllers.SessionController
	GPAController     *appControllers.GPAController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Logger            zerolog.Logger
}

// ConfigPath returns the config file to load
func ConfigPath() string {
	if path := strings.TrimSpace(os.Getenv(ConfigPathEnv)); path != "" {
		return path
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.Scale, err = cfg.GradeScale()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build grade scale")
		return nil, err
	}
	lgr.Info().Strs("grades", deps.Scale.Symbols()).Msg("Grade scale loaded")

	deps.Catalog, err = i18n.Load()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load locale catalog")
		return nil, err
	}

	deps.Repos = appRepos.NewRepositories(deps.Scale)

	secret := cfg.Session.Secret
	if secret == "" {
		secret = uuid.NewString()
		lgr.Warn().Msg("No session secret configured, using a generated one")
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   secret,
		TokenExp:    helpers.ParseDuration(cfg.Session.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.GPAService = appServices.NewGPAService(deps.Repos.SessionRepository, deps.Scale, lgr)
	deps.SessionService = appServices.NewSessionService(deps.Repos.SessionRepository, deps.JWTService, lgr)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.JWTService)

	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.GPAController = appControllers.NewGPAController(deps.GPAService, deps.Catalog)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.Locale(deps.Catalog, cfg.I18n.DefaultLocale))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.SessionController,
		deps.GPAController,
		deps.SessionMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	router.NoRoute(func(c *gin.Context) {
		appMiddleware.HandleAPIError(c, apperrors.NewResourceNotFoundError("route not found: "+c.Request.URL.Path))
	})

	return router
}
