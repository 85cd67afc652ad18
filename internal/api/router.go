package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/talentbridge/recruitment-client/docs"
	"github.com/talentbridge/recruitment-client/internal/api/handler"
	"github.com/talentbridge/recruitment-client/internal/api/middleware"
	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
)

const metricsSubsystem = "portal"

// Deps are the services the portal serves.
type Deps struct {
	Sessions   ports.SessionService
	Students   ports.StudentViews
	Recruiters ports.RecruiterViews
	// Probes are pinged by the readiness endpoint, keyed by dependency name.
	Probes map[string]ports.Pinger
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// @title        Recruitment portal
// @version      1.0
// @description  Local portal over the recruitment backend. One session per process; guarded views answer 303 when the session may not open them.
// @BasePath     /
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddleware(metricsSubsystem))

	// --- Operational endpoints (no session) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Probes)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session-aware routes ---
	authHandler := handler.NewAuthHandler(d.Sessions)
	studentHandler := handler.NewStudentHandler(d.Students)
	recruiterHandler := handler.NewRecruiterHandler(d.Recruiters)

	app := e.Group("", middleware.Session(d.Sessions))
	app.GET("/", authHandler.Home)
	app.POST("/login", authHandler.Login)
	app.POST("/register", authHandler.Register)
	app.POST("/logout", authHandler.Logout)
	app.GET("/me", authHandler.Me)

	student := app.Group("/student", middleware.RequireRoles(domain.RoleStudent))
	student.GET("/dashboard", studentHandler.Dashboard)
	student.GET("/profile", studentHandler.Profile)
	student.PUT("/profile", studentHandler.UpdateProfile)
	student.POST("/profile/resume", studentHandler.UploadResume)
	student.POST("/profile/skills", studentHandler.ExtractSkills)
	student.GET("/jobs", studentHandler.Jobs)
	student.GET("/jobs/:id", studentHandler.JobDetail)
	student.POST("/jobs/:id/apply", studentHandler.Apply)
	student.GET("/applications", studentHandler.Applications)
	student.POST("/applications/:id/withdraw", studentHandler.Withdraw)
	student.GET("/recommendations", studentHandler.Recommendations)

	recruiter := app.Group("/recruiter", middleware.RequireRoles(domain.RoleRecruiter))
	recruiter.GET("/dashboard", recruiterHandler.Dashboard)
	recruiter.GET("/jobs", recruiterHandler.Jobs)
	recruiter.POST("/jobs", recruiterHandler.CreateJob)
	recruiter.GET("/jobs/create", recruiterHandler.NewJob)
	recruiter.POST("/jobs/create", recruiterHandler.CreateJob)
	recruiter.GET("/jobs/:id", recruiterHandler.Job)
	recruiter.PUT("/jobs/:id", recruiterHandler.UpdateJob)
	recruiter.DELETE("/jobs/:id", recruiterHandler.DeleteJob)
	recruiter.GET("/applications", recruiterHandler.Applications)
	recruiter.GET("/applications/:id", recruiterHandler.Application)
	recruiter.PUT("/applications/:id/status", recruiterHandler.UpdateStatus)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
