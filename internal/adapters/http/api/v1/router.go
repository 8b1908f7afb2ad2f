package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/api/v1/handlers"
	authmw "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/middleware"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
)

type Router struct {
	auth         *handlers.AuthHandler
	users        *handlers.UserHandler
	jobs         *handlers.JobHandler
	applications *handlers.ApplicationHandler
	reports      *handlers.ReportHandler
	authMW       echo.MiddlewareFunc
	loginRateMW  echo.MiddlewareFunc
}

func NewRouter(auth *handlers.AuthHandler, users *handlers.UserHandler, jobs *handlers.JobHandler, applications *handlers.ApplicationHandler, reports *handlers.ReportHandler, authMW, loginRateMW echo.MiddlewareFunc) *Router {
	return &Router{
		auth:         auth,
		users:        users,
		jobs:         jobs,
		applications: applications,
		reports:      reports,
		authMW:       authMW,
		loginRateMW:  loginRateMW,
	}
}

func (r *Router) Register(g *echo.Group) {
	adminOnly := authmw.RequireRole(domain.RoleAdministrator)

	auth := g.Group("/auth")
	if r.loginRateMW != nil {
		auth.Use(r.loginRateMW)
	}
	auth.POST("/register", r.auth.Register)
	auth.POST("/login", r.auth.Login)
	auth.GET("/oauth/google", r.auth.GoogleLogin)
	auth.GET("/oauth/google/callback", r.auth.GoogleCallback)
	auth.POST("/verify", r.auth.VerifyToken)

	users := g.Group("/users", r.authMW, adminOnly)
	users.GET("", r.users.List)
	users.PATCH("/:id/make-admin", r.users.MakeAdmin)
	users.PATCH("/:id/revoke-admin", r.users.RevokeAdmin)

	jobs := g.Group("/jobs")
	jobs.GET("", r.jobs.List)
	jobs.GET("/:id", r.jobs.Get)
	jobs.POST("", r.jobs.Create, r.authMW, adminOnly)
	jobs.PUT("/:id", r.jobs.Update, r.authMW, adminOnly)
	jobs.DELETE("/:id", r.jobs.Delete, r.authMW, adminOnly)
	jobs.POST("/:id/apply", r.applications.Apply, r.authMW)
	jobs.GET("/:id/applications", r.applications.ListByJob, r.authMW, adminOnly)

	applications := g.Group("/applications", r.authMW)
	applications.GET("/me", r.applications.Mine)
	applications.GET("", r.applications.ListAll, adminOnly)
	applications.PATCH("/:id/status", r.applications.Decide, adminOnly)

	reports := g.Group("/reports", r.authMW, adminOnly)
	reports.GET("/summary", r.reports.Summary)
}
