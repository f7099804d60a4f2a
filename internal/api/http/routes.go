package http

import (
	"github.com/go-chi/chi/v5"

	auth "github.com/mind-engage/eduport/internal/auth/middleware"
	"github.com/mind-engage/eduport/internal/ratelimit"
	"github.com/mind-engage/eduport/internal/rbac"
)

// Mount registers the /api routes on r.
func Mount(r chi.Router, p *Pipeline, a *auth.AuthService, lim *ratelimit.Limiter, version string, db Pinger, ttlHours int) {
	r.Get("/api/health", HealthHandler(version, db))
	r.Get("/api/templates", TemplatesHandler(p.Svc.Kinds()))

	// anonymous callers may convert; a token raises the tier
	r.Group(func(pr chi.Router) {
		pr.Use(auth.OptionalJWT(a), lim.Middleware)
		pr.With(rbac.Require(rbac.PermConvertSingle)).
			Post("/api/convert", ConvertHandler(p))
		pr.With(rbac.Require(rbac.PermConvertSingle)).
			Post("/api/convert/preview", PreviewHandler(p.Svc))
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(a), lim.Middleware)
		pr.With(rbac.Require(rbac.PermConvertBulk)).
			Post("/api/bulk", BulkHandler(p))
		pr.With(rbac.Require(rbac.PermConversionsView)).
			Get("/api/conversions", ListConversionsHandler(p.Ledger))
		pr.With(rbac.Require(rbac.PermPackagesDownload)).
			Get("/api/packages/{id}", DownloadPackageHandler(p.Ledger, p.Blobs))
		pr.With(rbac.Require(rbac.PermPackagesCleanup)).
			Delete("/api/packages", CleanupPackagesHandler(p.Blobs, ttlHours))
	})
}
