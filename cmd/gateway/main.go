package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	api "github.com/mind-engage/eduport/internal/api/http"
	auth "github.com/mind-engage/eduport/internal/auth/middleware"
	"github.com/mind-engage/eduport/internal/config"
	"github.com/mind-engage/eduport/internal/convert"
	"github.com/mind-engage/eduport/internal/conversions"
	"github.com/mind-engage/eduport/internal/db"
	"github.com/mind-engage/eduport/internal/formats/catalog"
	"github.com/mind-engage/eduport/internal/logging"
	"github.com/mind-engage/eduport/internal/ratelimit"
	"github.com/mind-engage/eduport/internal/storage"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logging.New("info", "json")
		boot.Fatal().Err(err).Msg("config")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- DB ---
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	dbh, err := db.Open(openCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("db open failed")
	}
	defer dbh.Close()

	// --- Conversion pipeline ---
	reg, err := catalog.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("adapter registry")
	}
	p := &api.Pipeline{
		Svc:              convert.New(reg, log),
		Ledger:           conversions.NewSQLStore(dbh),
		Log:              log,
		FreeMonthlyQuota: cfg.FreeMonthlyQuota,
		BulkMaxItems:     cfg.BulkMaxItems,
		BulkConcurrency:  cfg.BulkConcurrency,
	}
	if cfg.StorePackages {
		bs, err := storage.NewFSStore(cfg.BlobBasePath)
		if err != nil {
			log.Fatal().Err(err).Msg("blob store")
		}
		p.Blobs = bs
		go sweepPackages(ctx, bs, cfg.PackageTTLHours, log)
	}

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logging.AccessLog(log), middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Conversion-Id", "X-Conversion-Time-Ms", "X-Template-Type", "X-Conversion-Warnings", "X-Package-Key", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, auth.LoginConfig{
		AdminUser:     cfg.AdminUser,
		AdminPassHash: cfg.AdminPassHash,
		AllowDev:      cfg.Mode == config.ModeOffline,
	}))
	api.Mount(r, p, authSvc, ratelimit.New(nil), version, dbh, cfg.PackageTTLHours)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("mode", string(cfg.Mode)).Str("db", cfg.DBDriver).
		Strs("templates", reg.Kinds()).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}

// sweepPackages drops stored packages older than ttlHours, hourly.
func sweepPackages(ctx context.Context, bs storage.BlobStore, ttlHours int, log zerolog.Logger) {
	if ttlHours <= 0 {
		return
	}
	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := bs.Cleanup(ctx, time.Now().Add(-time.Duration(ttlHours)*time.Hour))
			if err != nil {
				log.Warn().Err(err).Msg("package cleanup")
				continue
			}
			if n > 0 {
				log.Info().Int("removed", n).Msg("package cleanup")
			}
		}
	}
}
