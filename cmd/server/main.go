package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		logging.Fatal("invalid database configuration", "error", err)
	}
	defer pool.Close()

	// 初期化はベストエフォート。DB が落ちていてもプロセスは起動し、
	// /api/health が unhealthy を返す。
	if err := pool.Ping(ctx); err != nil {
		slog.Error("database unreachable at startup", "error", err)
	} else if err := repository.InitSchema(ctx, pool); err != nil {
		slog.Error("schema init failed", "error", err)
	} else {
		slog.Info("database tables are ready")
		if err := repository.SeedSampleData(ctx, pool); err != nil {
			slog.Error("sample data seed failed", "error", err)
		}
	}

	messageRepo := repository.NewPgMessageRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	skillRepo := repository.NewPgSkillRepository(pool)
	visitorRepo := repository.NewPgVisitorRepository(pool)
	contactService := service.NewContactService(messageRepo)
	projectService := service.NewProjectService(projectRepo)
	skillService := service.NewSkillService(skillRepo)
	analyticsService := service.NewAnalyticsService(visitorRepo)

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	projectHandler := handler.NewProjectHandler(projectService)
	skillHandler := handler.NewSkillHandler(skillService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	pages := handler.NewPageHandler("./public")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact", contactHandler.List)

	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/featured", projectHandler.Featured)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.HandleFunc("POST /api/projects", projectHandler.Create)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.Delete)

	mux.HandleFunc("GET /api/skills", skillHandler.List)
	mux.HandleFunc("GET /api/skills/category/{category}", skillHandler.ByCategory)
	mux.HandleFunc("GET /api/skills/{id}", skillHandler.Get)
	mux.HandleFunc("POST /api/skills", skillHandler.Create)
	mux.HandleFunc("PUT /api/skills/{id}", skillHandler.Update)
	mux.HandleFunc("DELETE /api/skills/{id}", skillHandler.Delete)

	mux.HandleFunc("POST /api/analytics/track", analyticsHandler.Track)
	mux.HandleFunc("GET /api/analytics/stats", analyticsHandler.Stats)
	mux.HandleFunc("GET /api/analytics/visitors", analyticsHandler.Visitors)

	// 静的ページ
	mux.HandleFunc("GET /{$}", pages.Page("index.html"))
	mux.HandleFunc("GET /about", pages.Page("about.html"))
	mux.HandleFunc("GET /skills", pages.Page("skills.html"))
	mux.HandleFunc("GET /projects", pages.Page("projects.html"))
	mux.HandleFunc("GET /contact", pages.Page("contact.html"))
	mux.Handle("GET /", pages.Static())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
