package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruitd/config"
	"recruitd/internal/auth"
	"recruitd/internal/db"
	"recruitd/internal/health"
	"recruitd/internal/jobs"
	"recruitd/internal/logs"
	"recruitd/internal/middleware"
	"recruitd/internal/models"
	"recruitd/internal/repo"
	"recruitd/internal/token"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	/* 1) Логи */
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	/* 2) DB (опционально: пустой driver — in-memory режим) */
	var store auth.Store
	if drv := a.cfg.Database.Driver; drv != "" {
		d, err := db.Open(drv, a.cfg.Database.DSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		a.db = d

		if err := a.db.AutoMigrate(
			&models.User{},
			&models.Login{},
			&models.Role{},
			&models.Page{},
			&models.UserRole{},
			&models.UserPage{},
			&models.RolePage{},
			&models.Job{}); err != nil {
			log.Fatalf("db migrate failed: %v", err)
		}
		if err := repo.SeedCatalog(a.db); err != nil {
			log.Fatalf("seed catalog failed: %v", err)
		}
		store = repo.NewUserStore(a.db)
	} else {
		ms := auth.NewMemoryStore()
		repo.SeedMemory(ms)
		store = ms
	}

	issuer := token.NewIssuer([]byte(a.cfg.Auth.TokenKey), a.cfg.Auth.TokenTTL)
	svc := auth.NewService(store, issuer)

	/* 3) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
	)

	/* 4) Health */
	health.RegisterRoutes(a.Router, a.db) // /healthz, /readyz

	/* 5) Auth: регистрация/логин + страничный гейт для вакансий */
	auth.RegisterRoutes(a.Router, auth.NewHandler(svc))

	/* 6) Вакансии — только при настроенной БД */
	if a.db != nil {
		jobs.RegisterRoutes(a.Router, jobs.New(repo.NewJobStore(a.db)), issuer)
	}

	/* (необязательно) вывести известные маршруты в лог при старте */
	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	// Жёсткие таймауты — это важно для production
	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
