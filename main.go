package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/bar-app/config"
	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/router"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.SetLogLevel(cfg.LogLevel)

	loc, _ := cfg.Location()
	utils.SetLocation(loc)
	utils.ConfigureJWT(cfg.JWTSecret, cfg.TokenTTL)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	store := database.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	state := services.LoadState(store)

	var persister services.Persister
	var monitor *services.ChangeMonitor
	if cfg.PersistInterval > 0 {
		monitor = services.NewChangeMonitor(store)
		monitor.Interval = cfg.PersistInterval
		monitor.Start()
		persister = monitor
	} else {
		persister = services.SyncPersister{Store: store}
	}

	bar := services.NewBar(state, persister)
	bar.FlushAll()
	utils.InfoLogger.Printf("Loaded %d tables, %d menu items, %d closed orders",
		len(state.Tables), len(state.Menu), len(state.History))

	r, err := router.SetupRouter(bar, router.Options{
		ManagerPasscode: cfg.ManagerPasscode,
		CORSOrigin:      cfg.CORSOrigin,
	})
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.InfoLogger.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}

	// Simpan perubahan terakhir sebelum keluar
	if monitor != nil {
		monitor.Stop()
	}
	utils.InfoLogger.Println("Server exited")
}
