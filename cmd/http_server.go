package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/curricuforge/curricuforge/internal"
	"github.com/curricuforge/curricuforge/internal/content"
	"github.com/curricuforge/curricuforge/internal/department"
	"github.com/curricuforge/curricuforge/internal/generator"
	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/internal/navigation"
	"github.com/curricuforge/curricuforge/internal/preview"
	"github.com/curricuforge/curricuforge/internal/transport/rest"
	"github.com/curricuforge/curricuforge/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle workspace API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config          *internal.Config
	Logger          *slog.Logger
	Router          *chi.Mux
	Session         *identity.Session
	Ledger          *content.Ledger
	Surface         *preview.Surface
	ContentService  *content.Service
	GeneratorClient *generator.Client
	Directory       *department.Directory
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	identityHandler := identity.NewHandler(deps.Session)
	contentHandler := content.NewHandler(deps.ContentService, deps.GeneratorClient)
	previewHandler := preview.NewHandler(deps.Surface, deps.ContentService)
	navHandler := navigation.NewHandler()
	deptHandler := department.NewHandler(deps.Directory)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.Session,
		deps.Ledger,
		identityHandler,
		contentHandler,
		previewHandler,
		navHandler,
		deptHandler,
		deps.Config.Server.AllowedOrigins,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Format, config.Logging.Level)
	lg := logger.LoggerWrapper()

	session := identity.NewSession(lg)
	ledger := content.NewLedger()
	surface := preview.NewSurface()

	// a focused artifact never outlives its session
	session.OnLogout(surface.Clear)

	contentService := content.NewService(ledger, surface, nil, lg)

	genClient := generator.NewClient(generator.Config{
		APIURL:  config.Generator.APIURL,
		APIKey:  config.Generator.APIKey,
		Model:   config.Generator.Model,
		Timeout: config.Generator.Timeout,
	}, lg)

	return &Dependencies{
		Config:          config,
		Logger:          lg,
		Router:          chi.NewRouter(),
		Session:         session,
		Ledger:          ledger,
		Surface:         surface,
		ContentService:  contentService,
		GeneratorClient: genClient,
		Directory:       department.NewDirectory(),
	}, nil
}
