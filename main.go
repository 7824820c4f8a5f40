package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paylink/bootstrap"
	btsConfig "paylink/config"
	"paylink/pkg/config"
	"paylink/pkg/database"
	"paylink/pkg/paylink"

	"github.com/gin-gonic/gin"
)

// register configuration sections before anything reads them
func init() {
	btsConfig.Initialize()
}

// App wraps the HTTP server for graceful shutdown.
type App struct {
	server *http.Server
}

func main() {
	env := parseFlags()

	service, err := setupApplication(env)
	if err != nil {
		log.Fatalf("application bootstrap failed: %v", err)
	}

	router := setupServer(service)

	app := &App{
		server: &http.Server{
			Addr:    ":" + config.Get("app.port"),
			Handler: router,
		},
	}

	app.start()
}

// parseFlags reads the --env flag selecting the .env file variant.
func parseFlags() string {
	var env string
	flag.StringVar(&env, "env", "", "load a .env file variant, e.g. --env=testing loads .env.testing")
	flag.Parse()
	return env
}

// setupApplication initializes configuration, logging, storage and the
// payment-link service.
func setupApplication(env string) (*paylink.Service, error) {
	config.InitConfig(env)

	bootstrap.SetupLogger()

	bootstrap.SetupDB()

	bootstrap.SetupRedis()

	gatewayClient := bootstrap.SetupGateway()

	service := paylink.NewService(database.DB, gatewayClient, config.GetString("app.url"))

	return service, nil
}

// setupServer configures the gin engine.
func setupServer(service *paylink.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	bootstrap.SetupRoute(router, service)

	return router
}

// start runs the server and handles graceful shutdown on SIGINT/SIGTERM.
func (a *App) start() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server starting, listening on %s\n", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
