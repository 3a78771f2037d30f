package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/brokerdesk/carrier-sales-api/internal/config"
	gateway "github.com/brokerdesk/carrier-sales-api/internal/gateways"
	"github.com/brokerdesk/carrier-sales-api/internal/handlers"
	"github.com/brokerdesk/carrier-sales-api/internal/repository"
	"github.com/brokerdesk/carrier-sales-api/internal/services"
	xhttp "github.com/brokerdesk/carrier-sales-api/pkg/http"
	"github.com/brokerdesk/carrier-sales-api/pkg/logger"
	"github.com/brokerdesk/carrier-sales-api/pkg/prom"
	"github.com/brokerdesk/carrier-sales-api/pkg/sqlite"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	prom.Create(config.Get().PromNamespace)

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	// verification calls can legitimately hold a response for the full
	// upstream timeout
	s.Use(xhttp.TimeoutMiddleware(config.Get().VerifyTimeout + 5*time.Second))
	s.Use(xhttp.CORSMiddleware(config.Get().AllowedOrigins))
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(prom.HTTPMetricsMiddleware)
	s.Use(xhttp.RecoverMiddleware)

	db, err := sqlite.Create(sqlite.Config{Path: config.Get().DatabasePath}, config.Get().AppEnv == "dev" && config.Get().AppDebug)
	if err != nil {
		logger.Error("failed opening database", "error", err, "path", config.Get().DatabasePath)
		return
	}

	// storage must be queryable before any traffic is accepted
	if err := repository.EnsureReady(context.Background(), db, config.Get().SeedPath); err != nil {
		logger.Fatal(err, "path", config.Get().SeedPath)
	}

	fmcsa, err := gateway.NewFMCSAClient(&gateway.Config{
		BaseURL: config.Get().FMCSABaseURL,
		WebKey:  config.Get().FMCSAWebKey,
		Timeout: config.Get().VerifyTimeout,
	})
	if err != nil {
		logger.Error("failed creating FMCSA client", "error", err)
		return
	}

	loadRepo := repository.NewLoadRepository(db)
	eventRepo := repository.NewCallEventRepository(db)

	// services
	loadService := services.NewLoadService(loadRepo)
	callService := services.NewCallService(eventRepo)
	verifyService := services.NewVerifyService(fmcsa)
	healthService := services.NewHealthService()

	// handlers
	loadHandler := handlers.NewLoadHandler(loadService)
	callHandler := handlers.NewCallHandler(callService)
	verifyHandler := handlers.NewVerifyHandler(verifyService)
	healthHandler := handlers.NewHealthHandler(healthService)

	handlers.RegisterLoadRoutes(s.Router, loadHandler)
	handlers.RegisterCallRoutes(s.Router, callHandler)
	handlers.RegisterVerifyRoutes(s.Router, verifyHandler)
	handlers.RegisterHealthRoutes(s.Router, healthHandler)
	s.Router.GET("/metrics", prom.Handler())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
