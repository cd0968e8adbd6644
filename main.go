package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexandreDecan/pcorr/adapters/report"
	"github.com/AlexandreDecan/pcorr/app"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/api"
	"github.com/AlexandreDecan/pcorr/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(appConfig.Log.Level)
	gin.SetMode(appConfig.Server.GinMode)

	reports := app.NewReportService(report.Text{}, logger)
	handler := api.NewHandler(reports, appConfig.Report, logger)

	server := &http.Server{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("pcorr API listening on %s (alpha=%v, sort=%v)", server.Addr, appConfig.Report.Alpha, appConfig.Report.Sort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed: %v", err)
	}
}
