package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finlens/internal/auth"
	"finlens/internal/config"
	"finlens/internal/handler"
	"finlens/internal/provider"
	"finlens/internal/service"
	"finlens/internal/translate"
	"finlens/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "finlens/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initTracerFunc         = tracing.InitTracer
	fatalfFunc             = log.Fatalf
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// corsConfig allows a separately hosted browser UI to call the API. An
// origin list of "*" opens the API to any origin.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// @title           Finlens API
// @version         0.1.0
// @description     Stateless proxy for Finviz quotes, screener exports and bilingual news summaries.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()
	if err := cfg.Validate(); err != nil {
		fatalfFunc("invalid configuration: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		fatalfFunc("failed to initialize tracer: %v", err)
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	timeout := time.Duration(cfg.HTTPTimeoutSecs) * time.Second

	// Providers and services: everything is rebuilt per request, so this is
	// the only wiring the process ever does.
	finviz := provider.NewFinvizProvider(tracer, timeout)
	export := provider.NewExportProvider(tracer, cfg.FinvizExportURL, timeout)
	articles := provider.NewArticleProvider(tracer, timeout)

	var translator translate.Translator
	if cfg.OpenAIAPIKey != "" {
		translator = translate.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	quoteService := service.NewQuoteService(tracer, finviz)
	screenerService := service.NewScreenerService(tracer, export)
	newsService := service.NewNewsService(tracer, articles, translator)

	// Login gate: only active when a password hash is configured.
	var issuer *auth.TokenIssuer
	var login *handler.LoginHandler
	if cfg.AuthEnabled() {
		issuer, err = auth.NewTokenIssuer(cfg.AuthTokenSecret, time.Duration(cfg.AuthTokenTTLSecs)*time.Second)
		if err != nil {
			fatalfFunc("invalid auth configuration: %v", err)
			return
		}
		login = handler.NewLoginHandler(cfg.AuthPasswordHash, issuer)
	}

	h := handler.New(tracer, quoteService, screenerService, newsService, login)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("finlens"))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	h.RegisterRoutes(r, handler.BearerAuth(issuer))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
