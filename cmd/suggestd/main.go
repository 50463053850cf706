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

	"github.com/rs/zerolog"

	"suggestd/internal/config"
	"suggestd/internal/generator"
	"suggestd/internal/httpapi"
	"suggestd/internal/modelfile"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// Flags with environment variable defaults
	addr := flag.String("addr", envOr("SUGGESTD_ADDR", "127.0.0.1:8000"), "HTTP listen address, e.g. 127.0.0.1:8000")
	model := flag.String("model", envOr("SUGGESTD_MODEL", "~/models/llm"), "Path to a *.gguf model file or a directory to pick one from")
	corsOrigin := flag.String("cors-origin", envOr("SUGGESTD_CORS_ORIGIN", httpapi.DefaultCORSOrigin), "Single allowed CORS origin (the editor frontend)")
	ctxSize := flag.Int("ctx-size", 2048, "Model context size in tokens")
	threads := flag.Int("threads", 4, "Threads for in-process generation")
	logLevel := flag.String("log-level", envOr("SUGGESTD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	configPath := flag.String("config", os.Getenv("SUGGESTD_CONFIG"), "Optional config file (.yaml/.json/.toml); flags override")
	flag.Parse()

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config %s: %v", *configPath, err)
		}
		// File values fill in only where flags kept their defaults.
		if cfg.Addr != "" && !flagSet("addr") {
			*addr = cfg.Addr
		}
		if cfg.Model != "" && !flagSet("model") {
			*model = cfg.Model
		}
		if cfg.CORSOrigin != "" && !flagSet("cors-origin") {
			*corsOrigin = cfg.CORSOrigin
		}
		if cfg.CtxSize > 0 && !flagSet("ctx-size") {
			*ctxSize = cfg.CtxSize
		}
		if cfg.Threads > 0 && !flagSet("threads") {
			*threads = cfg.Threads
		}
		if cfg.LogLevel != "" && !flagSet("log-level") {
			*logLevel = cfg.LogLevel
		}
	}

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()

	mf, err := modelfile.Resolve(*model)
	if err != nil {
		log.Fatalf("failed to resolve model: %v", err)
	}

	backend := generator.DetectBackend()
	logger.Info().Str("backend", string(backend)).Str("model", mf.ID).Msg("loading generation pipeline")

	// Load failure aborts startup entirely; there is no fallback backend.
	pipeline, err := generator.NewPipeline(mf.Path, *ctxSize, *threads, backend)
	if err != nil {
		log.Fatalf("failed to load model %s: %v", mf.Path, err)
	}
	svc := generator.NewService(pipeline, mf.ID, logger)
	defer svc.Close()
	logger.Info().Str("model", mf.ID).Msg("model loaded successfully")

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)
	httpapi.SetLogger(logger)
	httpapi.SetCORSOrigin(*corsOrigin)

	mux := httpapi.NewMux(svc)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", *addr).Str("cors_origin", *corsOrigin).Msg("suggestd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

// flagSet reports whether the named flag was passed on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
