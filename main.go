package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/WigiWigi1/QRCodeGen/api"
	"github.com/WigiWigi1/QRCodeGen/config"
	"github.com/WigiWigi1/QRCodeGen/qr"
	"github.com/WigiWigi1/QRCodeGen/store"
)

var version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "qrgen",
		Short: "QR code generation service",
	}

	// --- serve command -------------------------------------------------------
	var configPath string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the QR code HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	root.AddCommand(serveCmd)

	// --- encode command ------------------------------------------------------
	var outPath string
	var pixels int
	encodeCmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text as a QR code PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], outPath, pixels)
		},
	}
	encodeCmd.Flags().StringVarP(&outPath, "out", "o", "qrcode.png", "Output file path")
	encodeCmd.Flags().IntVar(&pixels, "size", qr.SizeMedium, "Image edge length in pixels")
	root.AddCommand(encodeCmd)

	// --- status command ------------------------------------------------------
	var statusAddr string
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check the running service status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(statusAddr)
		},
	}
	statusCmd.Flags().StringVar(&statusAddr, "addr", "http://localhost:8090", "Service HTTP address")
	root.AddCommand(statusCmd)

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qrgen %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe is the main service entrypoint that wires all components together.
func runServe(configPath string) error {
	// 1. Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}

	// 2. Setup logger
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	log.Info("starting qrgen", "version", version, "port", cfg.Port, "data_dir", cfg.DataDir)

	// 3. Open code archive
	st, err := store.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open code store: %w", err)
	}
	defer st.Close()

	// 4. Start retention sweeps
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.StartCleanupLoop(ctx, st, cfg.CleanupInterval.Duration, cfg.MaxAge.Duration, log)

	// 5. Start HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(&api.Server{
			Store:     st,
			Log:       log,
			Version:   version,
			StartTime: time.Now(),
			MaxAge:    cfg.MaxAge.Duration,
		}),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("service is running", "url", fmt.Sprintf("http://localhost:%d/", cfg.Port))

	// 6. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("goodbye")
	return nil
}

// runEncode generates a QR code PNG locally, without the server.
func runEncode(text, outPath string, pixels int) error {
	png, err := qr.Encode(qr.NormalizeLink(text), qr.Options{Pixels: pixels})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(outPath, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", outPath, len(png))
	return nil
}

// runStatus queries the service HTTP status endpoint.
func runStatus(addr string) error {
	resp, err := http.Get(addr + "/status")
	if err != nil {
		return fmt.Errorf("failed to reach service at %s: %w", addr, err)
	}
	defer resp.Body.Close()

	var buf [4096]byte
	n, _ := resp.Body.Read(buf[:])
	fmt.Println(string(buf[:n]))
	return nil
}
