package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	contador "github.com/achyuta116/contador/lib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func newRootCmd() *cobra.Command {
	var configFile string
	v := viper.New()
	contador.SetDefaults(v)

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Counter, file reader and calculator web server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := contador.LoadConfig(v, configFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("addr", contador.DefaultAddr, "listen address")
	flags.String("file", contador.DefaultFile, "file read by /obtener_archivo")
	flags.Bool("store-file-content", false, "show the last file read on the home page")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "text", "text or json")
	flags.String("kafka-broker", "", "kafka broker for events, empty disables publishing")
	flags.String("kafka-topic", contador.DefaultTopic, "kafka topic for events")
	flags.Duration("shutdown-timeout", 5*time.Second, "graceful shutdown deadline")

	for _, name := range []string{"addr", "file", "store-file-content", "log-level", "log-format", "kafka-broker", "kafka-topic", "shutdown-timeout"} {
		v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}
	return cmd
}

func run(ctx context.Context, cfg contador.Config) error {
	log := cfg.NewLogger(os.Stderr)
	publisher := cfg.NewPublisher()
	defer publisher.Close()

	srv := contador.NewServer(contador.NewAppState(), contador.Options{
		File:             cfg.File,
		StoreFileContent: cfg.StoreFileContent,
		Logger:           log,
		Publisher:        publisher,
	})

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	httpServer := &http.Server{Handler: srv.Router()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", ln.Addr().String(), "file", cfg.File, "kafka", cfg.KafkaBroker != "")
		if err := httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	log.Info("exited gracefully")
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
