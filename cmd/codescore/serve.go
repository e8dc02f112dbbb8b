package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/codescore/internal/engine"
	"github.com/dshills/codescore/internal/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type serveFlags struct {
	listen  string
	profile profileFlags
}

func newServeCmd() *cobra.Command {
	f := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVar(&f.listen, "listen", "", "Listen address (overrides LISTEN_ADDRESS)")
	f.profile.register(cmd)
	return cmd
}

func runServe(ctx context.Context, f *serveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	info, err := server.NewSystemInfo()
	if err != nil {
		return exitError(3, "invalid configuration: %v", err)
	}
	if f.listen != "" {
		info.ListenAddress = f.listen
	}
	info.ApplyLogLevel()

	prof, err := f.profile.load()
	if err != nil {
		return err
	}
	log.Infof("Scoring profile = %s, max upload = %d bytes, cache size = %d", prof.Name, info.MaxUploadBytes, info.CacheSize)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(info, engine.New(prof)).Run(ctx)
}
