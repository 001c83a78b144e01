package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/newslens/internal/certs"
	"github.com/Veraticus/newslens/internal/cli"
	"github.com/Veraticus/newslens/internal/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser dashboard",
		Long: `Serve the news detector dashboard over HTTP.

The dashboard has a "Detect News" tab for analysis and a "Model Info" tab.
A JSON API is exposed under /api/v1 for scripted use.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8501)")
	cmd.Flags().StringSlice("cors-origin", nil, "allowed CORS origins for the JSON API")
	cmd.Flags().Bool("tls", false, "serve HTTPS with a self-signed localhost certificate")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.cors_origins", cmd.Flags().Lookup("cors-origin"))
	_ = viper.BindPFlag("server.tls", cmd.Flags().Lookup("tls"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	opts := web.Options{
		Addr:           b.cfg.Server.Addr,
		GinMode:        b.cfg.Server.GinMode,
		CORSOrigins:    b.cfg.Server.CORSOrigins,
		RequestTimeout: b.cfg.Server.RequestTimeout,
	}

	scheme := "http"
	if b.cfg.Server.TLS {
		tlsCfg, tlsErr := certs.NewStore(b.cfg.Server.CertDir).TLSConfig()
		if tlsErr != nil {
			return fmt.Errorf("failed to prepare TLS certificate: %w", tlsErr)
		}
		opts.TLSConfig = tlsCfg
		scheme = "https"
	}

	srv, err := web.NewServer(b.engine, opts, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	info := b.engine.ModelInfo()
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("Dashboard listening on %s://%s (%s via %s)", scheme, b.cfg.Server.Addr, info.ModelID, info.Provider)))

	return srv.Run(cmd.Context())
}
