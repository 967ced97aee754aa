// SPDX-License-Identifier: MIT

package main

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tfidf/internal/config"
	"github.com/katalvlaran/tfidf/internal/logger"
	"github.com/katalvlaran/tfidf/internal/server"
	"github.com/katalvlaran/tfidf/vectorize"
)

func newServeCommand() *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the vectorizers as a JSON HTTP API",
		Long: `serve listens for POST /v1/counts, /v1/tfidf, /v1/similarity and /v1/model
requests carrying {"documents": [...]} and answers with JSON. It stops
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", def.Server.Addr, "Listen address")
	cmd.Flags().Int("max-documents", def.Server.MaxDocuments, "Reject requests with more documents than this")
	cmd.Flags().Int64("max-body-bytes", def.Server.MaxBodyBytes, "Reject request bodies larger than this")
	cmd.Flags().Int("max-cells", def.Server.MaxCells, "Reject corpora whose documents × vocabulary exceeds this")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	log := logger.FromContext(ctx).With("cmd", cmd.Name())

	policy, err := vectorize.ParseEmptyDocumentPolicy(cfg.Vectorize.EmptyDocuments)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		MaxDocuments:    cfg.Server.MaxDocuments,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		MaxCells:        cfg.Server.MaxCells,
		EmptyDocuments:  policy,
	}, log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
