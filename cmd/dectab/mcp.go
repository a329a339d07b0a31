package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/pkg/adapters/mcp"
	"github.com/aretw0/dectab/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Starts dectab as an MCP Server so that AI agents can recognize decision tables as a tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, _ := cmd.Flags().GetString("transport")
			port, _ := cmd.Flags().GetInt("port")

			// Logs go to stderr so they never corrupt JSON-RPC on stdout.
			logger, err := newLogger(cmd, os.Stderr)
			if err != nil {
				return err
			}

			tk := dectab.New(dectab.WithLogger(logger))
			srv := mcp.NewServer(tk, memory.NewStore(), mcp.WithLogger(logger))

			switch transport {
			case "stdio":
				logger.Info("Starting dectab MCP Server (Stdio)")
				return srv.ServeStdio()
			case "sse":
				logger.Info("Starting dectab MCP Server (SSE)", "port", port)
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				logger.Info("MCP Server stopped gracefully")
				return nil
			default:
				return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
			}
		},
	}
	cmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	cmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	return cmd
}
