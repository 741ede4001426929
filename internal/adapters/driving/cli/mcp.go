package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/planar/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve geometry tools over the Model Context Protocol",
	Long: `Starts an MCP server exposing the parse_point, distance and area tools
and the planar://settings and planar://kinds/{kind} resources.

By default the server speaks over stdio. Use --http to listen on an
address with the streamable HTTP transport instead.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "listen address for the HTTP transport (e.g. localhost:8090)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if geometryService == nil {
		return errors.New("geometry service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Geometry: geometryService,
		Settings: settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if mcpHTTPAddr != "" {
		cmd.PrintErrf("MCP server listening on %s\n", mcpHTTPAddr)
		return server.RunHTTP(ctx, mcpHTTPAddr)
	}
	return server.Run(ctx)
}
