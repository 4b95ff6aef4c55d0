package cli

import (
	mcpadapter "github.com/t4sanity/t4sanity/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the t4sanity MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var scanRoot string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start t4sanity MCP server (stdio)",
		Long:  "Start the t4sanity MCP server using stdio transport. This lets AI assistants run sanity scans and read per-dataset results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if scanRoot == "" {
				scanRoot = "."
			}
			s := mcpadapter.NewSanityMCPServer(scanRoot)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&scanRoot, "path", "", "Scan root holding the dataset directories (defaults to current working directory)")

	return cmd
}
