package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/geekcache/geekcache/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server for geekcache over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			server := mcp.NewServer(a.ops, version)
			return server.Run(ctx)
		},
	}

	return cmd
}
