package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekaraman/focusflow/cmd/focusflow/mcp"
)

var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Aliases: []string{"serve-mcp"},
	Short:   "Start MCP server for assistant integration",
	Long: `Start an MCP (Model Context Protocol) server that lets an assistant
log sessions and read your focus statistics.

Configure in Claude Desktop's config file (~/.config/claude/config.json):
  {
    "mcpServers": {
      "focusflow": {
        "command": "focusflow",
        "args": ["mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := mcp.StartServer(dbPath); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
