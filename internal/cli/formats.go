package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphport/graphport/pkg/format"
)

// formatsCommand creates the formats command listing codec capabilities.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported graph formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Supported formats"))
			for _, f := range format.Formats() {
				caps := ""
				switch {
				case format.CanRead(f) && format.CanWrite(f):
					caps = "read, write"
				case format.CanRead(f):
					caps = "read only"
				case format.CanWrite(f):
					caps = "write only"
				}
				printKeyValue(string(f), caps)
			}
			return nil
		},
	}
}
