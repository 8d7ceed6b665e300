package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"booq/internal/domain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <filename>...",
	Short: "Show how image filenames are interpreted",
	Long: `Classify image filenames with the configured order prefixes: the item
key, whether the file is a duplicate variant that sync deletes, or a foreign
file that is never touched.

Examples:
  booq-cli classify BN00561.jpg BN00561_2.jpg cover.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range args {
			c := domain.Classify(name, cfg.Prefixes)
			key, ok := c.Key.Get()
			switch {
			case !c.Managed:
				fmt.Fprintf(w, "%s\tforeign\n", name)
			case c.Duplicate:
				fmt.Fprintf(w, "%s\tduplicate\n", name)
			case ok:
				fmt.Fprintf(w, "%s\tmanaged\t%s\n", name, key)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
