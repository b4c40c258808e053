package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anjiri1684/faq_board/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "faqctl",
		Short: "Admin tooling for the FAQ board",
		Long: `faqctl runs maintenance tasks against the FAQ board's question store:
schema migration, offline exports and the pending-question digest.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.DigestCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
