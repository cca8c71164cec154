package main

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "perfumevault/internal/log"
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

type rootOptions struct {
	output   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "vaultctl",
		Short: "Evaluate perfume formulas against IFRA limits",
		Long: `vaultctl reads a formula file and reports its concentration figures,
IFRA certificate or scaled production quantities.

A formula file is JSON:

  {
    "name": "Aurum Nocturne",
    "ifra_category": "cat4",
    "ingredients": [
      {"name": "Bergamot Oil", "weight": 120, "ifra_limit": 0.02, "price_per_unit": 0.12},
      {"name": "Ambroxan", "weight": 50, "dilution": 0.1}
    ]
  }

Dilution and ifra_limit are fractions. Omit them for neat or unrestricted materials.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputJSON && opts.output != outputTable {
				return fmt.Errorf("unsupported output %q (want %s or %s)", opts.output, outputJSON, outputTable)
			}
			applog.ReplaceLogger(applog.NewWriterLogger(cmd.ErrOrStderr()))
			return applog.SetLevel(opts.logLevel)
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "output format: json or table")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newEvaluateCmd(opts),
		newCertificateCmd(opts),
		newScaleCmd(opts),
		newCategoriesCmd(opts),
	)
	return root
}
