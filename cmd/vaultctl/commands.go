package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"perfumevault/internal/compliance"
	applog "perfumevault/internal/log"
	"perfumevault/internal/report"
)

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <formula.json>",
		Short: "Show concentrations, shares and IFRA design/final limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := loadFormula(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			id, err := formula.category()
			if err != nil {
				return err
			}

			started := time.Now()
			rows := formula.ingredients()
			figures := compliance.Evaluate(rows)
			var target *compliance.CategoryResult
			if result, ok := compliance.CertifyCategory(rows, id); ok {
				target = &result
			}
			applog.Debug(cmd.Context(), "formula evaluated", "name", formula.Name, "rows", len(rows), "duration", time.Since(started))

			view := report.Formula(figures, target)
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return writeFormulaTable(cmd.OutOrStdout(), formula.Name, view)
		},
	}
}

func newCertificateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "certificate <formula.json>",
		Short: "Evaluate the formula against every IFRA category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := loadFormula(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			views := report.Certificate(compliance.Certificate(formula.ingredients()))
			for _, v := range views {
				if !v.Compliant {
					applog.Warn(cmd.Context(), "category not compliant", "formula", formula.Name, "category", v.ID, "restricted", v.Restricted)
				}
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			return writeCertificateTable(cmd.OutOrStdout(), views)
		},
	}
}

func newScaleCmd(opts *rootOptions) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "scale <formula.json>",
		Short: "Scale the formula to a target quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target <= 0 {
				return errors.New("--target must be greater than zero")
			}
			formula, err := loadFormula(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			result, err := compliance.Scale(formula.ingredients(), target)
			if err != nil {
				return fmt.Errorf("scale %q: %w", formula.Name, err)
			}

			view := report.Scale(result)
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return writeScaleTable(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().Float64Var(&target, "target", 0, "target quantity in the formula's weight unit")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List IFRA product categories and their ceilings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			views := report.Categories(compliance.Categories())
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLIMIT\tDESCRIPTION")
			for _, c := range views {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, percent(c.Limit, 100), c.Description)
			}
			return w.Flush()
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFormulaTable(out io.Writer, name string, view report.FormulaView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if name != "" {
		fmt.Fprintf(w, "Formula:\t%s\n", name)
	}
	fmt.Fprintf(w, "Total weight:\t%.4f\n", view.TotalWeight)
	fmt.Fprintf(w, "Pure weight:\t%.4f (%.2f%% active)\n", view.TotalPure, view.ActiveRatio)
	fmt.Fprintf(w, "IFRA design limit:\t%.4f\n", view.IFRADesignLimit)
	fmt.Fprintf(w, "IFRA final limit:\t%.4f\n", view.IFRAFinalLimit)
	fmt.Fprintf(w, "Total cost:\t%.2f\n", view.TotalCost)
	if c := view.Category; c != nil {
		fmt.Fprintf(w, "%s:\t%s max, %s\n", c.Name, percent(c.LimitPercentage, 1), statusLabel(c.Compliant))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "INGREDIENT\tWEIGHT\tCONC\tPURE\tWEIGHT %\tPURE %\tDESIGN\tFINAL\tCOST")
	for _, row := range view.Ingredients {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%s\t%.2f\n",
			row.Name, row.Weight, row.Concentration, row.PureWeight,
			row.WeightPercentage, row.PurePercentage,
			calc(row.DesignCalc, row.DesignExceeded), calc(row.FinalCalc, row.FinalExceeded),
			row.Cost)
	}
	return w.Flush()
}

func writeCertificateTable(out io.Writer, views []report.CategoryView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tMAX %\tSTATUS\tRESTRICTED")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Name, percent(v.LimitPercentage, 1), statusLabel(v.Compliant), joinNames(v.Restricted))
	}
	return w.Flush()
}

func writeScaleTable(out io.Writer, view report.ScaleView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Target:\t%.4f\n", view.Target)
	fmt.Fprintf(w, "Factor:\t%.6f\n", view.Factor)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "INGREDIENT\tORIGINAL\tSCALED\tCOST")
	for _, item := range view.Items {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.2f\n", item.Name, item.Original, item.Scaled, item.Cost)
	}
	fmt.Fprintf(w, "TOTAL\t\t%.4f\t%.2f\n", view.Target, view.TotalCost)
	return w.Flush()
}

func percent(v *float64, scale float64) string {
	if v == nil {
		return "unrestricted"
	}
	return fmt.Sprintf("%.3f%%", *v*scale)
}

func calc(v *float64, exceeded bool) string {
	if v == nil {
		return "-"
	}
	if exceeded {
		return fmt.Sprintf("%.4f !", *v)
	}
	return fmt.Sprintf("%.4f", *v)
}

func statusLabel(ok bool) string {
	if ok {
		return "compliant"
	}
	return "not compliant"
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
