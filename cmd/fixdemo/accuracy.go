package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/govalues/fixed/internal/accuracy"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) accuracyCmd() *cobra.Command {
	var (
		samples int
		seed    uint64
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "accuracy [function...]",
		Short: "Measure the errors of functions against float64 references",
		Long: "Measure the errors of functions against float64 references.\n" +
			"Without arguments every function is measured. With --all every\n" +
			"function is measured in every format and tier.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples <= 0 {
				return errors.Errorf("--samples must be positive, got %v", samples)
			}
			if all {
				if len(args) > 0 {
					return errors.New("--all does not accept function names")
				}
				return printReports(cmd.OutOrStdout(), accuracy.RunAll(samples, seed))
			}
			f, t, err := a.settings()
			if err != nil {
				return err
			}
			ops := accuracy.Ops()
			if len(args) > 0 {
				ops = ops[:0]
				for _, name := range args {
					op, ok := accuracy.Lookup(name)
					if !ok {
						return errors.Wrapf(errUnknownFunc, "looking up %q", name)
					}
					ops = append(ops, op)
				}
			}
			var reports []accuracy.Report
			for _, op := range ops {
				a.logger.WithFields(logrus.Fields{
					"func":    op.FuncName(t),
					"format":  f,
					"samples": samples,
				}).Debug("measuring")
				reports = append(reports, accuracy.Run(op, f, t, samples, seed))
			}
			return printReports(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 10000, "random arguments per input range")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed of the argument generator")
	cmd.Flags().BoolVar(&all, "all", false, "measure every function in every format and tier")
	return cmd
}

func printReports(w io.Writer, reports []accuracy.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Function\tFormat\tSamples\tAvg\tMax\tBits\tWorst\n")
	fmt.Fprintf(tw, "--------\t------\t-------\t---\t---\t----\t-----\n")
	for _, r := range reports {
		if r.Exact() {
			fmt.Fprintf(tw, "%v\t%v\t%v\texact\texact\texact\t\n", r.Op, r.Format, r.Samples)
			continue
		}
		worst := make([]string, len(r.Worst))
		for i, v := range r.Worst {
			worst[i] = strconv.FormatFloat(v, 'g', 10, 64)
		}
		fmt.Fprintf(tw, "%v\t%v\t%v\t%.3e\t%.3e\t%.2f\t%v\n",
			r.Op, r.Format, r.Samples, r.Avg, r.Max, r.Bits(), strings.Join(worst, ", "))
	}
	return tw.Flush()
}
