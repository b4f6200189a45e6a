package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/govalues/fixed/internal/accuracy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var demos = []struct {
	name string
	args []string
}{
	{"Mul", []string{"1.5", "-2.25"}},
	{"Div", []string{"1", "3"}},
	{"Sqrt", []string{"2"}},
	{"RSqrt", []string{"2"}},
	{"Rcp", []string{"3"}},
	{"Exp", []string{"1"}},
	{"Log", []string{"10"}},
	{"Log2", []string{"1000"}},
	{"Pow", []string{"2", "0.5"}},
	{"Sin", []string{"0.5"}},
	{"Cos", []string{"0.5"}},
	{"Tan", []string{"0.5"}},
	{"Asin", []string{"0.5"}},
	{"Acos", []string{"0.5"}},
	{"Atan", []string{"1"}},
	{"Atan2", []string{"1", "-1"}},
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print sample results with their floating-point references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, t, err := a.settings()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Function\tArguments\tResult\tReference\tError\n")
			fmt.Fprintf(tw, "--------\t---------\t------\t---------\t-----\n")
			for _, d := range demos {
				op, ok := accuracy.Lookup(d.name)
				if !ok {
					return errors.Wrapf(errUnknownFunc, "demo %q", d.name)
				}
				res, err := evaluate(op, f, t, d.args)
				if err != nil {
					return err
				}
				args := make([]float64, len(d.args))
				for i, s := range d.args {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return err
					}
					args[i] = f.Quantize(v)
				}
				got, want := toDouble(res), op.Ref(args)
				fmt.Fprintf(tw, "%v\t%v\t%v\t%.12g\t%.3g\n",
					op.FuncName(t), strings.Join(d.args, ", "), res, want, op.Err(args, got, want))
			}
			return tw.Flush()
		},
	}
}
