package main

import (
	"fmt"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/fixed32"
	"github.com/govalues/fixed/fixed64"
	"github.com/govalues/fixed/internal/accuracy"
	"github.com/govalues/fixed/internal/poly"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	errUnknownFunc = errors.New("unknown function")
	errArity       = errors.New("wrong number of arguments")
)

// settings parses the format and tier flags.
func (a *app) settings() (accuracy.Format, poly.Tier, error) {
	f, err := accuracy.ParseFormat(a.format)
	if err != nil {
		return 0, 0, err
	}
	t, err := accuracy.ParseTier(a.tier)
	if err != nil {
		return 0, 0, err
	}
	return f, t, nil
}

func (a *app) evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <function> <argument>...",
		Short: "Evaluate a function on decimal arguments",
		Long: "Evaluate a function on decimal arguments.\n" +
			"Arguments are truncated toward zero to the selected format and\n" +
			"the result is printed with its exact decimal expansion.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, t, err := a.settings()
			if err != nil {
				return err
			}
			op, ok := accuracy.Lookup(args[0])
			if !ok {
				return errors.Wrapf(errUnknownFunc, "looking up %q", args[0])
			}
			if len(args)-1 != op.Arity {
				return errors.Wrapf(errArity, "%v takes %v, got %v", op.Name, op.Arity, len(args)-1)
			}
			res, err := evaluate(op, f, t, args[1:])
			if err != nil {
				return err
			}
			a.logger.WithFields(logrus.Fields{
				"func":   op.FuncName(t),
				"format": f,
				"args":   args[1:],
			}).Debug("evaluated")
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// evaluate parses the arguments in format f and calls the tier of op.
// Invalid arguments trapped by the handler are returned as errors.
func evaluate(op *accuracy.Op, f accuracy.Format, t poly.Tier, args []string) (fmt.Stringer, error) {
	var res fmt.Stringer
	switch f {
	case accuracy.Fixed32:
		xs := make([]fixed32.Fixed, len(args))
		for i, s := range args {
			x, err := fixed32.Parse(s)
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		if err := fixed.Catch(func() { res = op.Eval32(t, xs...) }); err != nil {
			return nil, err
		}
	default:
		xs := make([]fixed64.Fixed, len(args))
		for i, s := range args {
			x, err := fixed64.Parse(s)
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		if err := fixed.Catch(func() { res = op.Eval64(t, xs...) }); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func toDouble(v fmt.Stringer) float64 {
	switch v := v.(type) {
	case fixed32.Fixed:
		return fixed32.ToDouble(v)
	case fixed64.Fixed:
		return fixed64.ToDouble(v)
	}
	return 0
}
