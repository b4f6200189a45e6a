// Command fixdemo evaluates and measures the deterministic fixed-point
// functions of the fixed32 and fixed64 packages.
//
// Usage:
//
//	fixdemo [flags] eval <function> <argument>...
//	fixdemo [flags] demo
//	fixdemo [flags] accuracy [function...]
//
// Flags of eval must precede the function name, so negative arguments
// are not mistaken for flags.
//
// Examples:
//
//	fixdemo eval --format 64 --tier fast sqrt 2
//	fixdemo eval atan2 1 -1
//	fixdemo eval --on-invalid log log -1
//	fixdemo accuracy --samples 100000 sin cos
//	fixdemo accuracy --all
package main

import (
	"io"
	"os"

	"github.com/govalues/fixed"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and restores the invalid argument
// handler on return.
func run(args []string, stdout, stderr io.Writer) error {
	a := newApp(stderr)
	defer a.restore()

	root := a.rootCmd()
	root.AddCommand(
		a.evalCmd(),
		a.demoCmd(),
		a.accuracyCmd(),
	)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

type app struct {
	format    string
	tier      string
	onInvalid string
	verbose   bool

	logger *logrus.Logger
	prev   fixed.Handler
}

func newApp(stderr io.Writer) *app {
	logger := logrus.New()
	logger.SetOutput(stderr)
	return &app{logger: logger}
}

func (a *app) restore() {
	if a.prev != nil {
		fixed.SetHandler(a.prev)
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fixdemo",
		Short:        "Evaluate and measure deterministic fixed-point functions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				a.logger.SetLevel(logrus.DebugLevel)
			}
			h, err := handler(a.onInvalid, a.logger)
			if err != nil {
				return err
			}
			a.prev = fixed.SetHandler(h)
			a.logger.WithFields(logrus.Fields{
				"format":     a.format,
				"tier":       a.tier,
				"on-invalid": a.onInvalid,
			}).Debug("configured")
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.format, "format", "f", "64", "fixed-point format: 32 (Q16.16) or 64 (Q32.32)")
	flags.StringVarP(&a.tier, "tier", "t", "precise", "function tier: precise, fast or fastest")
	flags.StringVar(&a.onInvalid, "on-invalid", "trap", "invalid argument policy: trap, ignore or log")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
