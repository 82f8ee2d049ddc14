// Command hrpsym prints and checks the symmetry permutations of
// hyper-rectangular prisms of grid vertices.
//
//	hrpsym count 3x3x2
//	hrpsym perms --format json 2x2
//	hrpsym verify 2x2x2 4x3x4x3 1x2x1x2
//	hrpsym orbit --vertices 0,1,3 3x3
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/plan-systems/klog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		klog.Errorf("%v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// newApp assembles the CLI. Output goes to app.Writer so tests can capture it.
func newApp() *cli.App {
	return &cli.App{
		Name:  "hrpsym",
		Usage: "symmetry permutations of hyper-rectangular prisms",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "v",
				Value: 0,
				Usage: "log verbosity (klog -v)",
			},
		},
		Before: func(c *cli.Context) error {
			return setupLogging(c.Int("v"))
		},
		Commands: []*cli.Command{
			countCommand(),
			permsCommand(),
			verifyCommand(),
			orbitCommand(),
		},
	}
}

// setupLogging routes klog to stderr with fixed-width file names.
func setupLogging(verbosity int) error {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		return err
	}
	if err := fset.Set("v", strconv.Itoa(verbosity)); err != nil {
		return err
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})

	return nil
}
