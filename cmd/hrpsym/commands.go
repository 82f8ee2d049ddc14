package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/hrpsym/hrpgraph"
	"github.com/katalvlaran/hrpsym/shape"
	"github.com/katalvlaran/hrpsym/symmetry"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func workersFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Value:   symmetry.DefaultWorkers,
		Usage:   "goroutines used to build permutations",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   formatText,
		Usage:   "output format: text or json",
	}
}

// dimsArg parses the single positional dims expression of a command.
func dimsArg(c *cli.Context) (shape.Dims, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected one dims expression, got %q", c.Command.Name, c.Args().Slice())
	}
	dims, err := shape.Parse(c.Args().First())
	if err != nil {
		return nil, errors.Wrap(err, c.Command.Name)
	}

	return dims, nil
}

// generateOptions maps CLI flags onto symmetry options.
func generateOptions(c *cli.Context) ([]symmetry.Option, error) {
	var opts []symmetry.Option
	if w := c.Int("workers"); w != symmetry.DefaultWorkers {
		if w < 1 {
			return nil, fmt.Errorf("--workers must be ≥ 1, got %d", w)
		}
		opts = append(opts, symmetry.WithWorkers(w))
	}
	if c.IsSet("max-elements") {
		limit := c.Uint64("max-elements")
		if limit == 0 {
			return nil, fmt.Errorf("--max-elements must be ≥ 1")
		}
		opts = append(opts, symmetry.WithMaxElements(limit))
	}

	return opts, nil
}

func countCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "print the number of symmetry permutations without building them",
		ArgsUsage: "DIMS",
		Flags:     []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			dims, err := dimsArg(c)
			if err != nil {
				return err
			}
			n, err := symmetry.Count(dims)
			if err != nil {
				return errors.Wrapf(err, "count %v", dims)
			}
			vertices, err := dims.VertexCount()
			if err != nil {
				return errors.Wrapf(err, "count %v", dims)
			}
			return writeCount(c.App.Writer, c.String("format"), dims, n, vertices)
		},
	}
}

func permsCommand() *cli.Command {
	return &cli.Command{
		Name:      "perms",
		Usage:     "print the symmetry permutations, one per line",
		ArgsUsage: "DIMS",
		Flags: []cli.Flag{
			formatFlag(),
			workersFlag(),
			&cli.Uint64Flag{
				Name:  "max-elements",
				Value: symmetry.DefaultMaxElements,
				Usage: "largest permutations×vertices product to build",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: 0,
				Usage: "print at most this many permutations (0 = all)",
			},
		},
		Action: func(c *cli.Context) error {
			dims, err := dimsArg(c)
			if err != nil {
				return err
			}
			opts, err := generateOptions(c)
			if err != nil {
				return err
			}
			start := time.Now()
			perms, err := symmetry.Generate(dims, opts...)
			if err != nil {
				return errors.Wrapf(err, "perms %v", dims)
			}
			klog.V(1).Infof("built %d permutations of %v in %s", len(perms), dims, time.Since(start))

			if limit := c.Int("limit"); limit > 0 && limit < len(perms) {
				perms = perms[:limit]
			}
			return writePerms(c.App.Writer, c.String("format"), dims, perms)
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "check count, bijection, distinctness and adjacency of each prism's permutations",
		ArgsUsage: "DIMS...",
		Flags:     []cli.Flag{workersFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("verify: expected at least one dims expression")
			}
			opts, err := generateOptions(c)
			if err != nil {
				return err
			}
			failed := 0
			for _, expr := range c.Args().Slice() {
				dims, err := shape.Parse(expr)
				if err != nil {
					return errors.Wrap(err, "verify")
				}
				rep, err := verify(dims, opts...)
				if err != nil {
					return errors.Wrapf(err, "verify %v", dims)
				}
				if !rep.ok() {
					failed++
					klog.Warningf("%v: %s", dims, rep)
				} else {
					klog.V(1).Infof("%v: ok", dims)
				}
				writeReport(c.App.Writer, rep)
			}
			if failed > 0 {
				return fmt.Errorf("verify: %d of %d prisms failed", failed, c.NArg())
			}
			return nil
		},
	}
}

// report summarizes the checks run by verify.
type report struct {
	dims       shape.Dims
	count      uint64
	generated  int
	bijections bool
	distinct   bool
	automorph  bool
}

func (r report) ok() bool {
	return uint64(r.generated) == r.count && r.bijections && r.distinct && r.automorph
}

func (r report) String() string {
	return fmt.Sprintf("count=%d generated=%d bijections=%t distinct=%t automorphisms=%t",
		r.count, r.generated, r.bijections, r.distinct, r.automorph)
}

// verify generates the permutations of dims and runs every structural check.
func verify(dims shape.Dims, opts ...symmetry.Option) (report, error) {
	rep := report{dims: dims, bijections: true, automorph: true}

	n, err := symmetry.Count(dims)
	if err != nil {
		return rep, err
	}
	rep.count = n

	perms, err := symmetry.Generate(dims, opts...)
	if err != nil {
		return rep, err
	}
	rep.generated = len(perms)
	rep.distinct = symmetry.Distinct(perms)

	g, err := hrpgraph.New(dims)
	if err != nil {
		return rep, err
	}
	for _, p := range perms {
		if !p.IsBijection() {
			rep.bijections = false
		}
		if !g.IsAutomorphism(p) {
			rep.automorph = false
		}
	}

	return rep, nil
}

func orbitCommand() *cli.Command {
	return &cli.Command{
		Name:      "orbit",
		Usage:     "print the canonical form and orbit of a vertex subset",
		ArgsUsage: "DIMS",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:     "vertices",
				Aliases:  []string{"s"},
				Usage:    "vertex ids of the subset",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			dims, err := dimsArg(c)
			if err != nil {
				return err
			}
			g, err := hrpgraph.New(dims)
			if err != nil {
				return errors.Wrapf(err, "orbit %v", dims)
			}
			labels := make([]uint8, g.VertexCount())
			for _, v := range c.IntSlice("vertices") {
				if v < 0 || v >= len(labels) {
					return fmt.Errorf("orbit: vertex %d outside [0,%d)", v, len(labels))
				}
				labels[v] = 1
			}

			perms, err := symmetry.Generate(dims)
			if err != nil {
				return errors.Wrapf(err, "orbit %v", dims)
			}
			canon, idx, err := symmetry.Canonical(perms, labels)
			if err != nil {
				return errors.Wrap(err, "orbit")
			}
			orbit, err := symmetry.Orbit(perms, labels)
			if err != nil {
				return errors.Wrap(err, "orbit")
			}
			return writeOrbit(c.App.Writer, dims, canon, perms[idx], orbit)
		},
	}
}
