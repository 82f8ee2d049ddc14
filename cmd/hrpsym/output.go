package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hrpsym/shape"
	"github.com/katalvlaran/hrpsym/symmetry"
)

// countDoc is the JSON shape of `count`.
type countDoc struct {
	Dims         shape.Dims `json:"dims"`
	Vertices     uint64     `json:"vertices"`
	Permutations uint64     `json:"permutations"`
}

// permsDoc is the JSON shape of `perms`.
type permsDoc struct {
	Dims         shape.Dims `json:"dims"`
	Vertices     int        `json:"vertices"`
	Permutations [][]uint32 `json:"permutations"`
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown --format %q (want %s or %s)", format, formatText, formatJSON)
}

func writeCount(w io.Writer, format string, dims shape.Dims, n, vertices uint64) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return json.NewEncoder(w).Encode(countDoc{Dims: nonNil(dims), Vertices: vertices, Permutations: n})
	}
	_, err := fmt.Fprintf(w, "%v: %s permutations of %s vertices\n",
		dims, humanize.Comma(int64(n)), humanize.Comma(int64(vertices)))
	return err
}

func writePerms(w io.Writer, format string, dims shape.Dims, perms []symmetry.Permutation) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		doc := permsDoc{Dims: nonNil(dims), Permutations: make([][]uint32, len(perms))}
		for i, p := range perms {
			doc.Permutations[i] = p
		}
		if len(perms) > 0 {
			doc.Vertices = len(perms[0])
		}
		return json.NewEncoder(w).Encode(doc)
	}
	for _, p := range perms {
		if _, err := fmt.Fprintln(w, joinIDs(p)); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(w io.Writer, r report) {
	status := "ok"
	if !r.ok() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%-12v %-4s %s\n", r.dims, status, r)
}

func writeOrbit(w io.Writer, dims shape.Dims, canon []uint8, via symmetry.Permutation, orbit [][]uint8) error {
	fmt.Fprintf(w, "%v canonical: %s (via %s)\n", dims, joinIDs(members(canon)), joinIDs(via))
	fmt.Fprintf(w, "orbit: %s images\n", humanize.Comma(int64(len(orbit))))
	for _, img := range orbit {
		if _, err := fmt.Fprintln(w, joinIDs(members(img))); err != nil {
			return err
		}
	}
	return nil
}

// members lists the vertices flagged in a 0/1 labeling.
func members(labels []uint8) []uint32 {
	var out []uint32
	for v, l := range labels {
		if l != 0 {
			out = append(out, uint32(v))
		}
	}
	return out
}

func joinIDs(ids []uint32) string {
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// nonNil keeps the 0-dimensional prism encoding as [] rather than null.
func nonNil(d shape.Dims) shape.Dims {
	if d == nil {
		return shape.Dims{}
	}
	return d
}
