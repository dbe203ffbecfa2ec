package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"lineagesim/sim"
)

// writeResult writes counts.tsv and cells.tsv into dir, creating it if
// needed.
func writeResult(dir string, res *sim.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeCounts(filepath.Join(dir, "counts.tsv"), res); err != nil {
		return err
	}
	return writeCells(filepath.Join(dir, "cells.tsv"), res)
}

// writeCounts emits one row per cell: cell id followed by per-gene counts.
func writeCounts(path string, res *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	nc, ng := res.Counts.Dims()
	header := make([]string, 1, ng+1)
	header[0] = "cell"
	for g := 0; g < ng; g++ {
		header = append(header, fmt.Sprintf("gene_%d", g))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	record := make([]string, ng+1)
	for i := 0; i < nc; i++ {
		row, err := res.Counts.Row(i)
		if err != nil {
			return err
		}
		record[0] = fmt.Sprintf("cell_%d", i)
		for g, v := range row {
			record[g+1] = strconv.FormatInt(v, 10)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// writeCells emits per-cell metadata: lineage address, pseudotime and the
// library scale factor.
func writeCells(path string, res *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write([]string{"cell", "branch", "bin", "offset", "time", "scale_factor"}); err != nil {
		return err
	}
	for i, c := range res.Cells {
		record := []string{
			fmt.Sprintf("cell_%d", i),
			c.Branch,
			strconv.Itoa(c.Bin),
			strconv.FormatFloat(c.Offset, 'g', -1, 64),
			strconv.FormatFloat(c.Time, 'g', -1, 64),
			strconv.FormatFloat(c.ScaleFactor, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
