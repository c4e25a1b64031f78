// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/isomap/isomap"
)

// Output formats.
const (
	formatCSV  = "csv"
	formatJSON = "json"
)

// report is the JSON document written by embed.
type report struct {
	RunID             string      `json:"run_id"`
	Source            string      `json:"source"`
	Samples           int         `json:"samples"`
	Components        int         `json:"components"`
	Embedding         [][]float64 `json:"embedding"`
	Eigenvalues       []float64   `json:"eigenvalues"`
	ExplainedVariance []float64   `json:"explained_variance"`
	Stress            float64     `json:"stress"`
	Reached           int         `json:"reached"`
	Connected         bool        `json:"connected"`
}

func newReport(runID, source string, res *isomap.Result) report {
	rows, cols := res.Embedding.Shape()
	return report{
		RunID:             runID,
		Source:            source,
		Samples:           rows,
		Components:        cols,
		Embedding:         res.Embedding.ToRows(),
		Eigenvalues:       res.Eigenvalues,
		ExplainedVariance: res.ExplainedVariance,
		Stress:            res.Stress,
		Reached:           res.Connectivity.Reached,
		Connected:         res.Connectivity.Connected,
	}
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// writeCSV writes one row per sample with a y1..yk header.
func writeCSV(w io.Writer, res *isomap.Result) error {
	cw := csv.NewWriter(w)
	rows := res.Embedding.ToRows()
	_, cols := res.Embedding.Shape()

	header := make([]string, cols)
	for j := range header {
		header[j] = fmt.Sprintf("y%d", j+1)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, cols)
	for _, row := range rows {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
