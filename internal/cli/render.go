package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arloliu/rssifit"
)

// fitRow is one dataset line of the fit report.
type fitRow struct {
	File        string   `json:"file"`
	Name        string   `json:"name"`
	Fingerprint string   `json:"fingerprint,omitempty"`
	Groups      int      `json:"groups"`
	Samples     int      `json:"samples"`
	Kept        int      `json:"kept"`
	A           *float64 `json:"a,omitempty"`
	N           *float64 `json:"n,omitempty"`
	RSquared    *float64 `json:"r_squared,omitempty"`
	RMSE        *float64 `json:"rmse,omitempty"`
	Error       string   `json:"error,omitempty"`
}

func reportRow(path string, report *rssifit.Report) fitRow {
	ds, res := report.Dataset, report.Result

	kept := 0
	for _, g := range res.Groups {
		kept += len(g.Kept)
	}

	return fitRow{
		File:        path,
		Name:        ds.Name,
		Fingerprint: ds.FingerprintHex(),
		Groups:      ds.Len(),
		Samples:     ds.Samples(),
		Kept:        kept,
		A:           &res.Coefficients.A,
		N:           &res.Coefficients.N,
		RSquared:    &res.Model.RSquared,
		RMSE:        &res.Model.RMSE,
	}
}

func failedRow(path string, err error) fitRow {
	return fitRow{
		File:  path,
		Name:  filepath.Base(path),
		Error: err.Error(),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func render(w io.Writer, output string, rows []fitRow) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rows)
	default:
		_, err := fmt.Fprintln(w, renderTable(rows))

		return err
	}
}

func renderTable(rows []fitRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		if r.Error != "" {
			cells[i] = []string{r.Name, "-", "-", "-", "-", "-", "-", "FAILED: " + r.Error}
			continue
		}
		cells[i] = []string{
			r.Name,
			r.Fingerprint,
			strconv.Itoa(r.Groups),
			fmt.Sprintf("%d/%d", r.Kept, r.Samples),
			fmt.Sprintf("%.4f", *r.A),
			fmt.Sprintf("%.4f", *r.N),
			fmt.Sprintf("%.4f", *r.RSquared),
			"ok",
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("DATASET", "FINGERPRINT", "GROUPS", "KEPT", "A", "N", "R²", "STATUS").
		Rows(cells...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row].Error != "":
				return failStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
