package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// BatchRow is one parsed member row of a batch workbook. Expected
// columns: shape, P, Mx, My, Lx, Ly, Lb, then optional Lz, Cb, U.
type BatchRow struct {
	Shape  string
	Config member.Config
	Demand member.Demands
}

// BatchResult pairs a row with its evaluation outcome. Rows that fail
// to parse or evaluate are kept with the failure message so the output
// sheet accounts for every input line.
type BatchResult struct {
	Row    int
	Shape  string
	Report member.Report
	Err    error
}

// ReadBatch parses member rows from the first sheet of a workbook. The
// first row is a header and is skipped.
func ReadBatch(path string) ([]BatchRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook %s: no member rows", path)
	}

	var batch []BatchRow
	for i := 1; i < len(rows); i++ {
		row, err := parseRow(rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		batch = append(batch, row)
	}
	return batch, nil
}

func parseRow(cells []string) (BatchRow, error) {
	if len(cells) < 7 {
		return BatchRow{}, fmt.Errorf("expected at least 7 columns (shape, P, Mx, My, Lx, Ly, Lb), got %d", len(cells))
	}
	row := BatchRow{Shape: cells[0]}

	values := make([]float64, 0, 9)
	for _, cell := range cells[1:] {
		if cell == "" {
			values = append(values, 0)
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return BatchRow{}, fmt.Errorf("bad numeric cell %q: %w", cell, err)
		}
		values = append(values, v)
	}

	row.Demand.P = values[0]
	row.Demand.Mx = values[1]
	row.Demand.My = values[2]
	row.Config.Lx = values[3]
	row.Config.Ly = values[4]
	row.Config.Lb = values[5]
	if len(values) > 6 {
		row.Config.Lz = values[6]
	}
	if len(values) > 7 {
		row.Config.Cb = values[7]
	}
	if len(values) > 8 {
		row.Config.U = values[8]
	}
	return row, nil
}

// RunBatch evaluates every row against the shape catalog with the
// given material.
func RunBatch(rows []BatchRow, m section.Material) []BatchResult {
	results := make([]BatchResult, 0, len(rows))
	for i, row := range rows {
		res := BatchResult{Row: i + 2, Shape: row.Shape}
		p, ok := section.Lookup(row.Shape)
		if !ok {
			res.Err = fmt.Errorf("shape %q not in catalog", row.Shape)
			results = append(results, res)
			continue
		}
		rep, err := member.Evaluate(p, m, row.Config, row.Demand)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.Report = rep
		results = append(results, res)
	}
	return results
}

// WriteBatch writes batch results to a new workbook.
func WriteBatch(results []BatchResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Row", "Shape", "Governing Limit State", "phi*Rn", "Max Utilization", "Status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, res := range results {
		cell := fmt.Sprintf("A%d", i+2)
		var row []interface{}
		switch {
		case res.Err != nil:
			row = []interface{}{res.Row, res.Shape, "", "", "", "ERROR: " + res.Err.Error()}
		case res.Report.OK:
			row = []interface{}{res.Row, res.Shape, res.Report.Governing.State.String(),
				res.Report.Governing.Design, res.Report.MaxUtilization, "OK"}
		default:
			row = []interface{}{res.Row, res.Shape, res.Report.Governing.State.String(),
				res.Report.Governing.Design, res.Report.MaxUtilization, "FAILS"}
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
