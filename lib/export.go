package lib

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mholt/archiver"
	"github.com/xuri/excelize/v2"
)

const (
	RESULTS_SHEET    = "divider-results"
	PARAMETERS_SHEET = "parameters"
)

// Report is one search with its inputs, as written to a spreadsheet.
type Report struct {
	Vin     float64
	Vtarget float64
	Config  EnumerationConfig
	Results []ResistorResult
}

func resultHeader(mode ErrorMode) []string {
	errorColumn := "Error (%)"
	if mode == ErrorAbsolute {
		errorColumn = "Error (V)"
	}

	return []string{
		"R1 (Ω)", "R2 (Ω)", "Vout (V)", errorColumn, "Current (A)",
		"P R1 (W)", "P R2 (W)", "Rth (Ω)", "P total (W)",
	}
}

func resultValues(r ResistorResult) []float64 {
	return []float64{r.R1, r.R2, r.Vout, r.Error, r.Current, r.PowerR1, r.PowerR2, r.Rth, r.PowerTotal}
}

func WriteResultsCSV(w io.Writer, results []ResistorResult, mode ErrorMode) error {
	writer := csv.NewWriter(w)
	writer.Write(resultHeader(mode))
	for _, result := range results {
		row := []string{}
		for _, value := range resultValues(result) {
			row = append(row, strconv.FormatFloat(value, 'g', -1, 64))
		}
		writer.Write(row)
	}

	writer.Flush()
	return writer.Error()
}

func WriteReportXLSX(dst string, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(RESULTS_SHEET)
	if err != nil {
		return err
	}
	if _, err := f.NewSheet(PARAMETERS_SHEET); err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := []interface{}{}
	for _, title := range resultHeader(report.Config.ErrorMode) {
		header = append(header, title)
	}
	if err := f.SetSheetRow(RESULTS_SHEET, "A1", &header); err != nil {
		return err
	}

	for i, result := range report.Results {
		row := []interface{}{}
		for _, value := range resultValues(result) {
			row = append(row, value)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(RESULTS_SHEET, cell, &row); err != nil {
			return err
		}
	}

	parameters := [][]interface{}{
		{"Vin (V)", report.Vin},
		{"Vout target (V)", report.Vtarget},
		{"Series", string(report.Config.Series)},
		{"Min R (Ω)", report.Config.MinR},
		{"Max R (Ω)", report.Config.MaxR},
		{"Min Rth (Ω)", report.Config.MinRth},
		{"Max Rth (Ω)", report.Config.MaxRth},
		{"Error mode", string(report.Config.ErrorMode)},
		{"Error limit", report.Config.ErrorValue},
	}
	for i, row := range parameters {
		if err := f.SetSheetRow(PARAMETERS_SHEET, "A"+strconv.Itoa(i+1), &row); err != nil {
			return err
		}
	}

	return f.SaveAs(dst)
}

// WriteReport picks the format from the extension of dst: .xlsx or .csv.
func WriteReport(dst string, report Report) error {
	switch strings.ToLower(filepath.Ext(dst)) {
	case ".xlsx":
		return WriteReportXLSX(dst, report)
	case ".csv":
		fp, err := os.Create(dst)
		if err != nil {
			return err
		}
		defer fp.Close()

		return WriteResultsCSV(fp, report.Results, report.Config.ErrorMode)
	}

	return fmt.Errorf("%w: export file must be .xlsx or .csv, got %s", ErrInvalidArgument, dst)
}

// Bundle packs files into an archive whose format follows the extension of
// dst (.zip, .tar.gz, ...). An existing dst is replaced.
func Bundle(dst string, files []string) error {
	if Exists(dst) {
		if err := os.Remove(dst); err != nil {
			return err
		}
	}

	return archiver.Archive(files, dst)
}
