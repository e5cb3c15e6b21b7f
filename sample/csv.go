package sample

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	X1Column         string   // Column name for X1 (default: "x1")
	X2Column         string   // Column name for X2 (default: "x2")
	CovariateColumns []string // Column names for covariates (default: ["z"])
	HasHeader        bool     // Whether CSV has a header row (default: true)
	Delimiter        rune     // Field delimiter (default: ',')
	SkipRows         int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		X1Column:         "x1",
		X2Column:         "x2",
		CovariateColumns: []string{"z"},
		HasHeader:        true,
		Delimiter:        ',',
	}
}

// LoadCSV loads a sample from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a sample from an io.Reader.
//
// With a header row, columns are located by name (case-insensitive). Without
// one, the first column is X1, the second X2, and the remaining columns are
// taken as covariates.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	x1Idx, x2Idx := 0, 1
	var zIdx []int

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		x1Idx, x2Idx = -1, -1
		zIdx = make([]int, len(opts.CovariateColumns))
		for i := range zIdx {
			zIdx[i] = -1
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case strings.EqualFold(h, opts.X1Column):
				x1Idx = i
			case strings.EqualFold(h, opts.X2Column):
				x2Idx = i
			default:
				for k, name := range opts.CovariateColumns {
					if strings.EqualFold(h, name) {
						zIdx[k] = i
					}
				}
			}
		}
		if x1Idx == -1 || x2Idx == -1 {
			return nil, errors.New("sample: X1/X2 columns not found in CSV header")
		}
		for k, idx := range zIdx {
			if idx == -1 {
				return nil, errors.New("sample: covariate column not found in CSV header: " + opts.CovariateColumns[k])
			}
		}
	}

	var x1, x2 []float64
	var zRows [][]float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !opts.HasHeader && zIdx == nil {
			// Headerless: all columns beyond the first two are covariates.
			for i := 2; i < len(record); i++ {
				zIdx = append(zIdx, i)
			}
			if len(zIdx) == 0 {
				return nil, errors.New("sample: headerless CSV needs at least three columns")
			}
		}

		v1, ok1 := parseField(record, x1Idx)
		v2, ok2 := parseField(record, x2Idx)
		if !ok1 || !ok2 {
			continue
		}
		zRow := make([]float64, len(zIdx))
		ok := true
		for k, idx := range zIdx {
			zRow[k], ok = parseField(record, idx)
			if !ok {
				break
			}
		}
		if !ok {
			continue // Skip rows with missing values
		}

		x1 = append(x1, v1)
		x2 = append(x2, v2)
		zRows = append(zRows, zRow)
	}

	if len(x1) == 0 {
		return nil, errors.New("sample: no valid data found in CSV")
	}

	z := mat.NewDense(len(zRows), len(zRows[0]), nil)
	for i, row := range zRows {
		z.SetRow(i, row)
	}
	return New(x1, x2, z)
}

func parseField(record []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(record) {
		return 0, false
	}
	s := strings.TrimSpace(strings.Trim(record[idx], "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
