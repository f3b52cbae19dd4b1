package stats

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"infoflow/internal/model"
)

var traceHeader = []string{"step", "entropy", "kl_divergence", "alpha", "beta"}

// WriteTraceCSV writes the series as a CSV table with a header row.
func WriteTraceCSV(w io.Writer, series *Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return err
	}
	for _, rec := range series.Records() {
		row := []string{
			strconv.Itoa(rec.Step),
			formatFloat(rec.Entropy),
			formatFloat(rec.KLDivergence),
			formatFloat(rec.Alpha),
			formatFloat(rec.Beta),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRunConfigJSON writes the parameter bundle as indented JSON.
func WriteRunConfigJSON(w io.Writer, cfg model.SimConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
