package stats

import (
	"errors"

	"infoflow/internal/model"
)

var ErrEmptySeries = errors.New("stats: empty series")

// Series accumulates per-step diagnostics in call order.
type Series struct {
	records []model.StepRecord
}

func NewSeries() *Series { return &Series{} }

func (s *Series) Append(rec model.StepRecord) {
	s.records = append(s.records, rec)
}

func (s *Series) Len() int { return len(s.records) }

// Records returns a copy of the accumulated rows.
func (s *Series) Records() []model.StepRecord {
	out := make([]model.StepRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Entropies returns the entropy column in step order.
func (s *Series) Entropies() []float64 {
	out := make([]float64, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Entropy
	}
	return out
}

// KLDivergences returns the divergence column in step order.
func (s *Series) KLDivergences() []float64 {
	out := make([]float64, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.KLDivergence
	}
	return out
}

// Summary reduces one run's diagnostics series to scalar aggregates.
type Summary struct {
	Steps        int     `json:"steps"`
	FinalEntropy float64 `json:"final_entropy"`
	FinalKL      float64 `json:"final_kl"`
	MinEntropy   float64 `json:"min_entropy"`
	MaxEntropy   float64 `json:"max_entropy"`
	MeanEntropy  float64 `json:"mean_entropy"`
	MinKL        float64 `json:"min_kl"`
	MaxKL        float64 `json:"max_kl"`
	MeanKL       float64 `json:"mean_kl"`
	FinalAlpha   float64 `json:"final_alpha"`
	FinalBeta    float64 `json:"final_beta"`
}

func Summarize(s *Series) (Summary, error) {
	if s == nil || len(s.records) == 0 {
		return Summary{}, ErrEmptySeries
	}

	first := s.records[0]
	last := s.records[len(s.records)-1]
	summary := Summary{
		Steps:        len(s.records),
		FinalEntropy: last.Entropy,
		FinalKL:      last.KLDivergence,
		MinEntropy:   first.Entropy,
		MaxEntropy:   first.Entropy,
		MinKL:        first.KLDivergence,
		MaxKL:        first.KLDivergence,
		FinalAlpha:   last.Alpha,
		FinalBeta:    last.Beta,
	}

	sumH, sumKL := 0.0, 0.0
	for _, rec := range s.records {
		if rec.Entropy < summary.MinEntropy {
			summary.MinEntropy = rec.Entropy
		}
		if rec.Entropy > summary.MaxEntropy {
			summary.MaxEntropy = rec.Entropy
		}
		if rec.KLDivergence < summary.MinKL {
			summary.MinKL = rec.KLDivergence
		}
		if rec.KLDivergence > summary.MaxKL {
			summary.MaxKL = rec.KLDivergence
		}
		sumH += rec.Entropy
		sumKL += rec.KLDivergence
	}
	summary.MeanEntropy = sumH / float64(len(s.records))
	summary.MeanKL = sumKL / float64(len(s.records))
	return summary, nil
}
