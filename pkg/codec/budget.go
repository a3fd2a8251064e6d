package codec

import (
	"encoding/json"
	"math"

	"github.com/archpad/archpad/pkg/model"
)

// BudgetReport describes how a diagram's encoded size compares to a
// caller-supplied ceiling. Purely informational - nothing is truncated.
type BudgetReport struct {
	WithinBudget     bool    `json:"withinBudget"`
	OriginalSizeKB   float64 `json:"originalSizeKB"`
	CompressedSizeKB float64 `json:"compressedSizeKB"`
}

// CheckSizeBudget compresses the diagram and compares the compressed
// length against maxKB. Sizes are encoded-character counts divided by
// 1024; the reported fields are rounded to 2 decimal places but the
// within-budget comparison uses the unrounded value.
func CheckSizeBudget(d *model.Diagram, maxKB float64) (BudgetReport, error) {
	raw, err := json.Marshal(Optimize(d))
	if err != nil {
		return BudgetReport{}, err
	}
	encoded, err := Compress(d)
	if err != nil {
		return BudgetReport{}, err
	}

	compressedKB := float64(len(encoded)) / 1024
	return BudgetReport{
		WithinBudget:     compressedKB <= maxKB,
		OriginalSizeKB:   round2(float64(len(raw)) / 1024),
		CompressedSizeKB: round2(compressedKB),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
