package models

import "math"

// Stump is a depth-one regression tree fitted on the log-odds residuals.
type Stump struct {
    Feature   int     `json:"feature"`
    Threshold float64 `json:"threshold"`
    LeftVal   float64 `json:"left_val"`
    RightVal  float64 `json:"right_val"`
}

type GradientBoosting struct {
    Init         float64 `json:"init"`
    LearningRate float64 `json:"learning_rate"`
    Trees        []Stump `json:"trees"`
}

func NewGradientBoosting(init, lr float64, trees ...Stump) *GradientBoosting {
    return &GradientBoosting{Init: init, LearningRate: lr, Trees: trees}
}

func (gb *GradientBoosting) Name() string { return "GradientBoosting" }

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func (gb *GradientBoosting) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range X {
        f := gb.Init
        for _, t := range gb.Trees {
            if t.Feature < 0 || t.Feature >= len(X[i]) { continue }
            inc := t.LeftVal
            if X[i][t.Feature] > t.Threshold { inc = t.RightVal }
            f += gb.LearningRate * inc
        }
        out[i] = sigmoid(f)
    }
    return out
}

func (gb *GradientBoosting) maxFeature() int {
    m := -1
    for _, t := range gb.Trees {
        if t.Feature > m { m = t.Feature }
    }
    return m
}
