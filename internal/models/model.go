package models

import "errors"

var ErrInvalidModel = errors.New("modelo inválido")

// Classifier is the multiclass model restored from the model artifact. Rows of X are the
// encoded feature vectors produced by the preprocessor.
type Classifier interface {
    Predict(X [][]float64) []int
    PredictProba(X [][]float64) [][]float64
    Classes() int
    Name() string
}

// BinaryEstimator scores the positive class of one one-vs-rest column.
type BinaryEstimator interface {
    PredictProba(X [][]float64) []float64
    Name() string
    maxFeature() int
}
