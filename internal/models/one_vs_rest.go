package models

import "fmt"

const (
    KindDecisionTree     = "decision_tree"
    KindRandomForest     = "random_forest"
    KindBagging          = "bagging"
    KindGradientBoosting = "gradient_boosting"
)

// Estimator is the serialized form of one binary column. Exactly one pointer matching Kind is
// populated, which lets the artifact round-trip through gob and JSON without type registration.
type Estimator struct {
    Kind     string            `json:"kind"`
    Tree     *DecisionTree     `json:"tree,omitempty"`
    Forest   *RandomForest     `json:"forest,omitempty"`
    Bagging  *Bagging          `json:"bagging,omitempty"`
    Boosting *GradientBoosting `json:"boosting,omitempty"`
}

func TreeEstimator(dt *DecisionTree) Estimator { return Estimator{Kind: KindDecisionTree, Tree: dt} }
func ForestEstimator(rf *RandomForest) Estimator { return Estimator{Kind: KindRandomForest, Forest: rf} }
func BaggingEstimator(bg *Bagging) Estimator     { return Estimator{Kind: KindBagging, Bagging: bg} }
func BoostingEstimator(gb *GradientBoosting) Estimator {
    return Estimator{Kind: KindGradientBoosting, Boosting: gb}
}

func (e Estimator) Binary() (BinaryEstimator, error) {
    var b BinaryEstimator
    switch e.Kind {
    case KindDecisionTree:
        if e.Tree != nil { b = e.Tree }
    case KindRandomForest:
        if e.Forest != nil { b = e.Forest }
    case KindBagging:
        if e.Bagging != nil { b = e.Bagging }
    case KindGradientBoosting:
        if e.Boosting != nil { b = e.Boosting }
    default:
        return nil, fmt.Errorf("%w: tipo de estimador desconhecido %q", ErrInvalidModel, e.Kind)
    }
    if b == nil {
        return nil, fmt.Errorf("%w: estimador %q sem conteúdo", ErrInvalidModel, e.Kind)
    }
    return b, nil
}

// OneVsRest is the multiclass model: estimator k scores class k against the rest.
type OneVsRest struct {
    Estimators []Estimator `json:"estimators"`
}

func NewOneVsRest(estimators ...Estimator) *OneVsRest {
    return &OneVsRest{Estimators: estimators}
}

func (m *OneVsRest) Classes() int { return len(m.Estimators) }

func (m *OneVsRest) Name() string {
    if len(m.Estimators) == 0 { return "OneVsRest" }
    b, err := m.Estimators[0].Binary()
    if err != nil { return "OneVsRest" }
    return "OneVsRest(" + b.Name() + ")"
}

// Validate checks every estimator is decodable and reads only columns below width.
func (m *OneVsRest) Validate(width int) error {
    if len(m.Estimators) == 0 {
        return fmt.Errorf("%w: nenhum estimador", ErrInvalidModel)
    }
    for k, e := range m.Estimators {
        b, err := e.Binary()
        if err != nil { return fmt.Errorf("estimador %d: %w", k, err) }
        if f := b.maxFeature(); f >= width {
            return fmt.Errorf("%w: estimador %d usa a coluna %d, entrada tem %d", ErrInvalidModel, k, f, width)
        }
    }
    return nil
}

// PredictProba returns one row per sample with the class scores normalised to sum to 1.
// Rows where every estimator scores zero fall back to a uniform distribution.
func (m *OneVsRest) PredictProba(X [][]float64) [][]float64 {
    k := len(m.Estimators)
    out := make([][]float64, len(X))
    for i := range out { out[i] = make([]float64, k) }
    for c, e := range m.Estimators {
        b, err := e.Binary()
        if err != nil { continue }
        ps := b.PredictProba(X)
        for i := range ps { out[i][c] = ps[i] }
    }
    for i := range out {
        sum := 0.0
        for _, p := range out[i] { sum += p }
        for c := range out[i] {
            if sum > 0 { out[i][c] /= sum } else { out[i][c] = 1.0 / float64(k) }
        }
    }
    return out
}

// Predict is the argmax of PredictProba; the lowest class index wins ties.
func (m *OneVsRest) Predict(X [][]float64) []int {
    ps := m.PredictProba(X)
    out := make([]int, len(ps))
    for i, row := range ps {
        out[i] = Argmax(row)
    }
    return out
}

// Argmax returns the index of the largest score, the lowest index on ties and 0 for an empty row.
func Argmax(row []float64) int {
    best := 0
    for c := 1; c < len(row); c++ {
        if row[c] > row[best] { best = c }
    }
    return best
}
