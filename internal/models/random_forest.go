package models

type RandomForest struct {
    MaxFeatures int             `json:"max_features,omitempty"`
    Trees       []*DecisionTree `json:"trees"`
}

func NewRandomForest(trees ...*DecisionTree) *RandomForest {
    return &RandomForest{Trees: trees}
}

func (rf *RandomForest) Name() string { return "RandomForest" }

func (rf *RandomForest) PredictProba(X [][]float64) []float64 { return averageTrees(rf.Trees, X) }

func (rf *RandomForest) maxFeature() int { return maxTreesFeature(rf.Trees) }

// averageTrees is the soft vote shared by the bootstrap ensembles.
func averageTrees(trees []*DecisionTree, X [][]float64) []float64 {
    n := len(X)
    out := make([]float64, n)
    if len(trees) == 0 {
        for i := range out { out[i] = 0.5 }
        return out
    }
    for _, dt := range trees {
        p := dt.PredictProba(X)
        for i := 0; i < n; i++ { out[i] += p[i] }
    }
    m := float64(len(trees))
    for i := 0; i < n; i++ { out[i] /= m }
    return out
}

func maxTreesFeature(trees []*DecisionTree) int {
    m := -1
    for _, dt := range trees {
        if dt == nil { continue }
        if f := dt.maxFeature(); f > m { m = f }
    }
    return m
}
