package models

type Bagging struct {
    Trees []*DecisionTree `json:"trees"`
}

func NewBagging(trees ...*DecisionTree) *Bagging {
    return &Bagging{Trees: trees}
}

func (bg *Bagging) Name() string { return "Bagging" }

func (bg *Bagging) PredictProba(X [][]float64) []float64 { return averageTrees(bg.Trees, X) }

func (bg *Bagging) maxFeature() int { return maxTreesFeature(bg.Trees) }
