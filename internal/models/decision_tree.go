package models

type DTNode struct {
    Feature   int     `json:"feature"`
    Threshold float64 `json:"threshold"`
    Left      *DTNode `json:"left,omitempty"`
    Right     *DTNode `json:"right,omitempty"`
    IsLeaf    bool    `json:"is_leaf"`
    ProbaLeaf float64 `json:"proba_leaf"`
}

type DecisionTree struct {
    Root *DTNode `json:"root"`
}

func NewDecisionTree(root *DTNode) *DecisionTree {
    return &DecisionTree{Root: root}
}

// Leaf is a shorthand for a terminal node.
func Leaf(p float64) *DTNode { return &DTNode{IsLeaf: true, ProbaLeaf: p} }

// Split is a shorthand for an internal node sending x[feature] <= threshold to the left.
func Split(feature int, threshold float64, left, right *DTNode) *DTNode {
    return &DTNode{Feature: feature, Threshold: threshold, Left: left, Right: right}
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range X { out[i] = dt.predictProbaOne(X[i]) }
    return out
}

func (dt *DecisionTree) predictProbaOne(x []float64) float64 {
    n := dt.Root
    if n == nil { return 0.5 }
    for !n.IsLeaf {
        if n.Feature < 0 || n.Feature >= len(x) { return 0.5 }
        if x[n.Feature] <= n.Threshold { n = n.Left } else { n = n.Right }
        if n == nil { return 0.5 }
    }
    return n.ProbaLeaf
}

func (dt *DecisionTree) Depth() int { return depth(dt.Root) }

func (dt *DecisionTree) maxFeature() int { return maxNodeFeature(dt.Root) }

func depth(n *DTNode) int {
    if n == nil || n.IsLeaf { return 0 }
    l, r := depth(n.Left), depth(n.Right)
    if l > r { return l + 1 }
    return r + 1
}

func maxNodeFeature(n *DTNode) int {
    if n == nil || n.IsLeaf { return -1 }
    m := n.Feature
    if l := maxNodeFeature(n.Left); l > m { m = l }
    if r := maxNodeFeature(n.Right); r > m { m = r }
    return m
}
