// Package testhelpers builds a small, deterministic artifact set shaped like the real one.
// Automation risk alone drives the fixture model: above 75% is High, below 25% is Low, and
// anything in between is Moderate.
package testhelpers

import (
    "path/filepath"

    "aiimpact/internal/artifacts"
    "aiimpact/internal/features"
    "aiimpact/internal/models"
)

var (
    NumericFeatures = []string{
        "Median_Salary_USD",
        "Experience_Required_Years",
        "Job_Openings_2024",
        "Projected_Openings_2030",
        "Remote_Work_Ratio (%)",
        "Gender_Diversity (%)",
        "Automation_Risk (%)",
    }
    CategoricalFeatures = []string{"Industry", "Job_Status", "Required_Education", "Location"}
)

func Preprocessor() *features.ColumnTransformer {
    return &features.ColumnTransformer{Transformers: []features.Transformer{
        {
            Name:    "num",
            Kind:    features.KindNumeric,
            Columns: append([]string(nil), NumericFeatures...),
            Scaler: &features.Scaler{
                Mean:  []float64{90000, 10, 5000, 5000, 50, 50, 50},
                Scale: []float64{35000, 6, 2800, 2800, 28, 28, 25},
            },
        },
        {
            Name:    "cat",
            Kind:    features.KindCategorical,
            Columns: append([]string(nil), CategoricalFeatures...),
            OneHot: &features.OneHot{
                Categories: [][]string{
                    {"Education", "Entertainment", "Finance", "Healthcare", "IT", "Manufacturing", "Retail", "Transportation"},
                    {"Decreasing", "Increasing"},
                    {"Associate Degree", "Bachelor’s Degree", "High School", "Master’s Degree", "PhD"},
                    {"Australia", "Brazil", "Canada", "China", "Germany", "India", "UK", "USA"},
                },
                HandleUnknown: features.UnknownIgnore,
            },
        },
    }}
}

func LabelEncoder() *features.LabelEncoder {
    return &features.LabelEncoder{Classes: []string{"High", "Low", "Moderate"}}
}

// riskColumn is the encoded index of Automation_Risk (%).
const riskColumn = 6

func Model() *models.OneVsRest {
    return models.NewOneVsRest(
        models.TreeEstimator(models.NewDecisionTree(
            models.Split(riskColumn, 1, models.Leaf(0.1), models.Leaf(0.9)))),
        models.TreeEstimator(models.NewDecisionTree(
            models.Split(riskColumn, -1, models.Leaf(0.9), models.Leaf(0.1)))),
        models.TreeEstimator(models.NewDecisionTree(
            models.Split(riskColumn, -1, models.Leaf(0.05),
                models.Split(riskColumn, 1, models.Leaf(0.8), models.Leaf(0.05))))),
    )
}

func Layout() artifacts.Layout {
    return artifacts.Layout{Numeric: len(NumericFeatures), Categorical: len(CategoricalFeatures)}
}

func Bundle() *artifacts.Bundle {
    return &artifacts.Bundle{
        Model:        Model(),
        Preprocessor: Preprocessor(),
        LabelEncoder: LabelEncoder(),
    }
}

// WriteArtifacts saves the fixture set into dir with the given extension (".gob" or ".json").
func WriteArtifacts(dir, ext string) (artifacts.Paths, error) {
    p := artifacts.Paths{
        Model:        filepath.Join(dir, "modelo_final"+ext),
        Preprocessor: filepath.Join(dir, "preprocessor"+ext),
        LabelEncoder: filepath.Join(dir, "label_encoder"+ext),
    }
    if err := artifacts.Save(p.Model, Model()); err != nil { return p, err }
    if err := artifacts.Save(p.Preprocessor, Preprocessor()); err != nil { return p, err }
    if err := artifacts.Save(p.LabelEncoder, LabelEncoder()); err != nil { return p, err }
    return p, nil
}
