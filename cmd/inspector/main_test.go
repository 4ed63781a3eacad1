package main

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/goccy/go-yaml"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "aiimpact/internal/form"
    "aiimpact/internal/testhelpers"
)

func TestWriteSchema(t *testing.T) {
    f, err := form.Build(testhelpers.NumericFeatures, testhelpers.CategoricalFeatures)
    require.NoError(t, err)

    path := filepath.Join(t.TempDir(), "schema", "schema.yaml")
    require.NoError(t, writeSchema(path, f.Schema()))

    b, err := os.ReadFile(path)
    require.NoError(t, err)

    var got struct {
        Numeric []struct {
            Key     string `yaml:"key"`
            Feature string `yaml:"feature"`
        } `yaml:"numeric"`
        Categorical []struct {
            Key     string   `yaml:"key"`
            Feature string   `yaml:"feature"`
            Options []string `yaml:"options"`
        } `yaml:"categorical"`
    }
    require.NoError(t, yaml.Unmarshal(b, &got))
    require.Len(t, got.Numeric, 7)
    require.Len(t, got.Categorical, 4)
    assert.Equal(t, "risk_input", got.Numeric[6].Key)
    assert.Equal(t, "Automation_Risk (%)", got.Numeric[6].Feature)
    assert.Equal(t, form.EducationOptions, got.Categorical[2].Options)
}
