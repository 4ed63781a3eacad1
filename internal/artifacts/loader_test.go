package artifacts_test

import (
    "errors"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/multierr"

    "aiimpact/internal/artifacts"
    "aiimpact/internal/testhelpers"
)

func TestLoadRoundTrip(t *testing.T) {
    for _, ext := range []string{".gob", ".json"} {
        t.Run(ext, func(t *testing.T) {
            paths, err := testhelpers.WriteArtifacts(t.TempDir(), ext)
            require.NoError(t, err)

            b, err := artifacts.Load(paths, testhelpers.Layout())
            require.NoError(t, err)
            assert.Equal(t, testhelpers.NumericFeatures, b.NumericFeatures())
            assert.Equal(t, testhelpers.CategoricalFeatures, b.CategoricalFeatures())
            assert.Equal(t, []string{"High", "Low", "Moderate"}, b.LabelEncoder.Classes)
            assert.Equal(t, 3, b.Model.Classes())
            assert.Equal(t, paths, b.Paths)
        })
    }
}

func TestLoadMissingFilesReportsAll(t *testing.T) {
    dir := t.TempDir()
    paths, err := testhelpers.WriteArtifacts(dir, ".json")
    require.NoError(t, err)
    require.NoError(t, os.Remove(paths.Model))
    require.NoError(t, os.Remove(paths.LabelEncoder))

    _, err = artifacts.Load(paths, testhelpers.Layout())
    require.Error(t, err)
    assert.ErrorIs(t, err, artifacts.ErrNotFound)
    assert.Len(t, multierr.Errors(err), 2)
    assert.Contains(t, err.Error(), paths.Model)
    assert.Contains(t, err.Error(), paths.LabelEncoder)
}

func TestLoadCorruptFileIsGenericError(t *testing.T) {
    paths, err := testhelpers.WriteArtifacts(t.TempDir(), ".json")
    require.NoError(t, err)
    require.NoError(t, os.WriteFile(paths.Preprocessor, []byte("{not json"), 0o644))

    _, err = artifacts.Load(paths, testhelpers.Layout())
    require.Error(t, err)
    assert.False(t, errors.Is(err, artifacts.ErrNotFound))
}

func TestLoadEmptyFile(t *testing.T) {
    paths, err := testhelpers.WriteArtifacts(t.TempDir(), ".gob")
    require.NoError(t, err)
    require.NoError(t, os.WriteFile(paths.LabelEncoder, nil, 0o644))

    _, err = artifacts.Load(paths, testhelpers.Layout())
    require.Error(t, err)
    assert.Contains(t, err.Error(), "vazio")
}

func TestLoadUnsupportedExtension(t *testing.T) {
    dir := t.TempDir()
    paths, err := testhelpers.WriteArtifacts(dir, ".json")
    require.NoError(t, err)
    paths.Model = filepath.Join(dir, "modelo_final.pkl")
    require.NoError(t, os.WriteFile(paths.Model, []byte("x"), 0o644))

    _, err = artifacts.Load(paths, testhelpers.Layout())
    require.Error(t, err)
    assert.Contains(t, err.Error(), ".pkl")
}

func TestCheckSchema(t *testing.T) {
    layout := testhelpers.Layout()

    b := testhelpers.Bundle()
    assert.NoError(t, b.Check(layout))

    b = testhelpers.Bundle()
    b.Preprocessor.Transformers = b.Preprocessor.Transformers[:1]
    assert.ErrorIs(t, b.Check(layout), artifacts.ErrSchema)

    b = testhelpers.Bundle()
    b.Preprocessor.Transformers[0].Columns = b.Preprocessor.Transformers[0].Columns[:6]
    assert.ErrorIs(t, b.Check(layout), artifacts.ErrSchema)

    b = testhelpers.Bundle()
    b.LabelEncoder.Classes = []string{"High", "Low"}
    assert.ErrorIs(t, b.Check(layout), artifacts.ErrSchema)

    b = testhelpers.Bundle()
    b.LabelEncoder.Classes = nil
    assert.ErrorIs(t, b.Check(layout), artifacts.ErrSchema)

    b = testhelpers.Bundle()
    b.Preprocessor.Transformers[1].OneHot.Categories = nil
    assert.ErrorIs(t, b.Check(layout), artifacts.ErrSchema)
}

func TestShippedArtifactsLoad(t *testing.T) {
    dir := filepath.Join("..", "..", "models")
    paths := artifacts.Paths{
        Model:        filepath.Join(dir, "modelo_final.json"),
        Preprocessor: filepath.Join(dir, "preprocessor.json"),
        LabelEncoder: filepath.Join(dir, "label_encoder.json"),
    }
    b, err := artifacts.Load(paths, testhelpers.Layout())
    require.NoError(t, err)
    assert.Equal(t, testhelpers.NumericFeatures, b.NumericFeatures())
    assert.Equal(t, testhelpers.CategoricalFeatures, b.CategoricalFeatures())
    assert.Equal(t, 30, b.Preprocessor.Width())
    assert.Equal(t, "OneVsRest(RandomForest)", b.Model.Name())
}
