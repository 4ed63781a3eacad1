package artifacts

import (
    "bufio"
    "encoding/gob"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"

    "github.com/goccy/go-json"
)

// decode reads one artifact into v, choosing the codec from the file extension.
func decode(path string, v any) error {
    ext, err := codecFor(path)
    if err != nil { return err }
    f, err := os.Open(path)
    if err != nil { return err }
    defer f.Close()
    r := bufio.NewReader(f)
    switch ext {
    case ".gob":
        err = gob.NewDecoder(r).Decode(v)
    default:
        err = json.NewDecoder(r).Decode(v)
    }
    if err == io.EOF {
        return fmt.Errorf("artefato vazio")
    }
    return err
}

// Save writes v to path with the codec matching its extension.
func Save(path string, v any) error {
    ext, err := codecFor(path)
    if err != nil { return err }
    if dir := filepath.Dir(path); dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil { return err }
    }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    w := bufio.NewWriter(f)
    switch ext {
    case ".gob":
        err = gob.NewEncoder(w).Encode(v)
    default:
        enc := json.NewEncoder(w)
        enc.SetIndent("", "  ")
        err = enc.Encode(v)
    }
    if err != nil { return err }
    return w.Flush()
}

func codecFor(path string) (string, error) {
    ext := strings.ToLower(filepath.Ext(path))
    switch ext {
    case ".gob", ".json":
        return ext, nil
    default:
        return "", fmt.Errorf("extensão de artefato não suportada %q (use .gob ou .json)", ext)
    }
}
