package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/takoeight0821/shade/token"
	"gopkg.in/yaml.v3"
)

// PosError attaches a source span to an error.
type PosError struct {
	Where token.Span
	Err   error
}

func (e PosError) Error() string {
	return fmt.Sprintf("at %v: %s", e.Where.Start, e.Err.Error())
}

func (e PosError) Unwrap() error {
	return e.Err
}

func ErrorAt(where token.Span, err error) error {
	return PosError{Where: where, Err: err}
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindSourceFiles lists every .shade file under root.
func FindSourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".shade") {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
