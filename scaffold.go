package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/go-sprout/sprout"
	"github.com/go-sprout/sprout/group/hermetic"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

//go:embed scaffold_day.go.tmpl
var scaffoldTemplateStr string

const solutionsDir = "internal/solutions"

func sproutFuncMap() template.FuncMap {
	handler := sprout.New()
	lo.Must0(handler.AddGroups(hermetic.RegistryGroup()))
	return handler.Build()
}

type scaffoldData struct {
	Day     int
	Package string
}

// scaffoldFile is a file created by scaffold. Existing files are kept unless Required is set,
// in which case an existing file is an error.
type scaffoldFile struct {
	Path     string
	Content  []byte
	Required bool
}

// scaffold creates the skeleton of a new day: the solution package, an empty example
// and an empty input file. It never overwrites an existing solution.
func scaffold(fsys afero.Fs, day int, inputDir string) ([]string, error) {
	if day < 1 || day > 25 {
		return nil, fmt.Errorf("day %d out of range 1-25", day)
	}

	tmpl, err := template.New("day").Funcs(sproutFuncMap()).Parse(scaffoldTemplateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid scaffold template: %w", err)
	}

	data := scaffoldData{Day: day, Package: fmt.Sprintf("Day%02d", day)}
	var src bytes.Buffer
	if err := tmpl.Execute(&src, data); err != nil {
		return nil, fmt.Errorf("failed to render scaffold: %w", err)
	}

	pkgDir := filepath.Join(solutionsDir, fmt.Sprintf("day%02d", day))
	files := []scaffoldFile{
		{Path: filepath.Join(pkgDir, fmt.Sprintf("day%02d.go", day)), Content: src.Bytes(), Required: true},
		{Path: filepath.Join(pkgDir, "example.txt")},
		{Path: filepath.Join(inputDir, fmt.Sprintf("%02d.txt", day))},
	}

	var created []string
	for _, f := range files {
		ok, err := createExclusive(fsys, f.Path, f.Content)
		if err != nil {
			return created, err
		}
		if !ok {
			if f.Required {
				return created, fmt.Errorf("%s already exists", f.Path)
			}
			continue
		}
		created = append(created, f.Path)
	}
	return created, nil
}

// createExclusive writes content to a new file. It reports false when the file already exists.
func createExclusive(fsys afero.Fs, path string, content []byte) (bool, error) {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
