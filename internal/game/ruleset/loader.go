package ruleset

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// EachYAML calls fn with the contents of every .yaml or .yml file directly
// inside dir, in lexical order. A missing dir yields no calls.
//
// Precondition: fsys must not be nil.
// Postcondition: Returns the first error from reading or from fn.
func EachYAML(fsys fs.FS, dir string, fn func(name string, data []byte) error) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, n := range names {
		p := path.Join(dir, n)
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		if err := fn(p, data); err != nil {
			return err
		}
	}
	return nil
}

// LoadTalents parses and validates every talent file in dir.
//
// Postcondition: Returns all parsed talents or the first error encountered.
func LoadTalents(fsys fs.FS, dir string) ([]*TalentDef, error) {
	var out []*TalentDef
	err := EachYAML(fsys, dir, func(name string, data []byte) error {
		var t TalentDef
		if err := yaml.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("parsing talent file %s: %w", name, err)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("invalid talent in %s: %w", name, err)
		}
		out = append(out, &t)
		return nil
	})
	return out, err
}

// LoadRaces parses and validates every race file in dir.
//
// Postcondition: Returns all parsed races or the first error encountered.
func LoadRaces(fsys fs.FS, dir string) ([]*Race, error) {
	var out []*Race
	err := EachYAML(fsys, dir, func(name string, data []byte) error {
		var r Race
		if err := yaml.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("parsing race file %s: %w", name, err)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid race in %s: %w", name, err)
		}
		out = append(out, &r)
		return nil
	})
	return out, err
}
