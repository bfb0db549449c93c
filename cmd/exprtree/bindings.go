package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// loadBindings reads parameter definitions from a YAML or TOML file holding a
// single mapping of names to integers. The definitions are in the order the
// file lists them.
func loadBindings(path string) ([]definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading bindings")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		defs, err := yamlBindings(data)
		return defs, errors.Wrapf(err, "parsing %s", path)
	case ".toml":
		defs, err := tomlBindings(data)
		return defs, errors.Wrapf(err, "parsing %s", path)
	default:
		return nil, errors.Errorf("bindings file %s is neither YAML nor TOML", path)
	}
}

func yamlBindings(data []byte) ([]definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: bindings must be a mapping", m.Line)
	}
	var defs []definition
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("line %d: value of %s is not a number", v.Line, k.Value)
		}
		defs = append(defs, definition{name: k.Value, text: v.Value})
	}
	return defs, nil
}

func tomlBindings(data []byte) ([]definition, error) {
	var m map[string]any
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, err
	}
	var defs []definition
	for _, k := range md.Keys() {
		if len(k) != 1 {
			return nil, errors.Errorf("%s: bindings must not be nested", k)
		}
		var text string
		switch v := m[k[0]].(type) {
		case int64:
			text = strconv.FormatInt(v, 10)
		case string:
			text = v
		default:
			return nil, errors.Errorf("value of %s is not a number", k[0])
		}
		defs = append(defs, definition{name: k[0], text: text})
	}
	return defs, nil
}
