package arbor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type paramsFormat int

const (
	formatJSON paramsFormat = iota
	formatYAML
	formatTOML
)

func formatFor(filename string) (paramsFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	}
	return 0, fmt.Errorf("unsupported params file extension %q", filepath.Ext(filename))
}

// DecodeParams parses data on top of DefaultParams, so fields absent from
// the document keep their defaults. The result is validated.
func DecodeParams(data []byte, filename string) (Params, error) {
	format, err := formatFor(filename)
	if err != nil {
		return Params{}, err
	}

	p := DefaultParams()
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &p)
	case formatYAML:
		err = yaml.Unmarshal(data, &p)
	case formatTOML:
		err = toml.Unmarshal(data, &p)
	}
	if err != nil {
		return Params{}, fmt.Errorf("decode %s: %w", filename, err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

func EncodeParams(p Params, filename string) ([]byte, error) {
	format, err := formatFor(filename)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatYAML:
		return yaml.Marshal(p)
	case formatTOML:
		return toml.Marshal(p)
	default:
		return json.MarshalIndent(p, "", "  ")
	}
}

func LoadParams(filename string) (Params, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return Params{}, err
	}
	return DecodeParams(bytes, filename)
}

func SaveParams(filename string, p Params) error {
	bytes, err := EncodeParams(p, filename)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}
