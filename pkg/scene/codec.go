package scene

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/weightstack/pkg/errors"
)

// Supported serialization formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ValidFormats is the set of supported serialization formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatTOML: true,
	FormatYAML: true,
}

// ValidateFormat checks that format is a supported serialization format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, toml, yaml)", format)
	}
	return nil
}

// FormatFromPath infers the serialization format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q (use .json, .toml, .yaml or .yml)", path)
	}
}

// Read decodes a scene from r. Unknown keys are rejected so that typos in
// hand-written scenes surface instead of silently weighing 0.
//
// Read does not validate the scene; call [Validate] on the result.
func Read(r io.Reader, format string) (*Scene, error) {
	var s Scene
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "decode toml: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			if stderrors.Is(err, io.EOF) {
				return nil, errors.New(errors.ErrCodeInvalidScene, "decode yaml: empty document")
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode yaml")
		}
	default:
		return nil, ValidateFormat(format)
	}
	return &s, nil
}

// ReadFile reads a scene from path, inferring the format from its extension.
func ReadFile(path string) (*Scene, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

// Marshal encodes a Scene or Layout in the given format.
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, ValidateFormat(format)
	}
}

// WriteFile encodes v to path, inferring the format from its extension.
func WriteFile(v any, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
