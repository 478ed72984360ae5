package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	jsonparser "github.com/0xalexb/hjarta-commerce/config/parser/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"
)

// ErrInvalidDocument is returned for data that is not a JSON object, or whose
// compilerOptions or compilerOptions.paths is not an object.
var ErrInvalidDocument = errors.New("invalid tsconfig document")

const (
	compilerOptionsPath = "compilerOptions"
	pathsPath           = "compilerOptions.paths"
)

// Alias is one entry of compilerOptions.paths.
type Alias struct {
	Key     string
	Targets []string
}

// Document is an in-memory tsconfig.json.
type Document struct {
	raw []byte
}

// Parse validates data and returns a Document. Comments and trailing commas are stripped.
func Parse(data []byte) (*Document, error) {
	raw := jsonc.ToJSON(data)

	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}

	if !gjson.ParseBytes(raw).IsObject() {
		return nil, fmt.Errorf("%w: top level value is not an object", ErrInvalidDocument)
	}

	for _, path := range []string{compilerOptionsPath, pathsPath} {
		result := gjson.GetBytes(raw, path)
		if result.Exists() && !result.IsObject() {
			return nil, fmt.Errorf("%w: %s is not an object", ErrInvalidDocument, path)
		}
	}

	return &Document{raw: raw}, nil
}

// Bytes returns a copy of the current serialized document.
func (d *Document) Bytes() []byte {
	return bytes.Clone(d.raw)
}

// Decode decodes the section at path (colon separated) into target.
func (d *Document) Decode(path string, target any) error {
	return jsonparser.NewParser().Parse(d.raw, target, path)
}

// Paths returns compilerOptions.paths, or an empty map when it is absent.
func (d *Document) Paths() (map[string][]string, error) {
	paths := make(map[string][]string)

	err := d.Decode("compilerOptions:paths", &paths)
	if err != nil && !errors.Is(err, jsonparser.ErrPathNotFound) {
		return nil, fmt.Errorf("decoding paths: %w", err)
	}

	return paths, nil
}

// SetAliases overwrites the given aliases in compilerOptions.paths. Existing
// keys are replaced in place, new keys are appended, and every other alias is
// kept verbatim. compilerOptions and paths are created when missing.
func (d *Document) SetAliases(aliases ...Alias) error {
	written := make([]bool, len(aliases))

	var buf bytes.Buffer

	buf.WriteByte('{')

	count := 0

	writeEntry := func(key string, value []byte) error {
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("encoding alias key %q: %w", key, err)
		}

		if count > 0 {
			buf.WriteByte(',')
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(value)
		count++

		return nil
	}

	var walkErr error

	gjson.GetBytes(d.raw, pathsPath).ForEach(func(key, value gjson.Result) bool {
		raw := []byte(value.Raw)

		for i, alias := range aliases {
			if alias.Key != key.String() {
				continue
			}

			encoded, err := encodeTargets(alias.Targets)
			if err != nil {
				walkErr = err

				return false
			}

			raw = encoded
			written[i] = true
		}

		walkErr = writeEntry(key.String(), raw)

		return walkErr == nil
	})

	if walkErr != nil {
		return walkErr
	}

	for i, alias := range aliases {
		if written[i] {
			continue
		}

		encoded, err := encodeTargets(alias.Targets)
		if err != nil {
			return err
		}

		err = writeEntry(alias.Key, encoded)
		if err != nil {
			return err
		}
	}

	buf.WriteByte('}')

	raw, err := sjson.SetRawBytes(d.raw, pathsPath, buf.Bytes())
	if err != nil {
		return fmt.Errorf("setting %s: %w", pathsPath, err)
	}

	d.raw = raw

	return nil
}

func encodeTargets(targets []string) ([]byte, error) {
	if targets == nil {
		targets = []string{}
	}

	encoded, err := json.Marshal(targets)
	if err != nil {
		return nil, fmt.Errorf("encoding alias targets: %w", err)
	}

	return encoded, nil
}
