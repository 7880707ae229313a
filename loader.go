// FILE: toobusy/loader.go
package toobusy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// MaxOptionsFileSize bounds how much of an options file is read.
const MaxOptionsFileSize = 1 << 20 // 1 MiB

// LoadOptions reads monitor tunables from a TOML, JSON, or YAML file. The
// format is detected from the extension, falling back to content detection
// for ambiguous extensions. Durations are written as Go duration strings
// ("500ms", "1.5s").
//
// Returns ErrOptionsNotFound when the file does not exist, so callers can
// treat a missing file as "use defaults":
//
//	opts, err := toobusy.LoadOptions("toobusy.toml")
//	if err != nil && !errors.Is(err, toobusy.ErrOptionsNotFound) {
//	    return err
//	}
//	mon, err := toobusy.New(toobusy.WithOptions(opts))
func LoadOptions(path string) (Options, error) {
	var o Options

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return o, ErrOptionsNotFound
		}
		return o, fmt.Errorf("failed to stat options file '%s': %w", path, err)
	}
	if info.Size() > MaxOptionsFileSize {
		return o, fmt.Errorf("options file '%s' exceeds maximum size %d bytes", path, MaxOptionsFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("failed to read options file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return o, fmt.Errorf("failed to parse TOML options file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return o, fmt.Errorf("failed to parse JSON options file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return o, fmt.Errorf("failed to parse YAML options file '%s': %w", path, err)
		}
	default:
		return o, fmt.Errorf("unable to determine options format for file '%s'", path)
	}

	if err := decodeOptions(raw, &o); err != nil {
		return o, err
	}
	if err := o.validate(); err != nil {
		return Options{}, fmt.Errorf("options file '%s': %w", path, err)
	}
	return o, nil
}

// decodeOptions maps the parsed file data onto Options. Decoding is weakly
// typed with a duration hook, so "500ms" strings become time.Duration and
// integer counts arrive as int regardless of source format.
func decodeOptions(raw map[string]any, target *Options) error {
	// Zero fields in the file fall back to defaults before validation.
	*target = defaultOptions()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode options: %w", err)
	}
	return nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try YAML (superset of JSON, so check after JSON)
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	// Try TOML last
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
