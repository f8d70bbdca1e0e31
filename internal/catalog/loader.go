package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dapub1013/deadstream/pkg/logger"
)

// dump is the on-disk catalog schema, shared by the JSON and YAML forms.
type dump struct {
	Events []Event `json:"events" yaml:"events"`
}

// LoadFile reads a catalog dump from disk and builds a Store. The format is
// chosen by extension: .json, or .yaml/.yml.
func LoadFile(ctx context.Context, path string) (Store, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var d dump
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	dropped := 0
	for _, ev := range d.Events {
		seen := make(map[string]bool, len(ev.Records))
		for _, r := range ev.Records {
			if r.Identifier == "" || seen[r.Identifier] {
				dropped++
			}
			seen[r.Identifier] = true
		}
	}
	if dropped > 0 {
		logger.Get().Info(ctx, "dropped duplicate or unidentified catalog records",
			logger.String("path", path),
			logger.Int("dropped", dropped),
		)
	}

	return NewStore(d.Events), nil
}

// WriteFile serializes events to a catalog dump, for the generate command.
func WriteFile(path string, events []Event) error {
	d := dump{Events: events}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(d, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}
