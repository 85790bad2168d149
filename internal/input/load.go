package input

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonfocus/internal/logging"
)

// Parse decodes an activity document.
func Parse(data []byte) (*ActivityFile, error) {
	var f ActivityFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &f, nil
}

// Read decodes an activity document from r.
func Read(r io.Reader) (*ActivityFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse(data)
}

// LoadFile reads and decodes path. It does not validate.
func LoadFile(ctx context.Context, path string) (*ActivityFile, error) {
	log := logging.FromContext(ctx)
	log.Debug().Ctx(ctx).Str("component", "input").Str("path", path).Msg("loading activity file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *ActivityFile) ([]byte, error) {
	return yaml.Marshal(f)
}
