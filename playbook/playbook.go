// Package playbook replays scripted edits onto a reorderable list of strings.
//
// A playbook names the starting items (inline, or in a separate text file) and
// a list of operations. It can be written in YAML:
//
//	items: [b, c, a]
//	ops:
//	  - op: move
//	    from: 2
//	    to: 0
//	  - op: insertAfter
//	    index: 0
//	    value: foo
//
// or in TOML, using [[ops]] tables.
package playbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/amp-labs/reorderable/errors"
	"github.com/amp-labs/reorderable/logger"
	"github.com/pelletier/go-toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Op is one scripted operation. Which fields matter depends on Op:
//
//	push         Value
//	insertAt     Index, Value
//	insertAfter  Index, Value
//	drop         Index
//	set          Index, Value
//	swap         I, J
//	moveUp       Index
//	moveDown     Index
//	move         From, To
//	reverse      -
//	sort         -     (natural string order)
//
// Op names are matched case-insensitively.
type Op struct {
	Op    string `yaml:"op"              toml:"op"`
	Index int    `yaml:"index,omitempty" toml:"index,omitempty"`
	From  int    `yaml:"from,omitempty"  toml:"from,omitempty"`
	To    int    `yaml:"to,omitempty"    toml:"to,omitempty"`
	I     int    `yaml:"i,omitempty"     toml:"i,omitempty"`
	J     int    `yaml:"j,omitempty"     toml:"j,omitempty"`
	Value string `yaml:"value,omitempty" toml:"value,omitempty"`
}

// Playbook is a starting list plus the operations to apply to it.
type Playbook struct {
	// Items is the starting list. Ignored when ItemsFile is set.
	Items []string `yaml:"items,omitempty" toml:"items,omitempty"`

	// ItemsFile names a text file with one item per line, relative to the
	// playbook's own directory.
	ItemsFile string `yaml:"itemsFile,omitempty" toml:"itemsFile,omitempty"`

	// Strict makes out-of-range indices fail the run instead of being skipped.
	Strict bool `yaml:"strict,omitempty" toml:"strict,omitempty"`

	Ops []Op `yaml:"ops,omitempty" toml:"ops,omitempty"`
}

// Load reads a playbook from fs. The format is picked by extension: .yaml and
// .yml are YAML, .toml is TOML. Anything else is errors.ErrUnsupportedFormat.
// If the playbook references an ItemsFile, it is loaded with LoadItems.
func Load(fs afero.Fs, path string) (*Playbook, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading playbook: %w", err)
	}

	pb := &Playbook{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, pb)
	case ".toml":
		err = toml.Unmarshal(data, pb)
	default:
		return nil, logger.AnnotateError(
			fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, ext),
			"path", path)
	}

	if err != nil {
		return nil, logger.AnnotateError(fmt.Errorf("parsing playbook: %w", err), "path", path)
	}

	if pb.ItemsFile != "" {
		itemsPath := pb.ItemsFile
		if !filepath.IsAbs(itemsPath) {
			itemsPath = filepath.Join(filepath.Dir(path), itemsPath)
		}

		pb.Items, err = LoadItems(fs, itemsPath)
		if err != nil {
			return nil, err
		}
	}

	return pb, nil
}

// Save writes pb to path on fs, picking the format by extension like Load.
func Save(fs afero.Fs, path string, pb Playbook) error {
	var (
		data []byte
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(pb)
	case ".toml":
		data, err = toml.Marshal(pb)
	default:
		return logger.AnnotateError(
			fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, ext),
			"path", path)
	}

	if err != nil {
		return logger.AnnotateError(fmt.Errorf("encoding playbook: %w", err), "path", path)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil { //nolint:mnd
		return fmt.Errorf("writing playbook: %w", err)
	}

	return nil
}
