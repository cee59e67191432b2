package levels

import (
	"fmt"
	"path/filepath"
)

// Load reads level specs from a file, dispatching on the extension.
// A .cue file may carry several levels, a .star script carries one.
func Load(path string) ([]*Spec, error) {
	switch filepath.Ext(path) {
	case ".cue":
		return FromCUE(path)
	case ".star":
		spec, err := FromStarlark(path)
		if err != nil {
			return nil, err
		}
		return []*Spec{spec}, nil
	}
	return nil, fmt.Errorf("unknown level file type: %s", path)
}
