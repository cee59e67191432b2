package levels

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/reusee/robo/boards"
	"github.com/reusee/robo/programs"
)

//go:embed schema.cue
var schema string

type levelEntry struct {
	Name  string   `json:"name"`
	Board []string `json:"board"`
	Start struct {
		X   int    `json:"x"`
		Y   int    `json:"y"`
		Dir string `json:"dir"`
	} `json:"start"`
	Budgets []int    `json:"budgets"`
	Allowed []string `json:"allowed"`
}

type levelFile struct {
	Levels []levelEntry `json:"levels"`
}

// FromCUE loads every level in a .cue file, unified against the embedded
// schema. Returned specs are already validated.
func FromCUE(path string) ([]*Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString("close({" + schema + "})")
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("level schema: %w", err)
	}

	value := ctx.CompileBytes(content, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, err
	}
	if err := schemaValue.Unify(value).Validate(); err != nil {
		return nil, err
	}

	var file levelFile
	if err := value.Decode(&file); err != nil {
		return nil, err
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("%s: no levels", path)
	}

	specs := make([]*Spec, 0, len(file.Levels))
	for _, entry := range file.Levels {
		spec, err := entry.toSpec()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (e levelEntry) toSpec() (*Spec, error) {
	board, ok := boards.ParseRows(e.Board)
	if !ok {
		return nil, fmt.Errorf("level %s: bad board rows", e.Name)
	}
	dir, ok := boards.ParseDirection(e.Start.Dir)
	if !ok {
		return nil, fmt.Errorf("level %s: bad direction %q", e.Name, e.Start.Dir)
	}
	set, err := programs.ParseSet(e.Allowed)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", e.Name, err)
	}
	spec := &Spec{
		Name:  e.Name,
		Board: board,
		Start: boards.Pose{
			X:   e.Start.X,
			Y:   e.Start.Y,
			Dir: dir,
		},
		Budgets: e.Budgets,
		Allowed: set,
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
