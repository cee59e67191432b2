package levels

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reusee/robo/boards"
	"github.com/reusee/robo/programs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// FromStarlark executes a level script and reads the spec from its
// globals: board (list of row strings), start (x, y, dir tuple),
// budgets (list of ints), allowed (list of instruction names), and an
// optional name.
func FromStarlark(path string) (*Spec, error) {
	thread := &starlark.Thread{
		Name: path,
	}
	predeclared := starlark.StringDict{
		"rows": starlarkutil.MakeFunc("rows", func(width, height int, fill string) []string {
			row := strings.Repeat(fill, width)
			out := make([]string, height)
			for i := range out {
				out[i] = row
			}
			return out
		}),
	}
	options := &syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}
	globals, err := starlark.ExecFileOptions(options, thread, path, nil, predeclared)
	if err != nil {
		return nil, err
	}

	spec := &Spec{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	if v, ok := globals["name"]; ok {
		spec.Name, err = goString(v)
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}

	rows, err := goStrings(globals["board"])
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	board, ok := boards.ParseRows(rows)
	if !ok {
		return nil, fmt.Errorf("%s: bad board rows", path)
	}
	spec.Board = board

	spec.Start, err = goPose(globals["start"])
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	spec.Budgets, err = goInts(globals["budgets"])
	if err != nil {
		return nil, fmt.Errorf("budgets: %w", err)
	}

	names, err := goStrings(globals["allowed"])
	if err != nil {
		return nil, fmt.Errorf("allowed: %w", err)
	}
	spec.Allowed, err = programs.ParseSet(names)
	if err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

func goString(v starlark.Value) (string, error) {
	s, ok := starlark.AsString(v)
	if !ok {
		return "", fmt.Errorf("not a string: %v", v)
	}
	return s, nil
}

func goInt(v starlark.Value) (int, error) {
	i, err := starlark.AsInt32(v)
	if err != nil {
		return 0, err
	}
	return i, nil
}

func goStrings(v starlark.Value) ([]string, error) {
	list, ok := v.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("not a list: %v", v)
	}
	out := make([]string, 0, list.Len())
	for elem := range list.Elements() {
		s, err := goString(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func goInts(v starlark.Value) ([]int, error) {
	list, ok := v.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("not a list: %v", v)
	}
	out := make([]int, 0, list.Len())
	for elem := range list.Elements() {
		i, err := goInt(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func goPose(v starlark.Value) (boards.Pose, error) {
	tuple, ok := v.(starlark.Tuple)
	if !ok || len(tuple) != 3 {
		return boards.Pose{}, fmt.Errorf("not an (x, y, dir) tuple: %v", v)
	}
	x, err := goInt(tuple[0])
	if err != nil {
		return boards.Pose{}, err
	}
	y, err := goInt(tuple[1])
	if err != nil {
		return boards.Pose{}, err
	}
	name, err := goString(tuple[2])
	if err != nil {
		return boards.Pose{}, err
	}
	dir, ok := boards.ParseDirection(name)
	if !ok {
		return boards.Pose{}, fmt.Errorf("bad direction %q", name)
	}
	return boards.Pose{X: x, Y: y, Dir: dir}, nil
}
