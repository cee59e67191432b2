package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads a list of CUE files lazily, validating each against a
// schema. Files earlier in the list shadow later ones: lookups walk
// the files in order and the first definition wins.
type Loader struct {
	getSources func() ([]source, error)
}

type source struct {
	file string
	root cue.Value
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		getSources: sync.OnceValues(func() (ret []source, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				root := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = root.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(root).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, source{
					file: filePath,
					root: root,
				})
			}

			return
		}),
	}
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		sources, err := l.getSources()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, src := range sources {
			value := src.root.LookupPath(cuePath)
			if err := value.Err(); err == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
