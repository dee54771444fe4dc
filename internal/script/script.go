// Package script runs user-supplied tengo macros against the grid. A
// macro sees the grid through get/set/fill bindings plus cols/rows; the
// editor wraps each run in a single history checkpoint.
package script

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"tilepaint/internal/grid"
)

// Macro is a discovered script file.
type Macro struct {
	Name string
	Path string
}

// Discover lists the *.tengo files in dir, sorted by name.
func Discover(dir string) ([]Macro, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var macros []Macro
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.ToLower(filepath.Ext(name)) != ".tengo" {
			continue
		}
		macros = append(macros, Macro{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}
	sort.Slice(macros, func(i, j int) bool { return macros[i].Name < macros[j].Name })
	return macros, nil
}

// Run compiles and executes src with grid bindings over s. Out-of-range
// set calls follow the store's silent no-op policy; fill replaces the
// 4-connected region containing the seed cell.
func Run(src []byte, s *grid.Store) error {
	sc := tengo.NewScript(src)
	sc.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	_ = sc.Add("cols", s.Cols())
	_ = sc.Add("rows", s.Rows())
	_ = sc.Add("empty", string(grid.Empty))

	_ = sc.Add("get", &tengo.UserFunction{Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y, err := intPair(args)
		if err != nil {
			return nil, err
		}
		return &tengo.String{Value: string(s.Get(x, y))}, nil
	}})

	_ = sc.Add("set", &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, y, err := intPair(args[:2])
		if err != nil {
			return nil, err
		}
		id, ok := tengo.ToString(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "id", Expected: "string", Found: args[2].TypeName()}
		}
		s.Set(x, y, grid.TileID(id))
		return tengo.UndefinedValue, nil
	}})

	_ = sc.Add("fill", &tengo.UserFunction{Name: "fill", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, y, err := intPair(args[:2])
		if err != nil {
			return nil, err
		}
		id, ok := tengo.ToString(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "id", Expected: "string", Found: args[2].TypeName()}
		}
		changed := s.Fill(x, y, s.Get(x, y), grid.TileID(id))
		if changed {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}})

	_, err := sc.Run()
	return err
}

func intPair(args []tengo.Object) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToInt(args[0])
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "x", Expected: "int", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToInt(args[1])
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "y", Expected: "int", Found: args[1].TypeName()}
	}
	return x, y, nil
}
