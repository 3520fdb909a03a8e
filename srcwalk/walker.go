// Package srcwalk builds registries by walking Go source trees: every
// exported top-level function and type declaration becomes a registry entry
// under its derived key. Subdirectories become nested registries, so path
// lookups like "subpkg.member" resolve across packages.
package srcwalk

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/autoreg/registry"
)

// Kind classifies a discovered symbol.
type Kind string

const (
	KindFunc Kind = "func"
	KindType Kind = "type"
)

// Symbol is one exported top-level declaration discovered during a walk.
type Symbol struct {
	// Name is the declared identifier.
	Name string

	// Kind is the declaration kind.
	Kind Kind

	// Package is the declaring package name.
	Package string

	// File is the declaring file, relative to the walk root.
	File string
}

// Config configures a Walker.
type Config struct {
	// Root is the directory to walk.
	Root string

	// Includes are doublestar patterns matched against root-relative file
	// paths. Defaults to all Go files.
	Includes []string

	// Excludes are doublestar patterns removing files from the walk.
	Excludes []string

	// Naming configures the naming pipeline of every produced registry.
	// Recursive controls whether subdirectories are descended.
	Naming []registry.Option

	// Logger for walk diagnostics.
	Logger *slog.Logger
}

// Walker discovers exported declarations under a source root.
type Walker struct {
	cfg    Config
	logger *slog.Logger
}

// NewWalker creates a walker with defaults applied.
func NewWalker(cfg Config) *Walker {
	if len(cfg.Includes) == 0 {
		cfg.Includes = []string{"**/*.go"}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{cfg: cfg, logger: logger}
}

// Walk parses every matching Go file under the root and returns a registry
// of the discovered symbols. Each visited directory is walked at most once,
// so symlink loops terminate.
func (w *Walker) Walk(ctx context.Context) (*registry.Registry, error) {
	root, err := filepath.Abs(w.cfg.Root)
	if err != nil {
		return nil, err
	}
	visited := make(map[string]struct{})
	reg, err := w.walkDir(ctx, root, "", visited)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("Source walk complete",
		slog.String("root", root), slog.Int("entries", reg.Len()))
	return reg, nil
}

func (w *Walker) walkDir(ctx context.Context, dir, rel string, visited map[string]struct{}) (*registry.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		real = dir
	}
	if _, ok := visited[real]; ok {
		return registry.New(w.cfg.Naming...), nil
	}
	visited[real] = struct{}{}

	reg := registry.New(w.cfg.Naming...)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		relPath := path.Join(rel, name)
		if !w.matches(relPath) {
			continue
		}
		symbols, err := w.parseFile(filepath.Join(dir, name), relPath)
		if err != nil {
			w.logger.Warn("Skipping unparsable file",
				slog.String("file", relPath), slog.String("error", err.Error()))
			continue
		}
		for _, sym := range symbols {
			if _, err := reg.Register(sym, registry.WithIdentifier(sym.Name)); err != nil {
				return nil, fmt.Errorf("register %s from %s: %w", sym.Name, relPath, err)
			}
		}
	}

	if !reg.Config().Recursive {
		return reg, nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || skipDir(name) {
			continue
		}
		sub, err := w.walkDir(ctx, filepath.Join(dir, name), path.Join(rel, name), visited)
		if err != nil {
			return nil, err
		}
		if sub.Len() == 0 {
			continue
		}
		if _, err := reg.Register(sub, registry.WithIdentifier(name)); err != nil {
			return nil, fmt.Errorf("register package %s: %w", name, err)
		}
	}

	return reg, nil
}

// matches applies include then exclude patterns to a root-relative path.
func (w *Walker) matches(relPath string) bool {
	included := false
	for _, pattern := range w.cfg.Includes {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range w.cfg.Excludes {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return false
		}
	}
	return true
}

// parseFile extracts the exported top-level declarations of one file.
func (w *Walker) parseFile(absPath, relPath string) ([]Symbol, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, absPath, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	var symbols []Symbol
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil || !d.Name.IsExported() {
				continue
			}
			symbols = append(symbols, Symbol{
				Name:    d.Name.Name,
				Kind:    KindFunc,
				Package: file.Name.Name,
				File:    relPath,
			})
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				symbols = append(symbols, Symbol{
					Name:    ts.Name.Name,
					Kind:    KindType,
					Package: file.Name.Name,
					File:    relPath,
				})
			}
		}
	}
	return symbols, nil
}

// skipDir filters directories the Go toolchain itself ignores.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "_") ||
		name == "vendor" ||
		name == "testdata"
}
