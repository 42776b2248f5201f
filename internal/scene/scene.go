// Package scene holds named object layouts that hosts can load by name.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"yee2d/internal/core"
	"yee2d/internal/material"
)

// ErrUnknownScene is returned by Lookup and Build for unregistered names.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Factory lays out objects for a grid of the given size. seed only matters
// for randomised layouts.
type Factory func(size core.Size, seed int64) []material.Object

var presets = map[string]Factory{}

// Register adds a preset under name, replacing any previous entry.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return f, nil
}

// Build runs the named preset for size and seed.
func Build(name string, size core.Size, seed int64) ([]material.Object, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(size, seed), nil
}

// Names lists the registered presets in sorted order.
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
