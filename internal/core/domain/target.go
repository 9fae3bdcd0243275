package domain

import (
	"strings"

	"github.com/bazelbuild/buildtools/labels"
	"go.trai.ch/zerr"
)

// RootMarker prefixes every absolute build label.
const RootMarker = "//"

// Target identifies a node in the outer build graph.
type Target struct {
	// Path is the package path relative to the graph root, without the root marker.
	Path string
	// Name is the target's short name.
	Name string
}

// ParseLabel resolves a label of the form //path[:name] into a Target.
// The name follows the last colon. When no explicit name is given the final
// path segment is used.
func ParseLabel(label string) (Target, error) {
	if !strings.HasPrefix(label, RootMarker) {
		return Target{}, zerr.With(ErrMalformedLabel, "label", label)
	}

	base := strings.TrimPrefix(label, RootMarker)
	if i := strings.LastIndex(base, ":"); i >= 0 {
		name := base[i+1:]
		if name == "" {
			return Target{}, zerr.With(ErrMalformedLabel, "label", label)
		}
		return Target{Path: base[:i], Name: name}, nil
	}

	if base == "" || strings.HasSuffix(base, "/") {
		return Target{}, zerr.With(ErrMalformedLabel, "label", label)
	}

	implicit := labels.Parse(label)
	if implicit.Target == "" || implicit.Target == "." {
		return Target{}, zerr.With(ErrMalformedLabel, "label", label)
	}

	return Target{Path: base, Name: implicit.Target}, nil
}

// String formats the target back into its canonical label.
func (t Target) String() string {
	return RootMarker + t.Path + ":" + t.Name
}
