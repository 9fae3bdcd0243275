package domain

import "slices"

// AggregateNativeLibs returns the sorted, deduplicated union of native_libs
// across the given dependencies.
func AggregateNativeLibs(deps []DependencyInfo) []string {
	seen := make(map[string]struct{})
	for _, dep := range deps {
		for _, lib := range dep.NativeLibs {
			seen[lib] = struct{}{}
		}
	}

	libs := make([]string, 0, len(seen))
	for lib := range seen {
		libs = append(libs, lib)
	}
	slices.Sort(libs)
	return libs
}
