package genaiclient

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/tidwall/match"
)

// knownModels is the known-good set of model identifiers the CLI ships with.
var knownModels = mapset.NewSet(
	"gemini-2.5-pro",
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash-001",
	"gemini-2.0-flash-lite-001",
	"gemini-1.5-pro-002",
	"gemini-1.5-flash-002",
)

// modelPatterns accepts names outside the set that still look like valid
// Vertex model references.
var modelPatterns = []string{
	"gemini-*",
	"publishers/google/models/*",
	"projects/*/locations/*/publishers/*/models/*",
}

func KnownModels() []string {
	models := knownModels.ToSlice()
	sort.Strings(models)
	return models
}

func IsKnownModel(name string) bool { return knownModels.Contains(name) }

// Allowed reports whether name is acceptable as a model identifier, either
// from the known set, the built-in patterns or the extra allowlist patterns.
func Allowed(name string, extra ...string) bool {
	if name == "" {
		return false
	}

	if knownModels.Contains(name) {
		return true
	}

	for _, pattern := range modelPatterns {
		if match.Match(name, pattern) {
			return true
		}
	}

	for _, pattern := range extra {
		if match.Match(name, pattern) {
			return true
		}
	}

	return false
}
