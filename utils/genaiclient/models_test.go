package genaiclient

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownModelsSorted(t *testing.T) {
	models := KnownModels()
	assert.NotEmpty(t, models)
	assert.True(t, sort.StringsAreSorted(models))
	assert.True(t, IsKnownModel("gemini-2.5-pro"))
	assert.False(t, IsKnownModel("model-v1"))
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("gemini-2.5-pro"))
	assert.True(t, Allowed("gemini-3.0-experimental"))
	assert.True(t, Allowed("publishers/google/models/gemini-2.5-pro"))
	assert.True(t, Allowed("projects/p/locations/us-central1/publishers/google/models/gemini-2.5-pro"))

	assert.False(t, Allowed(""))
	assert.False(t, Allowed("gpt-4o"))
	assert.False(t, Allowed("model-v1"))

	assert.True(t, Allowed("model-v1", "model-*"))
	assert.False(t, Allowed("model-v1", "other-*"))
}
