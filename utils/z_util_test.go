package utils_test

import (
	"strings"
	"testing"

	"github.com/pubgo/promptrun/utils"
	"github.com/stretchr/testify/assert"
)

func TestRenderResponse(t *testing.T) {
	var buf strings.Builder
	assert.NoError(t, utils.RenderResponse(&buf, "Hello!"))
	assert.Equal(t, "Model Response:\n---------------\nHello!\n", buf.String())
}

func TestRenderResponseKeepsTextVerbatim(t *testing.T) {
	var buf strings.Builder
	text := "line one\n\nline two"
	assert.NoError(t, utils.RenderResponse(&buf, text))
	assert.Equal(t, "Model Response:\n---------------\n"+text+"\n", buf.String())
}

func TestUsageDesc(t *testing.T) {
	assert.Equal(t, "Run one prompt", utils.UsageDesc("run one prompt"))
}
