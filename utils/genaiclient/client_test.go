package genaiclient_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubgo/promptrun/utils"
	"github.com/pubgo/promptrun/utils/genaiclient"
)

func newMockServer(t *testing.T, hits *atomic.Int64, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const helloBody = `{
  "candidates": [
    {"content": {"role": "model", "parts": [{"text": "Hello!"}]}, "finishReason": "STOP"}
  ],
  "usageMetadata": {"promptTokenCount": 3, "candidatesTokenCount": 2, "totalTokenCount": 5}
}`

func newTestClient(srvURL string) *genaiclient.Client {
	return genaiclient.New(&genaiclient.Config{
		Project:        "demo-project",
		Location:       "us-central1",
		Model:          "model-v1",
		APIKey:         "test-key",
		BaseURL:        srvURL,
		ModelAllowlist: []string{"model-*"},
	})
}

func TestRunSequence(t *testing.T) {
	var hits atomic.Int64
	srv := newMockServer(t, &hits, http.StatusOK, helloBody)

	ctx := context.Background()
	client := newTestClient(srv.URL)
	require.NoError(t, client.Init(ctx))

	model, err := client.SelectModel("model-v1")
	require.NoError(t, err)
	assert.Equal(t, "model-v1", model)

	rsp, err := client.Generate(ctx, "Say hello.")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", rsp.Text)
	assert.Equal(t, "model-v1", rsp.Model)
	assert.Equal(t, int32(5), rsp.TotalTokens)
	assert.Equal(t, int64(1), hits.Load())

	var out bytes.Buffer
	utils.RenderResponse(&out, rsp.Text)
	assert.Equal(t, "Model Response:\n---------------\nHello!\n", out.String())
}

func TestRunTwiceSameOutput(t *testing.T) {
	var hits atomic.Int64
	srv := newMockServer(t, &hits, http.StatusOK, helloBody)
	ctx := context.Background()

	render := func() string {
		client := newTestClient(srv.URL)
		rsp, err := client.Generate(ctx, "Say hello.")
		require.NoError(t, err)
		var out bytes.Buffer
		utils.RenderResponse(&out, rsp.Text)
		return out.String()
	}

	first := render()
	second := render()
	assert.Equal(t, first, second)
	assert.Equal(t, int64(2), hits.Load())
}

func TestEmptyPromptFailsBeforeRequest(t *testing.T) {
	var hits atomic.Int64
	srv := newMockServer(t, &hits, http.StatusOK, helloBody)

	client := newTestClient(srv.URL)
	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := client.Generate(context.Background(), prompt)
		assert.ErrorIs(t, err, genaiclient.ErrEmptyPrompt)
	}
	assert.Equal(t, int64(0), hits.Load())
}

func TestUnknownModelFailsBeforeRequest(t *testing.T) {
	var hits atomic.Int64
	srv := newMockServer(t, &hits, http.StatusOK, helloBody)

	client := newTestClient(srv.URL)
	_, err := client.SelectModel("gpt-4o")
	assert.ErrorIs(t, err, genaiclient.ErrUnknownModel)
	assert.Equal(t, int64(0), hits.Load())
}

func TestMissingProjectAndLocation(t *testing.T) {
	err := genaiclient.New(&genaiclient.Config{Location: "us-central1"}).Init(context.Background())
	assert.ErrorIs(t, err, genaiclient.ErrMissingProject)

	err = genaiclient.New(&genaiclient.Config{Project: "demo-project"}).Init(context.Background())
	assert.ErrorIs(t, err, genaiclient.ErrMissingLocation)
}

func TestServiceErrorPropagates(t *testing.T) {
	var hits atomic.Int64
	srv := newMockServer(t, &hits, http.StatusInternalServerError, `{"error": {"code": 500, "message": "internal error", "status": "INTERNAL"}}`)

	client := newTestClient(srv.URL)
	rsp, err := client.Generate(context.Background(), "Say hello.")
	assert.Error(t, err)
	assert.Nil(t, rsp)
	assert.Equal(t, int64(1), hits.Load())
}

func TestBlockedPrompt(t *testing.T) {
	var hits atomic.Int64
	srv := newMockServer(t, &hits, http.StatusOK, `{"promptFeedback": {"blockReason": "SAFETY"}}`)

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), "Say hello.")
	assert.ErrorIs(t, err, genaiclient.ErrBlocked)
}

func TestEmptyCandidates(t *testing.T) {
	var hits atomic.Int64
	srv := newMockServer(t, &hits, http.StatusOK, `{"candidates": []}`)

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), "Say hello.")
	assert.ErrorIs(t, err, genaiclient.ErrEmptyResponse)
}
