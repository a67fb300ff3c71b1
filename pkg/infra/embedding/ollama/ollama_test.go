package ollama

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx/httpxtest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestEncoder_Encode(t *testing.T) {
	doer := httpxtest.NewClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "/api/embed", string(ctx.Path()))

		var req embedRequest
		require.NoError(t, json.Unmarshal(ctx.PostBody(), &req))
		assert.Equal(t, "all-minilm", req.Model)
		assert.Equal(t, "5m", req.KeepAlive)
		assert.Equal(t, []string{"photosynthesis", "respiration"}, req.Input)

		ctx.SetBodyString(`{"model":"all-minilm","embeddings":[[0,2],[1,0]]}`)
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	enc, err := NewEncoder(httpx.NewClient(doer, time.Second), &embedding.Config{
		Provider: ProviderName,
		Options:  map[string]interface{}{"keep_alive": "5m"},
	}, logger)
	require.NoError(t, err)

	out, err := enc.Encode(context.Background(), []string{"photosynthesis", "respiration"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []float64{0, 1}, out[0].Value)
	assert.Equal(t, "respiration", out[1].Text)
}

func TestEncoder_Encode_NotFound(t *testing.T) {
	doer := httpxtest.NewClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetBodyString(`{"error":"model \"all-minilm\" not found"}`)
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	enc, err := NewEncoder(httpx.NewClient(doer, time.Second), &embedding.Config{Provider: ProviderName}, logger)
	require.NoError(t, err)

	_, err = enc.Encode(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, embedding.ErrProviderNonOKResponse)
	assert.Contains(t, err.Error(), "not found")
}
