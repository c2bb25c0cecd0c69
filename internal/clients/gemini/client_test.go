package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	model  string
	prompt string
	config *genai.GenerateContentConfig
	calls  int
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestGenerateContent_ConcatenatesParts(t *testing.T) {
	fm := &fakeModels{resp: textResponse("Tech leads. ", "Semis follow.")}
	c := newClient(fm, WithModel("gemini-test"))

	text, err := c.GenerateContent(context.Background(), "summarise")
	require.NoError(t, err)

	assert.Equal(t, "Tech leads. Semis follow.", text)
	assert.Equal(t, "gemini-test", fm.model)
	assert.Equal(t, "summarise", fm.prompt)
	assert.Nil(t, fm.config)
}

func TestGenerateJSON_SetsSchemaAndMIMEType(t *testing.T) {
	fm := &fakeModels{resp: textResponse(`[]`)}
	c := newClient(fm)
	schema := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}

	text, err := c.GenerateJSON(context.Background(), "list", schema)
	require.NoError(t, err)

	assert.Equal(t, "[]", text)
	require.NotNil(t, fm.config)
	assert.Equal(t, "application/json", fm.config.ResponseMIMEType)
	assert.Same(t, schema, fm.config.ResponseSchema)
	assert.Equal(t, DefaultModel, fm.model)
}

func TestGenerateContent_WrapsProviderError(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	c := newClient(&fakeModels{err: sentinel})

	_, err := c.GenerateContent(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	c := newClient(&fakeModels{resp: &genai.GenerateContentResponse{}})

	_, err := c.GenerateContent(context.Background(), "x")
	assert.Error(t, err)
}

func TestGenerateContent_CancelledContextSkipsCall(t *testing.T) {
	fm := &fakeModels{resp: textResponse("x")}
	c := newClient(fm, WithRateLimit(1))
	// Drain the single token so the next Wait must block on ctx.
	require.True(t, c.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GenerateContent(ctx, "x")
	assert.Error(t, err)
	assert.Equal(t, 0, fm.calls)
}

func TestWithModel_EmptyKeepsDefault(t *testing.T) {
	c := newClient(&fakeModels{}, WithModel(""))
	assert.Equal(t, DefaultModel, c.Model())
}
