package brain

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/sunyue-dev/time-exchange/internal/logging"
)

type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel  string
	gotPrompt string
	gotConfig *genai.GenerateContentConfig
	calls     int
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.gotModel = model
	f.gotConfig = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func newClient(f *fakeModels) *GeminiClient {
	return &GeminiClient{
		models:     f,
		textModel:  "text-model",
		imageModel: "image-model",
		log:        logging.Nop{},
	}
}

func TestGenerateIdentity_RequestFailure_ReturnsFallbackPair(t *testing.T) {
	f := &fakeModels{err: errors.New("network down")}
	c := newClient(f)

	p := c.GenerateIdentity(context.Background(), "有点焦虑")

	assert.Equal(t, FallbackTitle, p.Title)
	assert.Equal(t, FallbackMantra, p.Mantra)
}

func TestGenerateIdentity_ValidJSON_Parsed(t *testing.T) {
	f := &fakeModels{resp: textResponse(`{"title":"T","mantra":"M"}`)}
	c := newClient(f)

	p := c.GenerateIdentity(context.Background(), "窗外的阳光很好")

	assert.Equal(t, "T", p.Title)
	assert.Equal(t, "M", p.Mantra)
	assert.Equal(t, "text-model", f.gotModel)
	require.NotNil(t, f.gotConfig)
	assert.Equal(t, "application/json", f.gotConfig.ResponseMIMEType)
	assert.Contains(t, f.gotPrompt, "窗外的阳光很好")
}

func TestGenerateIdentity_FencedJSON_Parsed(t *testing.T) {
	f := &fakeModels{resp: textResponse("```json\n{\"title\":\"T\",\"mantra\":\"M\"}\n```")}
	c := newClient(f)

	p := c.GenerateIdentity(context.Background(), "mood")

	assert.Equal(t, "T", p.Title)
	assert.Equal(t, "M", p.Mantra)
}

func TestGenerateIdentity_UnparsableResponse_UsesDefaults(t *testing.T) {
	f := &fakeModels{resp: textResponse("今天天气不错")}
	c := newClient(f)

	p := c.GenerateIdentity(context.Background(), "mood")

	assert.Equal(t, DefaultTitle, p.Title)
	assert.Equal(t, DefaultMantra, p.Mantra)
}

func TestGenerateIdentity_MissingField_DefaultsPerField(t *testing.T) {
	f := &fakeModels{resp: textResponse(`{"title":"T"}`)}
	c := newClient(f)

	p := c.GenerateIdentity(context.Background(), "mood")

	assert.Equal(t, "T", p.Title)
	assert.Equal(t, DefaultMantra, p.Mantra)
}

func TestGenerateScenario_Success(t *testing.T) {
	f := &fakeModels{resp: textResponse("雨滴沿着屋檐滑落。")}
	c := newClient(f)

	text, ok := c.GenerateScenario(context.Background(), "阵雨")

	require.True(t, ok)
	assert.Equal(t, "雨滴沿着屋檐滑落。", text)
	assert.Contains(t, f.gotPrompt, "阵雨")
}

func TestGenerateScenario_Failure_Absent(t *testing.T) {
	f := &fakeModels{err: errors.New("boom")}
	c := newClient(f)

	text, ok := c.GenerateScenario(context.Background(), "seed")

	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestGenerateScenario_EmptyResponse_Absent(t *testing.T) {
	f := &fakeModels{resp: &genai.GenerateContentResponse{}}
	c := newClient(f)

	_, ok := c.GenerateScenario(context.Background(), "seed")
	assert.False(t, ok)
}

func TestGenerateImage_InlinePayload_ReturnsDataURI(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4E, 0x47}
	f := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here is your image"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: data}},
			}}},
		},
	}}
	c := newClient(f)

	uri, ok := c.GenerateImage(context.Background(), "雨后初晴的街道")

	require.True(t, ok)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), strings.TrimPrefix(uri, "data:image/png;base64,"))
	assert.Equal(t, "image-model", f.gotModel)
	require.NotNil(t, f.gotConfig)
	require.NotNil(t, f.gotConfig.ImageConfig)
	assert.Equal(t, "3:4", f.gotConfig.ImageConfig.AspectRatio)
}

func TestGenerateImage_NoInlinePart_Absent(t *testing.T) {
	f := &fakeModels{resp: textResponse("no image, just words")}
	c := newClient(f)

	uri, ok := c.GenerateImage(context.Background(), "scene")

	assert.False(t, ok)
	assert.Empty(t, uri)
}

func TestGenerateImage_RequestFailure_Absent(t *testing.T) {
	f := &fakeModels{err: errors.New("quota exceeded")}
	c := newClient(f)

	_, ok := c.GenerateImage(context.Background(), "scene")
	assert.False(t, ok)
}

func TestGenerateReflection_Success(t *testing.T) {
	f := &fakeModels{resp: textResponse("十分钟，也是一生。")}
	c := newClient(f)

	got := c.GenerateReflection(context.Background(), "我在阳台上发呆")

	assert.Equal(t, "十分钟，也是一生。", got)
}

func TestGenerateReflection_Failure_ReturnsFallback(t *testing.T) {
	f := &fakeModels{err: errors.New("boom")}
	c := newClient(f)

	got := c.GenerateReflection(context.Background(), "content")

	assert.Equal(t, FallbackReflection, got)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "t", "i", logging.Nop{})
	require.Error(t, err)
}

func TestFallbackGenerator_Contract(t *testing.T) {
	ctx := context.Background()
	g := FallbackGenerator{}

	p := g.GenerateIdentity(ctx, "mood")
	assert.Equal(t, FallbackTitle, p.Title)
	assert.Equal(t, FallbackMantra, p.Mantra)

	_, ok := g.GenerateScenario(ctx, "seed")
	assert.False(t, ok)

	_, ok = g.GenerateImage(ctx, "scene")
	assert.False(t, ok)

	assert.Equal(t, FallbackReflection, g.GenerateReflection(ctx, "content"))
}
