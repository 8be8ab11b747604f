package brain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/sunyue-dev/time-exchange/internal/logging"
)

const (
	identityPromptFmt = `用户此刻的心境："%s"。请为该用户生成一个独特的"时间使者"身份。
要求返回 JSON 格式：
{
  "title": "一个诗意的头衔，如'落日余晖的捕捉者'",
  "mantra": "一句关于时间的格言，不超过15个字"
}`

	scenarioPromptFmt = `基于以下内容，创作一个富有诗意的、适合改编成漫剧的10分钟生活片段场景描述：%s. 返回一段简短动人的文字。`

	imagePromptFmt = `A cinematic, minimalist watercolor style illustration of this scene: %s. Muted earthy tones, focus on atmosphere and light.`

	reflectionPromptFmt = `你是一个温柔的观察者。用户记录了这10分钟：%s。请给出一个极简、诗意的回应（不超过15个字），作为这段时间的结语。`

	imageAspectRatio = "3:4"
)

// contentGenerator is the slice of the genai SDK the client uses.
// *genai.Models satisfies it; tests substitute a fake.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	models     contentGenerator
	textModel  string
	imageModel string
	log        logging.Logger
}

var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient builds a Generator backed by the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, textModel, imageModel string, log logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		models:     client.Models,
		textModel:  textModel,
		imageModel: imageModel,
		log:        log,
	}, nil
}

// generateText runs a single text round trip and returns the first text part.
func (c *GeminiClient) generateText(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	result, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateIdentity asks the text model for a structured title/mantra pair.
// A request failure yields the fixed fallback pair; a response that survives
// the round trip but cannot be parsed yields per-field defaults. Identity
// creation always succeeds from the caller's point of view.
func (c *GeminiClient) GenerateIdentity(ctx context.Context, mood string) IdentityProfile {
	prompt := fmt.Sprintf(identityPromptFmt, mood)
	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}

	raw, err := c.generateText(ctx, prompt, cfg)
	if err != nil {
		c.log.Warn(ctx, "identity generation failed, using fallback", "error", err)
		return IdentityProfile{Title: FallbackTitle, Mantra: FallbackMantra}
	}

	var p IdentityProfile
	if err := json.Unmarshal([]byte(extractJSON(raw)), &p); err != nil {
		c.log.Warn(ctx, "identity response is not valid JSON", "error", err)
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Mantra == "" {
		p.Mantra = DefaultMantra
	}
	return p
}

// GenerateScenario asks for a short poetic scene description. Absent on any
// failure; the caller substitutes its own seed text for the follow-up call.
func (c *GeminiClient) GenerateScenario(ctx context.Context, seed string) (string, bool) {
	text, err := c.generateText(ctx, fmt.Sprintf(scenarioPromptFmt, seed), nil)
	if err != nil || text == "" {
		c.log.Warn(ctx, "scenario generation failed", "error", err)
		return "", false
	}
	return text, true
}

// GenerateImage asks the image model for a single stylized illustration and
// returns the first inline image payload as a data URI. Absent if the request
// fails or no inline image part is present.
func (c *GeminiClient) GenerateImage(ctx context.Context, scene string) (string, bool) {
	cfg := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: imageAspectRatio},
	}

	result, err := c.models.GenerateContent(ctx, c.imageModel, genai.Text(fmt.Sprintf(imagePromptFmt, scene)), cfg)
	if err != nil {
		c.log.Warn(ctx, "image generation failed", "error", err)
		return "", false
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", false
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(part.InlineData.Data)), true
	}
	return "", false
}

// GenerateReflection asks for a short closing line for a user-authored record.
func (c *GeminiClient) GenerateReflection(ctx context.Context, content string) string {
	text, err := c.generateText(ctx, fmt.Sprintf(reflectionPromptFmt, content), nil)
	if err != nil || text == "" {
		c.log.Warn(ctx, "reflection generation failed, using fallback", "error", err)
		return FallbackReflection
	}
	return text
}
