package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
)

var ErrUpstreamUnavailable = errors.New("text generation service unavailable")

const (
	defaultGeminiModel     = "gemini-2.0-flash"
	feedbackTimeout        = 30 * time.Second
	feedbackPromptTemplate = `You are a supportive mental health companion. A user shared the following journal entry. Reply with a short, kind, encouraging reflection of two to three sentences. Do not give medical advice or a diagnosis.

Journal entry:
%s`
)

// TextGenerator produces a text completion for a prompt. The production
// implementation talks to Gemini; tests substitute a stub.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator implements TextGenerator against the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator using the given client
func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{client: client, model: model}
}

// GenerateText sends the prompt and concatenates the text parts of the first
// candidate
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates returned")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}

	result := builder.String()
	if result == "" {
		return "", errors.New("empty completion")
	}
	return result, nil
}

// FeedbackService generates reflective feedback on journal content via an
// external text-generation collaborator
type FeedbackService struct {
	generator TextGenerator
	timeout   time.Duration
}

// FeedbackServiceOption is a functional option for FeedbackService
type FeedbackServiceOption func(*FeedbackService)

// FeedbackWithGenerator sets the text generator
func FeedbackWithGenerator(g TextGenerator) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.generator = g
	}
}

// FeedbackWithTimeout overrides the upstream call timeout
func FeedbackWithTimeout(d time.Duration) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.timeout = d
	}
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(opts ...FeedbackServiceOption) *FeedbackService {
	s := &FeedbackService{timeout: feedbackTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateFeedbackRequest carries the raw journal content
type GenerateFeedbackRequest struct {
	Content string
}

// GenerateFeedbackResult carries the trimmed upstream response
type GenerateFeedbackResult struct {
	Feedback string
}

// GenerateFeedback embeds the content verbatim in the fixed instruction
// template and forwards it. One blocking round trip under an application
// timeout; no retries, no caching. Upstream failures surface as
// ErrUpstreamUnavailable.
func (s *FeedbackService) GenerateFeedback(ctx context.Context, req GenerateFeedbackRequest) (*GenerateFeedbackResult, error) {
	if s.generator == nil {
		return nil, errors.New("text generator not set")
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(feedbackPromptTemplate, req.Content)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return &GenerateFeedbackResult{Feedback: strings.TrimSpace(text)}, nil
}
