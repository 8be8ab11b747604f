package feed

import (
	"context"

	"github.com/sunyue-dev/time-exchange/internal/brain"
	"github.com/sunyue-dev/time-exchange/internal/models"
)

const (
	// defaultComicSeed is the topic fed to scenario generation.
	defaultComicSeed = "一场突如其来的阵雨，人们在街角屋檐下静静等待。"

	// absentScenarioScene drives image generation when the scenario call
	// returned nothing; the entry is still reported as failed in that case.
	absentScenarioScene = "雨后初晴的街道"
)

// ComicService produces the illustrated-scenario entry for the comic tab by
// chaining scenario-text generation and image generation, strictly in that
// order and one call at a time. The result is cached for the lifetime of the
// service instance; a feed screen constructs one service per visit.
type ComicService struct {
	gen    brain.Generator
	seed   string
	cached *models.ComicEntry
}

func NewComicService(gen brain.Generator) *ComicService {
	return &ComicService{gen: gen, seed: defaultComicSeed}
}

// Load returns the comic entry, generating it on first use. The second value
// is false when either chained call came back absent; the tab then shows its
// failure placeholder. A failed load is not cached, so re-activating the tab
// retries.
func (s *ComicService) Load(ctx context.Context) (*models.ComicEntry, bool) {
	if s.cached != nil {
		return s.cached, true
	}

	text, haveText := s.gen.GenerateScenario(ctx, s.seed)

	scene := text
	if !haveText {
		scene = absentScenarioScene
	}
	image, haveImage := s.gen.GenerateImage(ctx, scene)

	if !haveText || !haveImage {
		return nil, false
	}

	s.cached = &models.ComicEntry{Image: image, Text: text}
	return s.cached, true
}

// Refresh discards the cached entry and generates a new one.
func (s *ComicService) Refresh(ctx context.Context) (*models.ComicEntry, bool) {
	s.cached = nil
	return s.Load(ctx)
}
