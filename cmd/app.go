package cmd

import (
	"fmt"

	"github.com/adalundhe/hostelbuddy/agents/complaint"
	"github.com/adalundhe/hostelbuddy/agents/coordinator"
	"github.com/adalundhe/hostelbuddy/agents/lostfound"
	"github.com/adalundhe/hostelbuddy/agents/mess"
	"github.com/adalundhe/hostelbuddy/agents/rules"
	"github.com/adalundhe/hostelbuddy/agents/status"
	"github.com/adalundhe/hostelbuddy/core/config"
	"github.com/adalundhe/hostelbuddy/core/extraction"
	"github.com/adalundhe/hostelbuddy/core/pipeline"
	"github.com/adalundhe/hostelbuddy/core/providers"
	"github.com/adalundhe/hostelbuddy/core/vision"
)

// buildPipeline assembles the full query pipeline from configuration:
// provider registry, extraction client, vision analyzer, the five
// specialists, and the coordinator that routes between them. The returned
// cleanup closes provider connections.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	registry := providers.NewRegistry()

	switch providers.ProviderType(cfg.Provider) {
	case providers.ProviderTypeOpenAI:
		if err := registry.RegisterOpenAI(cfg.OpenAI); err != nil {
			return nil, nil, fmt.Errorf("registering openai provider: %w", err)
		}
	case providers.ProviderTypeAnthropic:
		if err := registry.RegisterAnthropic(cfg.Anthropic); err != nil {
			return nil, nil, fmt.Errorf("registering anthropic provider: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}

	provider, err := registry.Default()
	if err != nil {
		return nil, nil, err
	}

	extractor := extraction.NewClient(provider,
		extraction.WithTimeout(cfg.Extraction.Timeout),
		extraction.WithMaxRetries(cfg.Extraction.MaxRetries),
	)

	visionOpts := []vision.Option{vision.WithTimeout(cfg.Extraction.Timeout)}
	if providers.ProviderType(cfg.Provider) == providers.ProviderTypeOpenAI && cfg.OpenAI.VisionModel != "" {
		visionOpts = append(visionOpts, vision.WithModel(cfg.OpenAI.VisionModel))
	}
	analyzer := vision.NewAnalyzer(provider, visionOpts...)

	coord := coordinator.New(extractor)
	coord.Register(coordinator.DomainComplaint, complaint.New(extractor, complaint.WithVision(analyzer)))
	coord.Register(coordinator.DomainLostFound, lostfound.New(extractor, lostfound.WithVision(analyzer)))
	coord.Register(coordinator.DomainMess, mess.New(extractor, mess.WithVision(analyzer)))
	coord.Register(coordinator.DomainRules, rules.New(extractor))
	coord.Register(coordinator.DomainStatus, status.New(extractor))

	return pipeline.New(coord), registry.Close, nil
}
