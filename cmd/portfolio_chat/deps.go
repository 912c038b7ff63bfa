package main

import (
	"context"
	"log"

	"github.com/abrar/portfolio-chat/internal/chat"
	"github.com/abrar/portfolio-chat/internal/config"
	"github.com/abrar/portfolio-chat/internal/llm"
	"github.com/abrar/portfolio-chat/internal/resume"
)

// buildResponderDeps loads the résumé store and, when a credential is
// configured, the Gemini client. A missing or broken credential only disables
// the generative stages; it never prevents startup. The returned cleanup is
// always safe to call.
func buildResponderDeps(ctx context.Context, cfg *config.Config) (*resume.Store, chat.Model, func()) {
	store := resume.LoadStore(cfg.ResumeJSONPath, cfg.ResumeTextPath)

	if cfg.APIKey == "" {
		log.Println("No GEMINI_API_KEY configured; generative stages disabled")
		return store, nil, func() {}
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}

	client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		log.Printf("Gemini client unavailable (%v); generative stages disabled", err)
		return store, nil, func() {}
	}

	return store, client, func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Gemini client: %v", err)
		}
	}
}
