// Package comprehend derives labels for text notes: detect the dominant
// languages, extract entities per language, and union the results.
package comprehend

import (
	"context"
	"fmt"

	"mynotes-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"go.uber.org/zap"
)

// comprehendAPI is the subset of the Comprehend client this analyzer uses.
type comprehendAPI interface {
	DetectDominantLanguage(ctx context.Context, params *comprehend.DetectDominantLanguageInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectDominantLanguageOutput, error)
	DetectEntities(ctx context.Context, params *comprehend.DetectEntitiesInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectEntitiesOutput, error)
}

// TextAnalyzer implements ports.TextAnalyzer using Amazon Comprehend
type TextAnalyzer struct {
	client comprehendAPI
	logger *zap.Logger
}

// NewTextAnalyzer creates a Comprehend-backed text analyzer.
func NewTextAnalyzer(client *comprehend.Client, logger *zap.Logger) ports.TextAnalyzer {
	return &TextAnalyzer{client: client, logger: logger}
}

// AnalyzeText detects the dominant languages of the text, runs entity
// extraction once per usable language, and returns the deduplicated union
// of entity surface strings. Languages the entity model cannot handle are
// discarded; zero usable languages yields an empty set.
func (a *TextAnalyzer) AnalyzeText(ctx context.Context, text string) ([]string, error) {
	langResp, err := a.client.DetectDominantLanguage(ctx, &comprehend.DetectDominantLanguageInput{
		Text: aws.String(text),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect language: %w", err)
	}

	seen := make(map[string]struct{})
	var labels []string

	for _, lang := range langResp.Languages {
		code := aws.ToString(lang.LanguageCode)
		if !supportedLanguage(code) {
			a.logger.Debug("Skipping unclassifiable language", zap.String("code", code))
			continue
		}

		entResp, err := a.client.DetectEntities(ctx, &comprehend.DetectEntitiesInput{
			Text:         aws.String(text),
			LanguageCode: types.LanguageCode(code),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to detect entities for %s: %w", code, err)
		}

		for _, entity := range entResp.Entities {
			label := aws.ToString(entity.Text)
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	return labels, nil
}

// supportedLanguage reports whether the entity model accepts the code.
func supportedLanguage(code string) bool {
	for _, known := range types.LanguageCode("").Values() {
		if string(known) == code {
			return true
		}
	}
	return false
}
