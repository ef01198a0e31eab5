package vision

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"detailhq/models"
)

// GeminiClient calls Gemini vision models to assess vehicle condition from a
// photo. One client serves all models in the fallback chain; the model is
// selected per call.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}
	return &GeminiClient{client: client}
}

func (g *GeminiClient) callModel(ctx context.Context, model string, photo models.PhotoInput) (*models.PhotoAnalysis, error) {
	m := g.client.GenerativeModel(model)

	resp, err := m.GenerateContent(ctx,
		genai.ImageData(imageFormat(photo.MIMEType), photo.Image),
		genai.Text(analysisPrompt(photo)),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return parseAnalysisResponse(sb.String())
}

// imageFormat converts a MIME type into the bare format string genai expects.
func imageFormat(mimeType string) string {
	format := strings.TrimPrefix(mimeType, "image/")
	if format == "" {
		return "jpeg"
	}
	return format
}

func analysisPrompt(photo models.PhotoInput) string {
	var sb strings.Builder
	sb.WriteString("You are assessing the condition of a vehicle for a detailing quote. ")
	sb.WriteString(fmt.Sprintf("The photo shows the vehicle's %s.\n\n", photoCategoryLabel(photo.Category)))
	if photo.ExpectedSize != "" {
		sb.WriteString(fmt.Sprintf("The customer described the vehicle as a %s; report the size you actually see.\n\n", photo.ExpectedSize))
	}
	sb.WriteString("Respond with JSON only, matching exactly:\n")
	sb.WriteString(`{
  "vehicleVisible": boolean,
  "conditionAssessment": "lightly_dirty" | "moderately_dirty" | "heavily_soiled" | "extreme",
  "detectedIssues": [string],
  "confidence": number between 0 and 1,
  "reasoning": string,
  "vehicleSizeDetected": "coupe" | "sedan" | "suv" | "truck" or omit if unclear
}`)
	sb.WriteString("\n\ndetectedIssues entries must come from: ")
	sb.WriteString("pet_hair, heavy_stains, odor, mold, excessive_trash, mud, salt_residue, tree_sap, bug_splatter, water_spots, oxidation, scratches.")
	return sb.String()
}

func photoCategoryLabel(cat models.PhotoCategory) string {
	switch cat {
	case models.PhotoInterior:
		return "interior"
	case models.PhotoProblemArea:
		return "specific problem area"
	default:
		return "exterior"
	}
}
