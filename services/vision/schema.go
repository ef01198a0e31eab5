package vision

import (
	"encoding/json"
	"strings"

	"detailhq/models"
)

// rawAnalysis mirrors the JSON shape the model is prompted to emit. It is an
// untyped boundary: nothing leaves this file without passing validation.
type rawAnalysis struct {
	VehicleVisible      bool     `json:"vehicleVisible"`
	ConditionAssessment string   `json:"conditionAssessment"`
	DetectedIssues      []string `json:"detectedIssues"`
	Confidence          float64  `json:"confidence"`
	Reasoning           string   `json:"reasoning"`
	VehicleSizeDetected string   `json:"vehicleSizeDetected"`
}

var validConditions = map[models.ConditionLevel]bool{
	models.ConditionLightlyDirty:    true,
	models.ConditionModeratelyDirty: true,
	models.ConditionHeavilySoiled:   true,
	models.ConditionExtreme:         true,
}

var validIssueTags = map[models.IssueTag]bool{
	models.IssuePetHair:     true,
	models.IssueHeavyStains: true,
	models.IssueOdor:        true,
	models.IssueMold:        true,
	models.IssueTrash:       true,
	models.IssueMud:         true,
	models.IssueSaltResidue: true,
	models.IssueTreeSap:     true,
	models.IssueBugSplatter: true,
	models.IssueWaterSpots:  true,
	models.IssueOxidation:   true,
	models.IssueScratches:   true,
}

var validSizes = map[models.VehicleTier]bool{
	models.TierCoupe: true,
	models.TierSedan: true,
	models.TierSUV:   true,
	models.TierTruck: true,
}

// parseAnalysisResponse decodes a model reply and validates it against the
// strict analysis schema. Models wrap JSON in markdown fences often enough
// that stripping them here is cheaper than fighting the prompt.
func parseAnalysisResponse(text string) (*models.PhotoAnalysis, error) {
	cleaned := stripCodeFences(text)

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &SchemaError{Field: "body", Message: "response is not valid JSON"}
	}
	return validateAnalysis(raw)
}

// validateAnalysis converts a raw response into a typed PhotoAnalysis,
// rejecting anything outside the closed vocabularies. A response that fails
// here counts as that photo's analysis failing; it is never coerced.
func validateAnalysis(raw rawAnalysis) (*models.PhotoAnalysis, error) {
	condition := models.ConditionLevel(strings.ToLower(strings.TrimSpace(raw.ConditionAssessment)))
	if !validConditions[condition] {
		return nil, &SchemaError{Field: "conditionAssessment", Message: "unknown condition level " + raw.ConditionAssessment}
	}

	if raw.Confidence < 0 || raw.Confidence > 1 {
		return nil, &SchemaError{Field: "confidence", Message: "confidence out of [0,1]"}
	}

	issues := make([]models.IssueTag, 0, len(raw.DetectedIssues))
	for _, issue := range raw.DetectedIssues {
		tag := models.IssueTag(strings.ToLower(strings.TrimSpace(issue)))
		if !validIssueTags[tag] {
			return nil, &SchemaError{Field: "detectedIssues", Message: "unknown issue tag " + issue}
		}
		issues = append(issues, tag)
	}

	var size models.VehicleTier
	if raw.VehicleSizeDetected != "" {
		size = models.VehicleTier(strings.ToLower(strings.TrimSpace(raw.VehicleSizeDetected)))
		if !validSizes[size] {
			return nil, &SchemaError{Field: "vehicleSizeDetected", Message: "unknown vehicle size " + raw.VehicleSizeDetected}
		}
	}

	return &models.PhotoAnalysis{
		VehicleVisible:      raw.VehicleVisible,
		Condition:           condition,
		DetectedIssues:      issues,
		Confidence:          raw.Confidence,
		Reasoning:           raw.Reasoning,
		VehicleSizeDetected: size,
	}, nil
}

func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	return strings.TrimSpace(trimmed)
}
