package models

import (
	"encoding/base64"
	"time"
)

// ConditionLevel is one of the four vehicle-condition severities the vision
// model may report. Severity ordering lives in the aggregation logic.
type ConditionLevel string

const (
	ConditionLightlyDirty    ConditionLevel = "lightly_dirty"
	ConditionModeratelyDirty ConditionLevel = "moderately_dirty"
	ConditionHeavilySoiled   ConditionLevel = "heavily_soiled"
	ConditionExtreme         ConditionLevel = "extreme"
)

// IssueTag is one of a closed vocabulary of detectable vehicle-condition
// problems.
type IssueTag string

const (
	IssuePetHair     IssueTag = "pet_hair"
	IssueHeavyStains IssueTag = "heavy_stains"
	IssueOdor        IssueTag = "odor"
	IssueMold        IssueTag = "mold"
	IssueTrash       IssueTag = "excessive_trash"
	IssueMud         IssueTag = "mud"
	IssueSaltResidue IssueTag = "salt_residue"
	IssueTreeSap     IssueTag = "tree_sap"
	IssueBugSplatter IssueTag = "bug_splatter"
	IssueWaterSpots  IssueTag = "water_spots"
	IssueOxidation   IssueTag = "oxidation"
	IssueScratches   IssueTag = "scratches"
)

// PhotoCategory tells the model which part of the vehicle a photo shows.
type PhotoCategory string

const (
	PhotoExterior    PhotoCategory = "exterior"
	PhotoInterior    PhotoCategory = "interior"
	PhotoProblemArea PhotoCategory = "problem_area"
)

// PhotoInput is one condition photo submitted for analysis. ExpectedSize is
// the vehicle tier the customer claimed, if any; the aggregator checks the
// model's detections against it.
type PhotoInput struct {
	Image        []byte        `json:"-"`
	MIMEType     string        `json:"mimeType,omitempty"`
	Category     PhotoCategory `json:"category"`
	ExpectedSize VehicleTier   `json:"expectedSize,omitempty"`
}

// PhotoUpload is the wire form of a condition photo, submitted over HTTP or
// carried in a queued analysis task.
type PhotoUpload struct {
	ImageBase64  string        `json:"imageBase64"`
	MIMEType     string        `json:"mimeType,omitempty"`
	Category     PhotoCategory `json:"category"`
	ExpectedSize VehicleTier   `json:"expectedSize,omitempty"`
}

// Decode converts the wire form into a PhotoInput for analysis.
func (p PhotoUpload) Decode() (PhotoInput, error) {
	data, err := base64.StdEncoding.DecodeString(p.ImageBase64)
	if err != nil {
		return PhotoInput{}, err
	}
	return PhotoInput{
		Image:        data,
		MIMEType:     p.MIMEType,
		Category:     p.Category,
		ExpectedSize: p.ExpectedSize,
	}, nil
}

// PhotoAnalysis is the schema-validated result of analyzing a single photo.
type PhotoAnalysis struct {
	VehicleVisible      bool           `json:"vehicleVisible"`
	Condition           ConditionLevel `json:"conditionAssessment"`
	DetectedIssues      []IssueTag     `json:"detectedIssues"`
	Confidence          float64        `json:"confidence"`
	Reasoning           string         `json:"reasoning,omitempty"`
	VehicleSizeDetected VehicleTier    `json:"vehicleSizeDetected,omitempty"`
}

// AnalysisSummary reduces the per-photo analyses of one request into a single
// authoritative condition read.
type AnalysisSummary struct {
	OverallCondition         ConditionLevel `json:"overallCondition"`
	VehicleSizeMatch         bool           `json:"vehicleSizeMatch"`
	VehicleSizeDetected      VehicleTier    `json:"vehicleSizeDetected,omitempty"`
	PrimaryIssues            []IssueTag     `json:"primaryIssues"`
	PricingAdjustmentPercent int            `json:"pricingAdjustmentPercent"`
	PhotosAnalyzed           int            `json:"photosAnalyzed"`
	PhotosFailed             int            `json:"photosFailed"`
	Confidence               float64        `json:"confidence"`
	Timestamp                time.Time      `json:"timestamp"`
}

// SuggestionPriority ranks an addon suggestion.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// AddonSuggestion links a detected issue to a catalog add-on. Advisory only;
// never auto-applied to a quote.
type AddonSuggestion struct {
	AddonID    string             `json:"addonId"`
	Reason     IssueTag           `json:"reason"`
	Priority   SuggestionPriority `json:"priority"`
	Confidence float64            `json:"confidence"`
}
