package vision

import (
	"sort"
	"strings"

	"detailhq/models"
)

const suggestionConfidence = 0.85

// issueMapping ties each detectable issue to the keywords that identify a
// matching add-on and the priority of suggesting it. Keyword substring
// matching against free-text addon names is fragile; tagging addons with a
// closed issue vocabulary would be the sturdier design.
var issueMapping = map[models.IssueTag]struct {
	keywords []string
	priority models.SuggestionPriority
}{
	models.IssuePetHair:     {[]string{"pet", "hair", "removal"}, models.PriorityHigh},
	models.IssueHeavyStains: {[]string{"stain", "shampoo", "extraction"}, models.PriorityHigh},
	models.IssueOdor:        {[]string{"odor", "ozone", "deodor"}, models.PriorityHigh},
	models.IssueMold:        {[]string{"mold", "biohazard", "deep"}, models.PriorityHigh},
	models.IssueTrash:       {[]string{"interior", "deep"}, models.PriorityMedium},
	models.IssueMud:         {[]string{"undercarriage", "wash", "deep"}, models.PriorityMedium},
	models.IssueSaltResidue: {[]string{"salt", "undercarriage", "wash"}, models.PriorityMedium},
	models.IssueTreeSap:     {[]string{"clay", "decontam"}, models.PriorityMedium},
	models.IssueBugSplatter: {[]string{"bug", "clay", "decontam"}, models.PriorityMedium},
	models.IssueWaterSpots:  {[]string{"polish", "detail"}, models.PriorityLow},
	models.IssueOxidation:   {[]string{"polish", "compound", "correction"}, models.PriorityLow},
	models.IssueScratches:   {[]string{"correction", "polish", "compound"}, models.PriorityLow},
}

var priorityRank = map[models.SuggestionPriority]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

// SuggestAddons maps detected issues onto candidate catalog add-ons. The
// first issue to match an addon claims it, so one addon is suggested at most
// once. Results are sorted high to low priority; ties keep encounter order.
func SuggestAddons(issues []models.IssueTag, candidates []models.AddonDefinition) []models.AddonSuggestion {
	suggested := make(map[string]bool)
	suggestions := []models.AddonSuggestion{}

	for _, issue := range issues {
		mapping, ok := issueMapping[issue]
		if !ok {
			continue
		}
		for _, addon := range candidates {
			if suggested[addon.ID] {
				continue
			}
			if addonMatches(addon, mapping.keywords) {
				suggested[addon.ID] = true
				suggestions = append(suggestions, models.AddonSuggestion{
					AddonID:    addon.ID,
					Reason:     issue,
					Priority:   mapping.priority,
					Confidence: suggestionConfidence,
				})
			}
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return priorityRank[suggestions[i].Priority] < priorityRank[suggestions[j].Priority]
	})
	return suggestions
}

// addonMatches reports whether any keyword appears, case-insensitively, in
// the addon's name or its declared keywords.
func addonMatches(addon models.AddonDefinition, keywords []string) bool {
	name := strings.ToLower(addon.Name)
	declared := make([]string, len(addon.Keywords))
	for i, kw := range addon.Keywords {
		declared[i] = strings.ToLower(kw)
	}

	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
		for _, d := range declared {
			if strings.Contains(d, kw) {
				return true
			}
		}
	}
	return false
}
