package resources

import (
	"strings"

	"github.com/abhisek/skillpath/internal/profile"
)

// ResourceType classifies a learning resource.
type ResourceType string

const (
	TypeCourse        ResourceType = "course"
	TypeBook          ResourceType = "book"
	TypeTutorial      ResourceType = "tutorial"
	TypeProject       ResourceType = "project"
	TypeCertification ResourceType = "certification"
	TypeDocumentation ResourceType = "documentation"
	TypeVideo         ResourceType = "video"
	TypeArticle       ResourceType = "article"
	TypeInteractive   ResourceType = "interactive"
)

// ParseResourceType maps a free-form type string to a ResourceType.
// "mixed" and anything unrecognized map to tutorial.
func ParseResourceType(s string) ResourceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "course":
		return TypeCourse
	case "book":
		return TypeBook
	case "tutorial":
		return TypeTutorial
	case "project":
		return TypeProject
	case "certification":
		return TypeCertification
	case "documentation":
		return TypeDocumentation
	case "video":
		return TypeVideo
	case "article":
		return TypeArticle
	case "interactive":
		return TypeInteractive
	default:
		return TypeTutorial
	}
}

// Difficulty is an ordinal difficulty rank aligned with profile.SkillLevel:
// the same 1-4 scale, so gap arithmetic can mix the two.
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
	DifficultyExpert       Difficulty = 4
)

// String returns the lower-case difficulty label.
func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "beginner"
	case DifficultyIntermediate:
		return "intermediate"
	case DifficultyAdvanced:
		return "advanced"
	case DifficultyExpert:
		return "expert"
	default:
		return "intermediate"
	}
}

// Name returns the upper-case difficulty name for display.
func (d Difficulty) Name() string {
	return strings.ToUpper(d.String())
}

// ParseDifficulty maps a difficulty label to its rank.
// Unrecognized labels map to intermediate.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner
	case "intermediate":
		return DifficultyIntermediate
	case "advanced":
		return DifficultyAdvanced
	case "expert":
		return DifficultyExpert
	default:
		return DifficultyIntermediate
	}
}

// DifficultyForLevel maps a target skill level to the difficulty label used
// for resource queries.
func DifficultyForLevel(l profile.SkillLevel) string {
	switch l {
	case profile.LevelBeginner:
		return "beginner"
	case profile.LevelIntermediate:
		return "intermediate"
	case profile.LevelAdvanced:
		return "advanced"
	case profile.LevelExpert:
		return "expert"
	default:
		return "intermediate"
	}
}

// LearningResource is an immutable catalog entry.
type LearningResource struct {
	ID             string
	Title          string
	Description    string
	Type           ResourceType
	Difficulty     Difficulty
	EstimatedHours int
	SkillsTaught   []string
	Prerequisites  []string
	CostUSD        float64
	Rating         float64 // 0-5
	URL            string
	Provider       string
	Tags           []string
}

// Descriptor is the lightweight shape produced by the fetcher stages before
// conversion into a full LearningResource.
type Descriptor struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	Provider       string  `json:"provider"`
	Type           string  `json:"type"`
	Difficulty     string  `json:"difficulty"`
	Rating         float64 `json:"rating"`
	EstimatedHours int     `json:"estimated_hours"`
}

// Defaults for descriptor conversion when a stage omits a field.
const (
	defaultDescriptorTitle  = "Learning Resource"
	defaultDescriptorHours  = 20
	defaultDescriptorRating = 4.0
)

// ToResource converts a Descriptor into a LearningResource with the given
// ID. Fetched descriptors carry no skill or prerequisite metadata, so the
// resulting resource teaches the generic "General" skill and declares no
// prerequisites.
func (d Descriptor) ToResource(id string) LearningResource {
	title := d.Title
	if title == "" {
		title = defaultDescriptorTitle
	}
	hours := d.EstimatedHours
	if hours <= 0 {
		hours = defaultDescriptorHours
	}
	rating := d.Rating
	if rating <= 0 {
		rating = defaultDescriptorRating
	}
	provider := d.Provider
	if provider == "" {
		provider = "Unknown"
	}
	return LearningResource{
		ID:             id,
		Title:          title,
		Description:    d.Description,
		Type:           ParseResourceType(d.Type),
		Difficulty:     ParseDifficulty(d.Difficulty),
		EstimatedHours: hours,
		SkillsTaught:   []string{"General"},
		Prerequisites:  nil,
		CostUSD:        0,
		Rating:         rating,
		URL:            d.URL,
		Provider:       provider,
	}
}
