package model

// PatternType selects how a filename pattern is interpreted.
type PatternType string

const (
	PatternExact    PatternType = "exact"
	PatternContains PatternType = "contains"
	PatternRegex    PatternType = "regex"
	PatternTemplate PatternType = "template"
)

// FilenameCriteria configures the filename rule group.
type FilenameCriteria struct {
	Enabled       bool        `json:"enabled" yaml:"enabled"`
	Pattern       string      `json:"pattern" yaml:"pattern"`
	PatternType   PatternType `json:"patternType" yaml:"patternType"`
	Points        float64     `json:"points" yaml:"points"`
	CaseSensitive bool        `json:"caseSensitive" yaml:"caseSensitive"`
}

// TechnicalCriteria configures the technical rule group. A zero or empty target disables
// the corresponding rule.
type TechnicalCriteria struct {
	Enabled            bool     `json:"enabled" yaml:"enabled"`
	Width              int      `json:"width" yaml:"width"`
	Height             int      `json:"height" yaml:"height"`
	ColorMode          string   `json:"colorMode" yaml:"colorMode"`
	MinLayers          int      `json:"minLayers" yaml:"minLayers"`
	RequiredLayers     []string `json:"requiredLayers" yaml:"requiredLayers"`
	Resolution         float64  `json:"resolution" yaml:"resolution"`
	PointsPerCriterion float64  `json:"pointsPerCriterion" yaml:"pointsPerCriterion"`

	// RequiredLayersPartialCredit awards points in proportion to the required layer names
	// found instead of all-or-nothing.
	RequiredLayersPartialCredit bool `json:"requiredLayersPartialCredit,omitempty" yaml:"requiredLayersPartialCredit,omitempty"`
}

// FontCriteria configures the fonts rule group.
type FontCriteria struct {
	Enabled            bool     `json:"enabled" yaml:"enabled"`
	ApprovedFonts      []string `json:"approvedFonts" yaml:"approvedFonts"`
	RequiredFonts      []string `json:"requiredFonts" yaml:"requiredFonts"`
	PointsPerCriterion float64  `json:"pointsPerCriterion" yaml:"pointsPerCriterion"`
}

// Criteria is the instructor configuration shared read-only by every document of a batch.
type Criteria struct {
	Filename  FilenameCriteria  `json:"filename" yaml:"filename"`
	Technical TechnicalCriteria `json:"technical" yaml:"technical"`
	Fonts     FontCriteria      `json:"fonts" yaml:"fonts"`
}

// DefaultCriteria returns a configuration with point values set and every rule group disabled.
func DefaultCriteria() Criteria {
	return Criteria{
		Filename: FilenameCriteria{
			PatternType: PatternTemplate,
			Points:      10,
		},
		Technical: TechnicalCriteria{
			PointsPerCriterion: 10,
		},
		Fonts: FontCriteria{
			PointsPerCriterion: 10,
		},
	}
}
