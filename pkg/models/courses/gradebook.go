package courses

import (
	"github.com/randomairborne/google-classroom/pkg/models"
)

// GradebookSettings specify how a student's overall grade is calculated and
// who can see it.
type GradebookSettings struct {
	CalculationType CalculationType        `json:"calculationType,omitempty"`
	DisplaySetting  DisplaySetting         `json:"displaySetting,omitempty"`
	GradeCategories []models.GradeCategory `json:"gradeCategories,omitempty"`
}

// CalculationType is the method of overall grade calculation.
type CalculationType string

const (
	CalculationTypeUnspecified        CalculationType = "CALCULATION_TYPE_UNSPECIFIED"
	CalculationTypeTotalPoints        CalculationType = "TOTAL_POINTS"
	CalculationTypeWeightedCategories CalculationType = "WEIGHTED_CATEGORIES"
)

// UnmarshalText rejects values outside the documented set.
func (c *CalculationType) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text,
		CalculationTypeUnspecified,
		CalculationTypeTotalPoints,
		CalculationTypeWeightedCategories,
	)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// DisplaySetting controls who can see the overall grade.
type DisplaySetting string

const (
	DisplaySettingUnspecified      DisplaySetting = "DISPLAY_SETTING_UNSPECIFIED"
	DisplaySettingShowOverallGrade DisplaySetting = "SHOW_OVERALL_GRADE"
	DisplaySettingHideOverallGrade DisplaySetting = "HIDE_OVERALL_GRADE"
	DisplaySettingShowTeachersOnly DisplaySetting = "SHOW_TEACHERS_ONLY"
)

// UnmarshalText rejects values outside the documented set.
func (d *DisplaySetting) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text,
		DisplaySettingUnspecified,
		DisplaySettingShowOverallGrade,
		DisplaySettingHideOverallGrade,
		DisplaySettingShowTeachersOnly,
	)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// TotalWeight sums the category weights.
func (g GradebookSettings) TotalWeight() models.Weight {
	var total models.Weight
	for _, c := range g.GradeCategories {
		total += c.Weight
	}
	return total
}
