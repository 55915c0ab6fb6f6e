package models

// DriveFile is a Google Drive file.
type DriveFile struct {
	// Drive API resource ID.
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title,omitempty"`
	AlternateLink string `json:"alternateLink,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
}

// DriveFolder is a Google Drive folder.
type DriveFolder struct {
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title,omitempty"`
	AlternateLink string `json:"alternateLink,omitempty"`
}

// Form is a Google Forms item. Forms cannot be attached when creating
// coursework or announcements.
type Form struct {
	FormURL string `json:"formUrl" validate:"required"`
	// Only set once responses have been recorded and only for editors of the form.
	ResponseURL  string `json:"responseUrl,omitempty"`
	Title        string `json:"title,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Link is a URL item.
type Link struct {
	URL          string `json:"url" validate:"required,min=1,max=2024"`
	Title        string `json:"title,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// YouTubeVideo is a YouTube video item.
type YouTubeVideo struct {
	// YouTube API resource ID.
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title,omitempty"`
	AlternateLink string `json:"alternateLink,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
}

// GradeCategory details a grade category in a course. Coursework has zero or
// one grade category, which may count towards the overall grade.
type GradeCategory struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	// Only applicable when the calculation type is WEIGHTED_CATEGORIES.
	Weight Weight `json:"weight,omitempty"`
	// Only applicable when the calculation type is TOTAL_POINTS.
	DefaultGradeDenominator Denominator `json:"defaultGradeDenominator,omitempty"`
}
