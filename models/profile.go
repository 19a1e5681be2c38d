package models

// ProfileID is the key of the single profile row. The profile is a singleton:
// every read and write targets this id.
const ProfileID = "default"

// Stat is a single headline figure shown on the profile ("label: value").
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Social is a link to an external profile.
type Social struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// Profile is the site owner's profile record.
type Profile struct {
	ID                  string     `json:"-" db:"id" gorm:"type:text;primaryKey"`
	Name                string     `json:"name" db:"name" gorm:"type:text;not null"`
	Tagline             string     `json:"tagline" db:"tagline" gorm:"type:text;not null"`
	Bio                 string     `json:"bio" db:"bio" gorm:"type:text;not null"`
	ProfilePhoto        string     `json:"profilePhoto" db:"profile_photo" gorm:"column:profile_photo;type:text;not null"`
	ExperienceStartYear int        `json:"experienceStartYear" db:"experience_start_year" gorm:"column:experience_start_year;not null"`
	ProfilePhotoFocusX  float64    `json:"profilePhotoFocusX" db:"profile_photo_focus_x" gorm:"column:profile_photo_focus_x"`
	ProfilePhotoFocusY  float64    `json:"profilePhotoFocusY" db:"profile_photo_focus_y" gorm:"column:profile_photo_focus_y"`
	ProfilePhotoZoom    float64    `json:"profilePhotoZoom" db:"profile_photo_zoom" gorm:"column:profile_photo_zoom"`
	Skills              StringList `json:"skills" db:"skills" gorm:"type:jsonb"`
	Stats               StatList   `json:"stats" db:"stats" gorm:"type:jsonb"`
	Socials             SocialList `json:"socials" db:"socials" gorm:"type:jsonb"`
	Email               string     `json:"email" db:"email" gorm:"type:text"`
	Phone               string     `json:"phone" db:"phone" gorm:"type:text"`
	Favicon             string     `json:"favicon" db:"favicon" gorm:"type:text"`
}

func (Profile) TableName() string {
	return "profile"
}
