package models

// Certification is a credential shown in the certifications section. Year
// is a display string ("2023", "2021 - 2022"), not a number.
type Certification struct {
	ID            string         `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Name          string         `json:"name" db:"name" gorm:"type:text;not null"`
	Year          string         `json:"year" db:"year" gorm:"type:text"`
	Organization  string         `json:"organization" db:"organization" gorm:"type:text"`
	Description   string         `json:"description" db:"description" gorm:"type:text"`
	CredentialURL string         `json:"credentialUrl" db:"credential_url" gorm:"column:credential_url;type:text"`
	CredentialID  string         `json:"credentialId" db:"credential_id" gorm:"column:credential_id;type:text"`
	Thumbnail     string         `json:"thumbnail" db:"thumbnail" gorm:"type:text"`
	Attachments   AttachmentList `json:"attachments" db:"attachments" gorm:"type:jsonb"`
	PaletteCode   string         `json:"paletteCode" db:"palette_code" gorm:"column:palette_code;type:text"`
	BadgeColor    string         `json:"badgeColor" db:"badge_color" gorm:"column:badge_color;type:text"`
	Order         int            `json:"order" db:"sort_order" gorm:"column:sort_order;not null"`
}
