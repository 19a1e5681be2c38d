package models

// Project represents a portfolio project with its media and ordering
// metadata. Category is the legacy singular field, kept in sync with
// Categories[0] by the normalizer for older clients.
type Project struct {
	ID              string         `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Title           string         `json:"title" db:"title" gorm:"type:text;not null"`
	Category        string         `json:"category" db:"category" gorm:"type:text"`
	Categories      StringList     `json:"categories" db:"categories" gorm:"type:jsonb"`
	Description     string         `json:"description" db:"description" gorm:"type:text"`
	Thumbnail       string         `json:"thumbnail" db:"thumbnail" gorm:"type:text"`
	ThumbnailFocusX float64        `json:"thumbnailFocusX" db:"thumbnail_focus_x" gorm:"column:thumbnail_focus_x"`
	ThumbnailFocusY float64        `json:"thumbnailFocusY" db:"thumbnail_focus_y" gorm:"column:thumbnail_focus_y"`
	ThumbnailZoom   float64        `json:"thumbnailZoom" db:"thumbnail_zoom" gorm:"column:thumbnail_zoom"`
	Gallery         StringList     `json:"gallery" db:"gallery" gorm:"type:jsonb"`
	Attachments     AttachmentList `json:"attachments" db:"attachments" gorm:"type:jsonb"`
	Links           LinkList       `json:"links" db:"links" gorm:"type:jsonb"`
	Order           int            `json:"order" db:"sort_order" gorm:"column:sort_order;not null"`
}
