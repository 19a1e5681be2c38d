package models

// Service is an entry of the "services" section. Number is the display
// string rendered before the title (e.g. "01/"). Icon is either a symbolic
// icon key ("FaCode") or an uploaded image path.
type Service struct {
	ID          string `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Number      string `json:"number" db:"number" gorm:"type:text"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	Icon        string `json:"icon" db:"icon" gorm:"type:text"`
	Order       int    `json:"order" db:"sort_order" gorm:"column:sort_order;not null"`
}
