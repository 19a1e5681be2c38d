package models

// ProjectCategory is an entry of the managed category list. The id is a
// slug derived from the label at creation and stays stable across renames.
type ProjectCategory struct {
	ID    string `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Label string `json:"label" db:"label" gorm:"type:text;not null"`
	Order int    `json:"order" db:"sort_order" gorm:"column:sort_order;not null"`
}

func (ProjectCategory) TableName() string {
	return "project_categories"
}
