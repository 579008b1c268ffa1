package models

// Category is a node in a strictly two-level tree: root categories and one
// level of subcategories. Name is unique across the whole tree; archived
// categories keep their name reserved so their courses stay attached to an
// unambiguous owner.
type Category struct {
	BaseModel
	Name          string     `json:"name" gorm:"size:255;not null;uniqueIndex"`
	ParentID      *uint      `json:"parent_id" gorm:"index"`
	Parent        *Category  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Subcategories []Category `json:"subcategories,omitempty" gorm:"foreignKey:ParentID"`
}

// IsRoot reports whether the category sits at the top level.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
