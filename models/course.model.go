package models

type Course struct {
	BaseModel
	Title       string   `json:"title" gorm:"size:255;not null;index"`
	Description string   `json:"description" gorm:"type:text"`
	Price       float64  `json:"price" gorm:"type:numeric(10,2);default:0"`
	CategoryID  uint     `json:"category_id" gorm:"index;not null"`
	Category    Category `json:"category" gorm:"foreignKey:CategoryID"`
	IsPublished bool     `json:"is_published" gorm:"default:false"`
}
