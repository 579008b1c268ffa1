package models

// CourseVideo is an .mp4 attached to a course. OrderIndex is a display
// sequence only; nothing enforces contiguity.
type CourseVideo struct {
	BaseModel
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Course     Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Title      string `json:"title" gorm:"size:255;not null;index"`
	FilePath   string `json:"file_path"`
	FileURL    string `json:"file_url" gorm:"-"`
	FileSize   int64  `json:"file_size" gorm:"default:0"`
	OrderIndex int    `json:"order" gorm:"default:0"`
}

// CourseDocument is a .pdf attached to a course.
type CourseDocument struct {
	BaseModel
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Course     Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Title      string `json:"title" gorm:"size:255;not null;index"`
	FilePath   string `json:"file_path"`
	FileURL    string `json:"file_url" gorm:"-"`
	FileSize   int64  `json:"file_size" gorm:"default:0"`
	OrderIndex int    `json:"order" gorm:"default:0"`
}
