package entity

type Student struct {
	Model
	UniqueCode string `gorm:"uniqueIndex;not null" json:"unique_code"`
	Name       string `gorm:"not null" json:"name"`
	Class      string `gorm:"not null" json:"class"`

	// preload only when needed
	Reports []Report `gorm:"foreignKey:StudentID" json:"-"`
}
