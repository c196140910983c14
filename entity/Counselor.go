package entity

type Counselor struct {
	Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `gorm:"not null" json:"name"`
	Password string `json:"-"`

	Reports []Report `gorm:"foreignKey:CounselorID" json:"-"`
}
