package models

// HomeSection - слайд hero-блока на главной
type HomeSection struct {
	Content
	Title           string `gorm:"size:200;not null" json:"title"`
	BackgroundImage string `gorm:"size:255;not null" json:"background_image"`
}

// WhyChoose - пункт блока "почему мы"
type WhyChoose struct {
	Content
	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
}

type Client struct {
	Content
	Name string `gorm:"size:150;not null" json:"name"`
	Logo string `gorm:"size:255;not null" json:"logo"`
}

type Faq struct {
	Content
	Question string `gorm:"size:255;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
}
