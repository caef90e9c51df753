package model

// ContentID is the opaque identifier the CMS assigns to every list record.
type ContentID struct {
	ID string `json:"id" yaml:"id"`
}

// Date carries the CMS timestamps. They are kept in wire format and are only
// informational; nothing in this module orders by them.
type Date struct {
	CreatedAt   string `json:"createdAt,omitempty" yaml:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty" yaml:"updatedAt"`
	PublishedAt string `json:"publishedAt,omitempty" yaml:"publishedAt"`
	RevisedAt   string `json:"revisedAt,omitempty" yaml:"revisedAt"`
}

// Image is an image field as returned by the CMS.
type Image struct {
	URL    string `json:"url" yaml:"url"`
	Height int    `json:"height,omitempty" yaml:"height"`
	Width  int    `json:"width,omitempty" yaml:"width"`
}

// NewsCategory is one of the fixed labels used to group news posts.
type NewsCategory string

const (
	NewsCategoryNotice  NewsCategory = "お知らせ"
	NewsCategoryEvent   NewsCategory = "イベント"
	NewsCategoryRecruit NewsCategory = "採用"
	NewsCategoryMedia   NewsCategory = "メディア"
)

// Valid reports whether c is one of the known categories.
func (c NewsCategory) Valid() bool {
	switch c {
	case NewsCategoryNotice, NewsCategoryEvent, NewsCategoryRecruit, NewsCategoryMedia:
		return true
	}
	return false
}

// News is a news post (endpoint "news").
type News struct {
	ContentID `yaml:",inline"`
	Date      `yaml:",inline"`
	Title     string       `json:"title" yaml:"title"`
	Category  NewsCategory `json:"category" yaml:"category"`
	Content   string       `json:"content" yaml:"content"` // Rich text (HTML)
	Thumbnail *Image       `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Excerpt   string       `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
}

// Staff is a staff profile (endpoint "staff").
type Staff struct {
	ContentID      `yaml:",inline"`
	Date           `yaml:",inline"`
	Name           string `json:"name" yaml:"name"`
	Role           string `json:"role" yaml:"role"`
	Photo          *Image `json:"photo,omitempty" yaml:"photo,omitempty"`
	Message        string `json:"message,omitempty" yaml:"message,omitempty"`
	Qualifications string `json:"qualifications,omitempty" yaml:"qualifications,omitempty"`
	Order          int    `json:"order" yaml:"order"`
}

// Service is a service overview page (endpoint "services").
type Service struct {
	ContentID   `yaml:",inline"`
	Date        `yaml:",inline"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Thumbnail   *Image `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Slug        string `json:"slug" yaml:"slug"`
	Order       int    `json:"order" yaml:"order"`
}

// RentalCategory groups rental equipment (endpoint "list-category").
type RentalCategory struct {
	ContentID   `yaml:",inline"`
	Date        `yaml:",inline"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Content     string `json:"content,omitempty" yaml:"content,omitempty"`
	Image       *Image `json:"image,omitempty" yaml:"image,omitempty"`
	Slug        string `json:"slug" yaml:"slug"`
	Order       int    `json:"order" yaml:"order"`
}

// SaleItem is an item offered for purchase (endpoint "sale-item").
type SaleItem struct {
	ContentID   `yaml:",inline"`
	Date        `yaml:",inline"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Content     string `json:"content,omitempty" yaml:"content,omitempty"`
	Image       *Image `json:"image,omitempty" yaml:"image,omitempty"`
	Slug        string `json:"slug" yaml:"slug"`
	Order       int    `json:"order" yaml:"order"`
}

// Faq is a question/answer pair (endpoint "faq").
type Faq struct {
	ContentID `yaml:",inline"`
	Date      `yaml:",inline"`
	Question  string `json:"question" yaml:"question"`
	Answer    string `json:"answer" yaml:"answer"`
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	Order     int    `json:"order" yaml:"order"`
}

// Recruit is the singleton recruiting record (object endpoint "recruit").
// It has no content id.
type Recruit struct {
	Date           `yaml:",inline"`
	Position       string `json:"position" yaml:"position"`
	EmploymentType string `json:"employmentType" yaml:"employmentType"`
	Location       string `json:"location" yaml:"location"`
	Hours          string `json:"hours" yaml:"hours"`
	Holidays       string `json:"holidays" yaml:"holidays"`
	Salary         string `json:"salary" yaml:"salary"`
	Requirements   string `json:"requirements" yaml:"requirements"`
	Benefits       string `json:"benefits" yaml:"benefits"`
}
