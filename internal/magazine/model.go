package magazine

import (
	"time"
)

type Article struct {
	ID         int
	Title      string
	Slug       string
	CategoryID int
	AuthorID   int
	Excerpt    string
	ImageURL   string
	Content    string
	Published  bool
	CreatedAt  time.Time
	Views      int

	Category *Category
	Author   *Author
}

type Category struct {
	ID   int
	Name string
	Slug string
}

type Author struct {
	ID       int
	Name     string
	Bio      string
	Verified bool
	Email    string
	HasLogin bool
}

type Editor struct {
	ID       int
	Name     string
	Role     string
	Bio      string
	PhotoURL string
}

type Sponsor struct {
	ID      int
	Name    string
	LogoURL string
	URL     string
}

type Spotlight struct {
	ID        int
	ImageURL  string
	LinkURL   string
	Caption   string
	CreatedAt time.Time
}

type FreeAd struct {
	ID       int
	Name     string
	ImageURL string
	LinkURL  string
	AltText  string
}

type Subscriber struct {
	ID        int
	Email     string
	Country   string
	Active    bool
	CreatedAt time.Time
}
