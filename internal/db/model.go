package db

import (
	"time"
)

// AdminConfigSlug marks the reserved category row that stores the encoded
// administrator configuration. It must never appear in public listings.
const AdminConfigSlug = "admin-config"

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID         int       `pg:"id,pk"`
	Title      string    `pg:"title,use_zero"`
	Slug       string    `pg:"slug,use_zero"`
	CategoryID int       `pg:"category_id,use_zero"`
	AuthorID   int       `pg:"author_id,use_zero"`
	Excerpt    string    `pg:"excerpt,use_zero"`
	ImageURL   string    `pg:"image_url,use_zero"`
	Content    string    `pg:"content,use_zero"`
	Published  bool      `pg:"published,use_zero"`
	CreatedAt  time.Time `pg:"created_at,use_zero"`
	Views      int       `pg:"views,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	Author   *Author   `pg:"fk:author_id,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID           int     `pg:"id,pk"`
	Name         string  `pg:"name,use_zero"`
	Bio          string  `pg:"bio,use_zero"`
	Verified     bool    `pg:"verified,use_zero"`
	Email        *string `pg:"email"`
	PasswordHash *string `pg:"password_hash"`
	InviteCode   *string `pg:"invite_code"`
}

type Editor struct {
	tableName struct{} `pg:"editors,alias:t,discard_unknown_columns"`

	ID       int    `pg:"id,pk"`
	Name     string `pg:"name,use_zero"`
	Role     string `pg:"role,use_zero"`
	Bio      string `pg:"bio,use_zero"`
	PhotoURL string `pg:"photo_url,use_zero"`
}

type Sponsor struct {
	tableName struct{} `pg:"sponsors,alias:t,discard_unknown_columns"`

	ID      int    `pg:"id,pk"`
	Name    string `pg:"name,use_zero"`
	LogoURL string `pg:"logo_url,use_zero"`
	URL     string `pg:"url,use_zero"`
}

type Spotlight struct {
	tableName struct{} `pg:"spotlights,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	ImageURL  string    `pg:"image_url,use_zero"`
	LinkURL   string    `pg:"link_url,use_zero"`
	Caption   string    `pg:"caption,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
}

type FreeAd struct {
	tableName struct{} `pg:"free_ads,alias:t,discard_unknown_columns"`

	ID       int    `pg:"id,pk"`
	Name     string `pg:"name,use_zero"`
	ImageURL string `pg:"image_url,use_zero"`
	LinkURL  string `pg:"link_url,use_zero"`
	AltText  string `pg:"alt_text,use_zero"`
}

type Subscriber struct {
	tableName struct{} `pg:"subscribers,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Email     string    `pg:"email,use_zero"`
	Country   string    `pg:"country,use_zero"`
	Active    bool      `pg:"active,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
}
