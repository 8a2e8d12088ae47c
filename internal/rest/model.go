package rest

import "time"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Author struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Verified bool   `json:"verified"`
	Email    string `json:"email,omitempty"`
	HasLogin bool   `json:"hasLogin"`
}

type Article struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	CategoryID int       `json:"categoryId"`
	AuthorID   int       `json:"authorId"`
	Excerpt    string    `json:"excerpt"`
	ImageURL   string    `json:"imageUrl"`
	Content    string    `json:"content,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	Views      int       `json:"views"`
	Category   *Category `json:"category,omitempty"`
	Author     *Author   `json:"author,omitempty"`
}

type Editor struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

type Sponsor struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	URL     string `json:"url"`
}

type Spotlight struct {
	ID       int    `json:"id"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Caption  string `json:"caption"`
}

type FreeAd struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	AltText  string `json:"altText"`
}

type Subscriber struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Active  bool   `json:"active"`
}

type Session struct {
	Role                     string `json:"role"`
	AuthorID                 int    `json:"authorId,omitempty"`
	AuthorName               string `json:"authorName,omitempty"`
	Verified                 bool   `json:"verified"`
	CanEditArticles          bool   `json:"canEditArticles"`
	CanCreateSpotlightAndAds bool   `json:"canCreateSpotlightAndAds"`
}

type SearchResult struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	HTML    string `json:"html"`
}

// FeedEvent is one server-sent event of the progressive home feed. Either
// HTML or Error is set.
type FeedEvent struct {
	Position int    `json:"position"`
	Slot     string `json:"slot"`
	HTML     string `json:"html,omitempty"`
	Error    string `json:"error,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}

type RedeemRequest struct {
	Token string `json:"token"`
}

type SubscribeRequest struct {
	Email   string `json:"email"`
	Country string `json:"country"`
}

type FeedRequest struct {
	Page     *int `query:"page"`
	PageSize *int `query:"pageSize"`
}

type ArticleRequest struct {
	Title      string  `json:"title"`
	CategoryID int     `json:"categoryId"`
	AuthorID   int     `json:"authorId"`
	Excerpt    string  `json:"excerpt"`
	ImageURL   string  `json:"imageUrl"`
	Content    string  `json:"content"`
	Published  *bool   `json:"published"`
	CreatedAt  *string `json:"createdAt"`
}

type CategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type AuthorRequest struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Verified bool   `json:"verified"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditorRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`
}

type SponsorRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	URL     string `json:"url"`
}

type SpotlightRequest struct {
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Caption  string `json:"caption"`
}

type FreeAdRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	AltText  string `json:"altText"`
}

type InviteResponse struct {
	Invite string `json:"invite"`
}
