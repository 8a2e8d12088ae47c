package rpc

import (
	"time"
)

type Feed struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

type ArticleBySlugRequest struct {
	Slug string `json:"slug"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type Article struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	ImageURL  string    `json:"imageUrl"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Views     int       `json:"views"`
	Category  Category  `json:"category"`
	Author    Author    `json:"author"`
}

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
}

func (f Feed) Pagination() (page, pageSize int) {
	page, pageSize = 1, 10
	if f.Page != nil {
		page = *f.Page
	}
	if f.PageSize != nil {
		pageSize = *f.PageSize
	}
	return page, pageSize
}
