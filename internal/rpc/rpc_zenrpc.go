// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	MagazineService struct{ List, Count, BySlug, Search, Categories string }
}{
	MagazineService: struct{ List, Count, BySlug, Search, Categories string }{
		List:       "list",
		Count:      "count",
		BySlug:     "byslug",
		Search:     "search",
		Categories: "categories",
	},
}

func (MagazineService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves published articles, newest first, with pagination.
Returns summaries without the content body.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "feed",
						Type:     smd.Object,
						TypeName: "Feed",
						Properties: smd.PropertyList{
							{
								Name:        "page",
								Optional:    true,
								Description: `page=1 page number (1-based)`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageSize",
								Optional:    true,
								Description: `pageSize=10 items per page`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of article summaries`,
					Type:        smd.Object,
					TypeName:    "Articles",
					Properties:  smd.PropertyList{},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Count": {
				Description: `Count returns the number of published articles.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `published article count`,
					Type:        smd.Integer,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"BySlug": {
				Description: `BySlug retrieves a single published article with its full content,
category and author, and records the view.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "ArticleBySlugRequest",
						Properties: smd.PropertyList{
							{
								Name: "slug",
								Type: smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `article with full content`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Article",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "excerpt",
							Type: smd.String,
						},
						{
							Name: "imageUrl",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name: "views",
							Type: smd.Integer,
						},
						{
							Name: "category",
							Ref:  "#/definitions/Category",
							Type: smd.Object,
						},
						{
							Name: "author",
							Ref:  "#/definitions/Author",
							Type: smd.Object,
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
						"Author": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "bio",
									Type: smd.String,
								},
								{
									Name: "verified",
									Type: smd.Boolean,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "slug must not be empty",
					404: "article not found",
					500: "internal server error",
				},
			},
			"Search": {
				Description: `Search matches published articles by title, excerpt or content.
Queries below the minimum length return an empty list.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "SearchRequest",
						Properties: smd.PropertyList{
							{
								Name: "query",
								Type: smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of matching article summaries`,
					Type:        smd.Object,
					TypeName:    "Articles",
					Properties:  smd.PropertyList{},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories retrieves the navigation categories in name order.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Object,
					TypeName:    "Categories",
					Properties:  smd.PropertyList{},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s MagazineService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.MagazineService.List:
		var args = struct {
			Feed Feed `json:"feed"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"feed"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Feed))

	case RPC.MagazineService.Count:
		resp.Set(s.Count(ctx))

	case RPC.MagazineService.BySlug:
		var args = struct {
			Req ArticleBySlugRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.BySlug(ctx, args.Req))

	case RPC.MagazineService.Search:
		var args = struct {
			Req SearchRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Search(ctx, args.Req))

	case RPC.MagazineService.Categories:
		resp.Set(s.Categories(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
