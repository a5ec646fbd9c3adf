package dto

import (
	"net/http"
	"strings"

	"autocare/internal/domains/blog/model"
	"autocare/shared"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	gModel "autocare/shared/model"
	"autocare/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	QueryTag       = "tag"
	QueryPublished = "published"
)

var SortColumns = []string{
	constant.FieldCreatedAt,
	model.FieldPublishedAt,
	model.FieldTitle,
}

type CreateBlogRequest struct {
	Title     string   `json:"title"               validate:"required,min=3,max=200"`
	TitleAr   *string  `json:"titleAr,omitempty"   validate:"omitempty,max=200"`
	Slug      string   `json:"slug,omitempty"      validate:"omitempty,max=200,slug"`
	Excerpt   string   `json:"excerpt"             validate:"required,max=500"`
	ExcerptAr *string  `json:"excerptAr,omitempty" validate:"omitempty,max=500"`
	Content   string   `json:"content"             validate:"required"`
	ContentAr *string  `json:"contentAr,omitempty"`
	Image     *string  `json:"image,omitempty"     validate:"omitempty,url"`
	Author    string   `json:"author,omitempty"    validate:"omitempty,max=100"`
	Tags      []string `json:"tags,omitempty"      validate:"omitempty,max=10,dive,required,max=30"`
	Published bool     `json:"published"`
}

// ToModel builds the stored post. slug and author are already resolved by the caller.
func (c *CreateBlogRequest) ToModel(user, slug, author string) model.Blog {
	blog := model.Blog{
		ID:        uuid.NewString(),
		Title:     c.Title,
		TitleAr:   c.TitleAr,
		Slug:      slug,
		Excerpt:   c.Excerpt,
		ExcerptAr: c.ExcerptAr,
		Content:   c.Content,
		ContentAr: c.ContentAr,
		Image:     c.Image,
		Author:    author,
		Tags:      NormalizeTags(c.Tags),
		Published: c.Published,
		Metadata:  gModel.NewMetadata(user),
	}

	if blog.Published {
		publishedAt := blog.CreatedAt
		blog.PublishedAt = &publishedAt
	}

	return blog
}

type UpdateBlogRequest struct {
	Title     *string  `db:"title"      json:"title,omitempty"     validate:"omitempty,min=3,max=200"`
	TitleAr   *string  `db:"title_ar"   json:"titleAr,omitempty"   validate:"omitempty,max=200"`
	Slug      *string  `db:"slug"       json:"slug,omitempty"      validate:"omitempty,max=200,slug"`
	Excerpt   *string  `db:"excerpt"    json:"excerpt,omitempty"   validate:"omitempty,max=500"`
	ExcerptAr *string  `db:"excerpt_ar" json:"excerptAr,omitempty" validate:"omitempty,max=500"`
	Content   *string  `db:"content"    json:"content,omitempty"`
	ContentAr *string  `db:"content_ar" json:"contentAr,omitempty"`
	Image     *string  `db:"image"      json:"image,omitempty"     validate:"omitempty,url"`
	Author    *string  `db:"author"     json:"author,omitempty"    validate:"omitempty,max=100"`
	Tags      []string `db:"-"          json:"tags,omitempty"      validate:"omitempty,max=10,dive,required,max=30"`
	Published *bool    `db:"published"  json:"published,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (u *UpdateBlogRequest) IsEmpty() bool {
	return u.Title == nil && u.TitleAr == nil && u.Slug == nil && u.Excerpt == nil &&
		u.ExcerptAr == nil && u.Content == nil && u.ContentAr == nil && u.Image == nil &&
		u.Author == nil && u.Tags == nil && u.Published == nil
}

type BlogResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	TitleAr     *string  `json:"titleAr"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	ExcerptAr   *string  `json:"excerptAr"`
	Content     string   `json:"content"`
	ContentAr   *string  `json:"contentAr"`
	Image       *string  `json:"image"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	PublishedAt *string  `json:"publishedAt"`
	gDto.Metadata
}

func (r *BlogResponse) FromModel(blog model.Blog) {
	r.ID = blog.ID
	r.Title = blog.Title
	r.TitleAr = blog.TitleAr
	r.Slug = blog.Slug
	r.Excerpt = blog.Excerpt
	r.ExcerptAr = blog.ExcerptAr
	r.Content = blog.Content
	r.ContentAr = blog.ContentAr
	r.Image = blog.Image
	r.Author = blog.Author
	r.Tags = []string(blog.Tags)
	r.Published = blog.Published
	r.PublishedAt = nil

	if r.Tags == nil {
		r.Tags = []string{}
	}

	if blog.PublishedAt != nil {
		publishedAt := timezone.Format(*blog.PublishedAt, constant.DateFormat)
		r.PublishedAt = &publishedAt
	}

	r.Metadata.FromModel(blog.Metadata)
}

func ToBlogResponse(blog model.Blog) BlogResponse {
	var res BlogResponse
	res.FromModel(blog)

	return res
}

// NormalizeTags lower-cases and trims tags, dropping blanks and duplicates.
func NormalizeTags(tags []string) pq.StringArray {
	seen := make(map[string]struct{}, len(tags))
	out := pq.StringArray{}

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// ListFilter is the set of filters accepted on post listings.
type ListFilter struct {
	Tag       string
	Search    string
	Published *bool
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Tag = strings.ToLower(strings.TrimSpace(query.Get(QueryTag)))
	f.Search = query.Get(constant.RequestParamSearch)
	f.Published = shared.ConvertStringToBool(query.Get(QueryPublished))
}

// FilterGroup builds the where clause. Public listings only ever see published posts.
func (f *ListFilter) FilterGroup(publicOnly bool) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	published := f.Published
	if publicOnly {
		visible := true
		published = &visible
	}

	if published != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	if f.Tag != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  QueryTag,
			Field:    model.FieldTags,
			Operator: gDto.FilterOperatorAny,
			Value:    f.Tag,
			Table:    model.TableName,
		})
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search", Field: model.FieldTitle, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
				gDto.Filter{ArgName: "search_ar", Field: model.FieldTitleAr, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
			},
		})
	}

	return group
}
