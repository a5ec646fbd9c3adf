package model

import (
	"time"

	"autocare/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "blogs"
	EntityName = "blog"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldTitleAr     = "title_ar"
	FieldSlug        = "slug"
	FieldExcerpt     = "excerpt"
	FieldExcerptAr   = "excerpt_ar"
	FieldContent     = "content"
	FieldContentAr   = "content_ar"
	FieldImage       = "image"
	FieldAuthor      = "author"
	FieldTags        = "tags"
	FieldPublished   = "published"
	FieldPublishedAt = "published_at"
)

type Blog struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	TitleAr     *string        `db:"title_ar"`
	Slug        string         `db:"slug"`
	Excerpt     string         `db:"excerpt"`
	ExcerptAr   *string        `db:"excerpt_ar"`
	Content     string         `db:"content"`
	ContentAr   *string        `db:"content_ar"`
	Image       *string        `db:"image"`
	Author      string         `db:"author"`
	Tags        pq.StringArray `db:"tags"`
	Published   bool           `db:"published"`
	PublishedAt *time.Time     `db:"published_at"`
	model.Metadata
}
