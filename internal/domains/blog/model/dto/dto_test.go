package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"autocare/internal/domains/blog/model"
	"autocare/internal/domains/blog/model/dto"
	"autocare/shared/validator"
)

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"tyres", "winter"}, []string(dto.NormalizeTags([]string{" Tyres", "winter", "", "TYRES"})))
	assert.Empty(t, dto.NormalizeTags(nil))
}

func TestListFilter_FilterGroup(t *testing.T) {
	var filter dto.ListFilter
	filter.FromRequest(httptest.NewRequest("GET", "/api/blog?tag=Tyres&published=false", nil))

	group1 := filter.FilterGroup(true)
	where, args := group1.GetWhereClause()
	assert.Equal(t, "(blogs.published = :published AND :tag = ANY(blogs.tags))", where)
	assert.Equal(t, true, args["published"])
	assert.Equal(t, "tyres", args["tag"])

	group2 := filter.FilterGroup(false)
	_, args = group2.GetWhereClause()
	assert.Equal(t, false, args["published"])
}

func TestBlogResponse_FromModel(t *testing.T) {
	res := dto.ToBlogResponse(model.Blog{ID: "b-1", Title: "t"})

	assert.Equal(t, []string{}, res.Tags)
	assert.Nil(t, res.PublishedAt)
}

func TestCreateBlogRequest_SlugValidation(t *testing.T) {
	req := dto.CreateBlogRequest{Title: "Title", Excerpt: "e", Content: "c", Slug: "Not A Slug"}
	assert.Error(t, validator.ValidateStruct(&req))

	req.Slug = "a-valid-slug"
	assert.NoError(t, validator.ValidateStruct(&req))
}
