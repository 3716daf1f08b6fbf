package article

import (
	"time"

	domainArticle "fruitarians-api/internal/domain/article"
	"fruitarians-api/pkg/utils"
)

type ArticleResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Konten    string `json:"konten"`
	Author    string `json:"author"`
	Photo     string `json:"photo"`
	CreatedAt string `json:"createdAt"`
}

type ListResult struct {
	Items []ArticleResponse
	Total int
}

type DetailResult struct {
	Article    ArticleResponse
	RandomItem *ArticleResponse
}

// ToArticleResponse formats createdAt as an Indonesian date; articles without
// one are shown with the current date.
func ToArticleResponse(a *domainArticle.Article, now time.Time) ArticleResponse {
	created := now
	if a.CreatedAt != nil {
		created = *a.CreatedAt
	}
	return ArticleResponse{
		ID:        a.Number,
		Title:     a.Title,
		Konten:    a.Content,
		Author:    a.Author,
		Photo:     a.Photo,
		CreatedAt: utils.FormatJoinDate(created),
	}
}
