package article

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	domainArticle "fruitarians-api/internal/domain/article"
	appErrors "fruitarians-api/pkg/errors"
	"fruitarians-api/pkg/utils"
)

const (
	msgInvalidID  = "id must be an integer"
	msgIDNotFound = "id not found"
)

type Service struct {
	repo domainArticle.Repository
	now  func() time.Time
}

func NewService(repo domainArticle.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) (*ListResult, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	now := s.now()
	items := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, ToArticleResponse(a, now))
	}

	return &ListResult{Items: items, Total: len(items)}, nil
}

// GetByNumber looks an article up by its public numeric id. With withCard a
// different article is sampled as a related item when one exists.
func (s *Service) GetByNumber(ctx context.Context, idRaw string, withCard bool) (*DetailResult, error) {
	number, err := strconv.Atoi(strings.TrimSpace(idRaw))
	if err != nil {
		return nil, appErrors.BadRequest(msgInvalidID)
	}

	found, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domainArticle.ErrArticleNotFound) {
			return nil, appErrors.NotFound(msgIDNotFound)
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	now := s.now()
	result := &DetailResult{Article: ToArticleResponse(found, now)}
	if !withCard {
		return result, nil
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	others := make([]*domainArticle.Article, 0, len(all))
	for _, a := range all {
		if a.Number != found.Number {
			others = append(others, a)
		}
	}
	if pick, ok := utils.SampleOne(others); ok {
		item := ToArticleResponse(pick, now)
		result.RandomItem = &item
	}

	return result, nil
}
