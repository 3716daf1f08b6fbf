package postgres

import (
	"context"
	"errors"
	"fmt"

	"fruitarians-api/internal/domain/article"
	"fruitarians-api/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) article.Repository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) List(ctx context.Context) ([]*article.Article, error) {
	var dbModels []models.ArticleModel
	err := r.db.DB.WithContext(ctx).
		Order("created_at ASC, doc_id ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	items := make([]*article.Article, 0, len(dbModels))
	for i := range dbModels {
		items = append(items, toArticleEntity(&dbModels[i]))
	}
	return items, nil
}

func (r *ArticleRepository) GetByNumber(ctx context.Context, number int) (*article.Article, error) {
	var dbModel models.ArticleModel
	err := r.db.DB.WithContext(ctx).Where("number = ?", number).Take(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, article.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return toArticleEntity(&dbModel), nil
}

func toArticleEntity(m *models.ArticleModel) *article.Article {
	return &article.Article{
		ID:        m.DocID,
		Number:    m.Number,
		Title:     m.Title,
		Content:   m.Content,
		Author:    m.Author,
		Photo:     m.Photo,
		CreatedAt: m.CreatedAt,
	}
}
