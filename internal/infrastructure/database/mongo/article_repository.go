package mongo

import (
	"context"
	"fmt"

	"fruitarians-api/internal/domain/article"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) article.Repository {
	return &ArticleRepository{coll: db.Collection(articlesCollection)}
}

func (r *ArticleRepository) List(ctx context.Context) ([]*article.Article, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(listSort))
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []articleDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}

	out := make([]*article.Article, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}

func (r *ArticleRepository) GetByNumber(ctx context.Context, number int) (*article.Article, error) {
	var doc articleDocument
	err := r.coll.FindOne(ctx, bson.M{"id": number}).Decode(&doc)
	if isNoDocuments(err) {
		return nil, article.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return doc.toEntity(), nil
}
