package article

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Article, error)
	GetByNumber(ctx context.Context, number int) (*Article, error)
}
