package postgres

import (
	"context"
	"errors"
	"fmt"

	"fruitarians-api/internal/domain/buah"
	"fruitarians-api/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type BuahRepository struct {
	db *DB
}

func NewBuahRepository(db *DB) buah.Repository {
	return &BuahRepository{db: db}
}

func (r *BuahRepository) GetByID(ctx context.Context, id string) (*buah.Buah, error) {
	var dbModel models.BuahModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).Take(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, buah.ErrBuahNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get buah: %w", err)
	}

	return toBuahEntity(&dbModel), nil
}

func (r *BuahRepository) ListByCreator(ctx context.Context, creatorID string) ([]*buah.Buah, error) {
	var dbModels []models.BuahModel
	err := r.db.DB.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order(listOrder).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buah: %w", err)
	}

	items := make([]*buah.Buah, 0, len(dbModels))
	for i := range dbModels {
		items = append(items, toBuahEntity(&dbModels[i]))
	}
	return items, nil
}

func toBuahEntity(m *models.BuahModel) *buah.Buah {
	return &buah.Buah{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Stock:       m.Stock,
		Unit:        m.Unit,
		Image:       m.Image,
		Description: m.Description,
		CreatorID:   m.CreatorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
