package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listOrder = "created_at ASC, id ASC"

// UserRepository implements user.Repository on gorm
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isDuplicateKey(err) {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).Take(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", email).
		Order(listOrder).
		Take(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]*user.User, error) {
	var dbModels []models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("role = ?", role).
		Order(listOrder).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(dbModels))
	for i := range dbModels {
		users = append(users, toUserEntity(&dbModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	m := toUserModel(u)
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"email":           m.Email,
			"password_hashed": m.PasswordHashed,
			"name":            m.Name,
			"phone":           m.Phone,
			"country":         m.Country,
			"city":            m.City,
			"address_detail":  m.AddressDetail,
			"role":            m.Role,
			"profile_image":   m.ProfileImage,
			"description":     m.Description,
			"open_time":       m.OpenTime,
			"close_time":      m.CloseTime,
			"start_day":       m.StartDay,
			"end_day":         m.EndDay,
			"reset_nonce":     m.ResetNonce,
			"updated_at":      u.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func toUserModel(u *user.User) *models.UserModel {
	m := &models.UserModel{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHashed: u.PasswordHashed,
		Name:           u.Name,
		Phone:          u.Phone,
		Country:        u.Address.Country,
		City:           u.Address.City,
		AddressDetail:  u.Address.Detail,
		Role:           u.Role,
		ProfileImage:   u.ProfileImage,
		Description:    u.Description,
		ResetNonce:     u.ResetNonce,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if h := u.OperatingHours; h != nil {
		m.OpenTime = &h.OpenTime
		m.CloseTime = &h.CloseTime
		m.StartDay = &h.StartDay
		m.EndDay = &h.EndDay
	}
	return m
}

func toUserEntity(m *models.UserModel) *user.User {
	u := &user.User{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		Name:           m.Name,
		Phone:          m.Phone,
		Address: user.Address{
			Country: m.Country,
			City:    m.City,
			Detail:  m.AddressDetail,
		},
		Role:         m.Role,
		ProfileImage: m.ProfileImage,
		Description:  m.Description,
		ResetNonce:   m.ResetNonce,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.OpenTime != nil {
		u.OperatingHours = &user.OperatingHours{
			OpenTime:  *m.OpenTime,
			CloseTime: deref(m.CloseTime),
			StartDay:  deref(m.StartDay),
			EndDay:    deref(m.EndDay),
		}
	}
	return u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
