package repo

import (
	"context"
	"errors"

	"recruitd/internal/auth"
	"recruitd/internal/models"

	"gorm.io/gorm"
)

// UserStore — gorm-реализация auth.Store.
type UserStore struct{ db *gorm.DB }

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) RolesByIDs(ctx context.Context, ids []uint) ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *UserStore) ActiveUserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND email = ? AND is_archived = ?", username, email, false).
		Count(&count).Error
	return count > 0, err
}

func (s *UserStore) RolePages(ctx context.Context, roleIDs []uint) ([]models.RolePage, error) {
	var links []models.RolePage
	err := s.db.WithContext(ctx).Preload("Page").
		Where("role_id IN ? AND is_archived = ?", roleIDs, false).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// CreateUser пишет пользователя, его Login и join-ряды ролей/страниц одной
// транзакцией. Гонку check-then-insert закрывает составной уникальный индекс
// username+email: дубликат всплывает как ErrConflict.
func (s *UserStore) CreateUser(ctx context.Context, u *models.User, login *models.Login) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return tx.Create(login).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return auth.ErrConflict
	}
	return err
}

func (s *UserStore) FindActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Preload("Login").Preload("Roles").Preload("Pages").
		Where("username = ? AND is_archived = ?", username, false).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) RoleNames(ctx context.Context, ids []uint) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&models.Role{}).
		Where("id IN ? AND is_archived = ?", ids, false).
		Order("name asc").Pluck("name", &names).Error
	return names, err
}

func (s *UserStore) PageNames(ctx context.Context, ids []uint) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&models.Page{}).
		Where("id IN ? AND is_archived = ?", ids, false).
		Order("name asc").Pluck("name", &names).Error
	return names, err
}
