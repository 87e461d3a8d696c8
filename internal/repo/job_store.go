package repo

import (
	"context"
	"errors"

	"recruitd/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobStore struct{ db *gorm.DB }

func NewJobStore(db *gorm.DB) *JobStore { return &JobStore{db: db} }

// List — все неархивные вакансии, свежие сверху.
func (s *JobStore) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("is_archived = ?", false).
		Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (s *JobStore) Get(ctx context.Context, id uint) (*models.Job, error) {
	var j models.Job
	err := s.db.WithContext(ctx).
		Where("is_archived = ?", false).First(&j, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *JobStore) ListByUser(ctx context.Context, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("posted_by = ? AND is_archived = ?", userID, false).
		Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

// Recruiters — пользователи с активной ролью Recruiter.
func (s *JobStore) Recruiters(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name = ?", models.RoleRecruiter).
		Where("users.is_archived = ? AND user_roles.is_archived = ? AND roles.is_archived = ?",
			false, false, false).
		Distinct().Find(&users).Error
	return users, err
}

func (s *JobStore) Create(ctx context.Context, j *models.Job) error {
	return s.db.WithContext(ctx).Create(j).Error
}

func (s *JobStore) Update(ctx context.Context, j *models.Job) error {
	return s.db.WithContext(ctx).Save(j).Error
}
