package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"recruitd/internal/models"
	"recruitd/internal/passhash"
	"recruitd/internal/token"

	"github.com/google/uuid"
)

// Технический создатель записей при самостоятельной регистрации.
const systemUserID = "3af1ba96-4a39-467c-8ad9-3f418f199cd0"

// Store — всё, что сервису нужно от хранилища. Реализации:
// repo.UserStore (gorm) и memStore (in-memory режим/тесты).
type Store interface {
	// RolesByIDs возвращает найденные роли, включая архивные (проверка
	// архивности — на сервисе).
	RolesByIDs(ctx context.Context, ids []uint) ([]models.Role, error)
	// ActiveUserExists — есть ли неархивный пользователь с таким
	// username+email (оба уже trimmed).
	ActiveUserExists(ctx context.Context, username, email string) (bool, error)
	// RolePages возвращает неархивные связки роль→страница с предзагруженной
	// Page; фильтрация страниц — на сервисе.
	RolePages(ctx context.Context, roleIDs []uint) ([]models.RolePage, error)
	// CreateUser атомарно сохраняет пользователя вместе с Login и join-рядами
	// ролей/страниц. Дубликат username+email — ErrConflict.
	CreateUser(ctx context.Context, u *models.User, login *models.Login) error
	// FindActiveByUsername ищет неархивного пользователя по точному username
	// с предзагрузкой Login, Roles, Pages; отсутствие — ErrUserNotFound.
	FindActiveByUsername(ctx context.Context, username string) (*models.User, error)
	// RoleNames/PageNames — имена только неархивных сущностей.
	RoleNames(ctx context.Context, ids []uint) ([]string, error)
	PageNames(ctx context.Context, ids []uint) ([]string, error)
}

type Service struct {
	store  Store
	issuer *token.Issuer
}

func NewService(store Store, issuer *token.Issuer) *Service {
	return &Service{store: store, issuer: issuer}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	RoleIDs  []uint `json:"role_ids"`
}

// ValidUser — результат Register/Login: пользователь + подписанный токен.
type ValidUser struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register создаёт пользователя с Login (свежая соль + HMAC-SHA-512 хэш),
// назначает роли и выводит дефолтные страницы из ролей. Всё сохраняется
// одной транзакцией; токен выпускается до записи, так что отказ подписи
// ничего не персистит.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*ValidUser, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	// пароль сознательно не trim'ится

	if in.Username == "" || in.Email == "" || in.Password == "" || len(in.RoleIDs) == 0 {
		return nil, fail(ErrValidation, msgDetailsRequired)
	}

	roles, err := s.store.RolesByIDs(ctx, in.RoleIDs)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if r.IsArchived {
			return nil, fail(ErrValidation, msgArchivedRole)
		}
	}

	exists, err := s.store.ActiveUserExists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fail(ErrConflict, msgUserExists)
	}

	salt, err := passhash.GenerateSalt()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedBy: systemUserID,
		CreatedAt: now,
	}
	login := &models.Login{
		UserID:       user.ID,
		PasswordHash: passhash.Hash(in.Password, salt),
		PasswordSalt: salt,
		CreatedBy:    systemUserID,
		CreatedAt:    now,
	}

	roleIDs := make([]uint, 0, len(roles))
	external, elevated := false, false
	for _, r := range roles {
		roleIDs = append(roleIDs, r.ID)
		external = external || r.ExternalFacing()
		elevated = elevated || r.Elevated()
		user.Roles = append(user.Roles, models.UserRole{
			UserID:    user.ID,
			RoleID:    r.ID,
			CreatedBy: systemUserID,
			CreatedAt: now,
		})
	}

	// Дефолтные страницы: видимость (IsExternal) должна совпадать с
	// внешним/внутренним характером набора ролей; add/edit-страницы — только
	// при привилегированной роли; архивные страницы исключаются.
	links, err := s.store.RolePages(ctx, roleIDs)
	if err != nil {
		return nil, err
	}
	pageNames := make([]string, 0, len(links))
	seen := map[uint]bool{}
	for _, l := range links {
		p := l.Page
		if p == nil || p.IsArchived || seen[p.ID] {
			continue
		}
		if p.IsExternal != external {
			continue
		}
		if p.IsAddEdit && !elevated {
			continue
		}
		seen[p.ID] = true
		pageNames = append(pageNames, p.Name)
		user.Pages = append(user.Pages, models.UserPage{
			UserID:    user.ID,
			PageID:    p.ID,
			CreatedBy: systemUserID,
			CreatedAt: now,
		})
	}

	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, r.Name)
	}
	tok, err := s.issuer.Issue(user.ID, roleNames, pageNames)
	if err != nil {
		return nil, fail(ErrToken, msgTokenFailed)
	}

	if err := s.store.CreateUser(ctx, user, login); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, fail(ErrConflict, msgUserExists)
		}
		return nil, err
	}

	return &ValidUser{User: user, Token: tok}, nil
}

// Login проверяет пароль через пересчёт HMAC со stored-солью (сравнение за
// константное время) и выпускает токен с активными ролями/страницами.
// Неизвестный пользователь и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, username, password string) (*ValidUser, error) {
	username = strings.TrimSpace(username)

	user, err := s.store.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, fail(ErrInvalidCredentials, msgBadCredentials)
		}
		return nil, err
	}
	if user.Login == nil ||
		!passhash.Equal(passhash.Hash(password, user.Login.PasswordSalt), user.Login.PasswordHash) {
		return nil, fail(ErrInvalidCredentials, msgBadCredentials)
	}

	roleIDs := make([]uint, 0, len(user.Roles))
	for _, ur := range user.Roles {
		if !ur.IsArchived {
			roleIDs = append(roleIDs, ur.RoleID)
		}
	}
	pageIDs := make([]uint, 0, len(user.Pages))
	for _, up := range user.Pages {
		if !up.IsArchived {
			pageIDs = append(pageIDs, up.PageID)
		}
	}

	roleNames, err := s.store.RoleNames(ctx, roleIDs)
	if err != nil {
		return nil, err
	}
	pageNames, err := s.store.PageNames(ctx, pageIDs)
	if err != nil {
		return nil, err
	}

	tok, err := s.issuer.Issue(user.ID, roleNames, pageNames)
	if err != nil {
		return nil, fail(ErrToken, msgTokenFailed)
	}

	return &ValidUser{User: user, Token: tok}, nil
}
