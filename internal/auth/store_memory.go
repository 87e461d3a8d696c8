package auth

import (
	"context"
	"sync"

	"recruitd/internal/models"
)

// MemoryStore — реализация Store без БД: используется в in-memory режиме
// (database.driver пустой) и в тестах сервиса.
type MemoryStore struct {
	mu        sync.RWMutex
	roles     map[uint]models.Role
	pages     map[uint]models.Page
	rolePages []models.RolePage
	users     map[string]*models.User  // по ID
	logins    map[string]*models.Login // по user ID

	nextRoleID uint
	nextPageID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		roles:  make(map[uint]models.Role),
		pages:  make(map[uint]models.Page),
		users:  make(map[string]*models.User),
		logins: make(map[string]*models.Login),
	}
}

// AddRole регистрирует роль в каталоге (ID назначается, если нулевой).
func (m *MemoryStore) AddRole(r models.Role) models.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == 0 {
		m.nextRoleID++
		r.ID = m.nextRoleID
	}
	m.roles[r.ID] = r
	return r
}

func (m *MemoryStore) AddPage(p models.Page) models.Page {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == 0 {
		m.nextPageID++
		p.ID = m.nextPageID
	}
	m.pages[p.ID] = p
	return p
}

// LinkRolePage добавляет дефолтную выдачу страницы для роли.
func (m *MemoryStore) LinkRolePage(roleID, pageID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolePages = append(m.rolePages, models.RolePage{RoleID: roleID, PageID: pageID})
}

func (m *MemoryStore) RolesByIDs(_ context.Context, ids []uint) ([]models.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Role, 0, len(ids))
	for _, id := range ids {
		if r, ok := m.roles[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) ActiveUserExists(_ context.Context, username, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if !u.IsArchived && u.Username == username && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) RolePages(_ context.Context, roleIDs []uint) ([]models.RolePage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	want := make(map[uint]bool, len(roleIDs))
	for _, id := range roleIDs {
		want[id] = true
	}
	var out []models.RolePage
	for _, l := range m.rolePages {
		if l.IsArchived || !want[l.RoleID] {
			continue
		}
		if p, ok := m.pages[l.PageID]; ok {
			cp := p
			l.Page = &cp
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateUser(_ context.Context, u *models.User, login *models.Login) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if ex.Username == u.Username && ex.Email == u.Email {
			return fail(ErrConflict, msgUserExists)
		}
	}
	cp := *u
	lcp := *login
	m.users[u.ID] = &cp
	m.logins[u.ID] = &lcp
	return nil
}

func (m *MemoryStore) FindActiveByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.IsArchived || u.Username != username {
			continue
		}
		cp := *u
		if l, ok := m.logins[u.ID]; ok {
			lcp := *l
			cp.Login = &lcp
		}
		return &cp, nil
	}
	return nil, ErrUserNotFound
}

func (m *MemoryStore) RoleNames(_ context.Context, ids []uint) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if r, ok := m.roles[id]; ok && !r.IsArchived {
			out = append(out, r.Name)
		}
	}
	return out, nil
}

func (m *MemoryStore) PageNames(_ context.Context, ids []uint) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.pages[id]; ok && !p.IsArchived {
			out = append(out, p.Name)
		}
	}
	return out, nil
}
