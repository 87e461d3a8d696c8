package repo

import (
	"recruitd/internal/auth"
	"recruitd/internal/models"

	"gorm.io/gorm"
)

// Стартовый каталог ролей/страниц и дефолтных выдач. Засеивается
// идемпотентно при каждом запуске.
var seedRoles = []string{
	models.RoleAdministrator,
	models.RoleGeneralManager,
	models.RoleRecruiter,
	models.RoleCandidate,
}

var seedPages = []models.Page{
	{Name: models.PageViewJobs, IsExternal: true},
	{Name: models.PageApplications, IsExternal: true},
	{Name: models.PageAddJob, IsExternal: true, IsAddEdit: true},
	{Name: models.PageManageUsers, IsAddEdit: true},
	{Name: models.PageReports},
}

var seedGrants = map[string][]string{
	models.RoleAdministrator:  {models.PageManageUsers, models.PageReports, models.PageViewJobs, models.PageAddJob},
	models.RoleGeneralManager: {models.PageManageUsers, models.PageReports},
	models.RoleRecruiter:      {models.PageViewJobs, models.PageAddJob, models.PageApplications},
	models.RoleCandidate:      {models.PageViewJobs, models.PageApplications},
}

// SeedCatalog создаёт недостающие роли, страницы и role→page выдачи.
func SeedCatalog(db *gorm.DB) error {
	roleIDs := make(map[string]uint, len(seedRoles))
	for _, name := range seedRoles {
		var r models.Role
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
		roleIDs[name] = r.ID
	}

	pageIDs := make(map[string]uint, len(seedPages))
	for _, p := range seedPages {
		var got models.Page
		if err := db.Where(models.Page{Name: p.Name}).
			Attrs(models.Page{IsExternal: p.IsExternal, IsAddEdit: p.IsAddEdit}).
			FirstOrCreate(&got).Error; err != nil {
			return err
		}
		pageIDs[p.Name] = got.ID
	}

	for role, pages := range seedGrants {
		for _, page := range pages {
			link := models.RolePage{RoleID: roleIDs[role], PageID: pageIDs[page]}
			if err := db.Where(models.RolePage{RoleID: link.RoleID, PageID: link.PageID}).
				FirstOrCreate(&link).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedMemory наполняет in-memory стор тем же каталогом.
func SeedMemory(m *auth.MemoryStore) {
	roleIDs := make(map[string]uint, len(seedRoles))
	for _, name := range seedRoles {
		roleIDs[name] = m.AddRole(models.Role{Name: name}).ID
	}
	pageIDs := make(map[string]uint, len(seedPages))
	for _, p := range seedPages {
		pageIDs[p.Name] = m.AddPage(p).ID
	}
	for role, pages := range seedGrants {
		for _, page := range pages {
			m.LinkRolePage(roleIDs[role], pageIDs[page])
		}
	}
}
