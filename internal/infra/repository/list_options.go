package repository

import (
	repo "app/internal/repository"

	"gorm.io/gorm"
)

const defaultPerPage = 15

// ページ番号・件数をデフォルト込みで正規化
func normalizePage(p repo.Pagination) (page int, perPage int) {
	page = p.Page
	if page <= 0 {
		page = 1
	}
	perPage = p.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return page, perPage
}

// sortableにないsort_by指定は無視してデフォルトに落とす
func applySort(db *gorm.DB, p repo.Pagination, defaultBy string, defaultOrder string, sortable map[string]bool) *gorm.DB {
	by := p.SortBy
	if by == "" || !sortable[by] {
		by = defaultBy
	}

	order := p.SortOrder
	if order != "asc" && order != "desc" {
		order = defaultOrder
	}

	return db.Order(by + " " + order)
}

func applyPage(db *gorm.DB, p repo.Pagination) *gorm.DB {
	page, perPage := normalizePage(p)
	return db.Limit(perPage).Offset((page - 1) * perPage)
}
