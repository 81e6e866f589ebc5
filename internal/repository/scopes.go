package repository

import (
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
	"gorm.io/gorm"
)

// paginate applies page-based offset and limit to a query.
func paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}
