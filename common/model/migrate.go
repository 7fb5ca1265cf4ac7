package model

import (
	"github.com/copo888/storefront_app/common/typesX"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&typesX.Order{}, &typesX.TxLog{})
}
