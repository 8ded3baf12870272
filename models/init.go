package models

import (
	"blog/db"
)

func Init() error {
	return db.Instance.AutoMigrate(
		&User{},
		&Group{},
		&Post{},
		&Comment{},
		&Follow{},
	)
}
