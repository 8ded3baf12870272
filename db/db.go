package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init opens MySQL when a DSN is given, SQLite otherwise
func Init(mysqlDSN, sqliteFile string) {
	var dialector gorm.Dialector
	if mysqlDSN != "" {
		log.Printf("Using MySQL database")
		dialector = mysql.Open(mysqlDSN)
	} else {
		log.Printf("Using SQLite database: %s", sqliteFile)
		dialector = sqlite.Open(sqliteFile)
	}
	if err := Open(dialector); err != nil {
		panic(err)
	}
}

func Open(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
	if err != nil {
		return err
	}
	Instance = db
	return nil
}

// OpenInMemory opens a private in-memory SQLite database, used by tests.
// The pool is pinned to one connection since every new connection gets an empty database.
func OpenInMemory() error {
	if err := Open(sqlite.Open(":memory:")); err != nil {
		return err
	}
	sqlDB, err := Instance.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}
