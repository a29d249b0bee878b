package main

import (
	"fmt"

	"github.com/QuangTung97/conference/config"
	"github.com/QuangTung97/conference/pkg/migration"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	conf := config.Load()
	if conf.Store.Driver != config.DriverMySQL {
		fmt.Println("[ERROR] migrations are for the mysql store, the sqlite schema is applied on start")
		return
	}

	cmd := migration.MigrateCommand(conf.Store.MySQL.DSN())
	err := cmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
	}
}
