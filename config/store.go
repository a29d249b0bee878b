package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
)

const (
	// DriverMySQL ...
	DriverMySQL = "mysql"

	// DriverSQLite ...
	DriverSQLite = "sqlite3"
)

// MySQLOption for MySQL options
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for configuring MySQL
type MySQLConfig struct {
	Host         string        `mapstructure:"host"`
	Port         uint16        `mapstructure:"port"`
	Database     string        `mapstructure:"database"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	Options      []MySQLOption `mapstructure:"options"`
}

// StoreConfig selects the entity store backend
type StoreConfig struct {
	Driver     string      `mapstructure:"driver"`
	MySQL      MySQLConfig `mapstructure:"mysql"`
	SQLitePath string      `mapstructure:"sqlite_path"`
}

func (c MySQLConfig) optionsString() string {
	var opts []string
	for _, o := range c.Options {
		key := url.QueryEscape(o.Key)
		value := url.QueryEscape(o.Value)
		opts = append(opts, key+"="+value)
	}
	return strings.Join(opts, "&")
}

// DSN returns data source name
func (c MySQLConfig) DSN() string {
	optStr := c.optionsString()
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", c.Username, c.Password, c.Host, c.Port, c.Database, optStr)
}

// SQLiteDSN returns the sqlite data source name with the pragmas the store relies on
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(10000)&_pragma=foreign_keys(1)&_pragma=journal_mode(wal)"
}

// MustConnect connects to database using sqlx, the driver must be imported by main
func (c StoreConfig) MustConnect() *sqlx.DB {
	if c.Driver == DriverSQLite {
		db := sqlx.MustConnect(DriverSQLite, SQLiteDSN(c.SQLitePath))
		// sqlite allows a single writer, transactions are serialized through one connection
		db.SetMaxOpenConns(1)
		return db
	}

	db := sqlx.MustConnect(DriverMySQL, c.MySQL.DSN())

	fmt.Println("MaxOpenConns:", c.MySQL.MaxOpenConns)
	fmt.Println("MaxIdleConns:", c.MySQL.MaxIdleConns)
	fmt.Println("Options:", c.MySQL.optionsString())

	db.SetMaxOpenConns(c.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(c.MySQL.MaxIdleConns)
	return db
}
