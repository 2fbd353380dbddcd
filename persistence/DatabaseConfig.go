package persistence

import (
	"database/sql"
	"errors"
	"os"
	"strings"
)

type DatabaseConfig struct {
	DriverType string
	DriverArgs string
}

// ParseDatabaseConfigFromEnv DATABASE_URL with scheme prefix, e.g.
// mysql://root:root@(127.0.0.1:3306)/signoff?charset=utf8mb4&parseTime=True&loc=Local
func ParseDatabaseConfigFromEnv() (*DatabaseConfig, error) {
	databaseUrl := os.ExpandEnv(os.Getenv("DATABASE_URL"))
	if databaseUrl == "" {
		return nil, errors.New("environment variable DATABASE_URL not found")
	}
	idx := strings.Index(databaseUrl, "://")
	if idx <= 0 || idx == len(databaseUrl)-3 {
		return nil, errors.New("invalid DATABASE_URL")
	}
	return &DatabaseConfig{DriverType: databaseUrl[0:idx], DriverArgs: databaseUrl[idx+3:]}, nil
}

// PrepareMysqlDatabase creates the database of driverArgs when absent.
func PrepareMysqlDatabase(driverArgs string) error {
	idx := strings.Index(driverArgs, "/")
	if idx < 0 {
		return errors.New("invalid mysql driver args")
	}
	databaseName := driverArgs[idx+1:]
	if paramIdx := strings.Index(databaseName, "?"); paramIdx >= 0 {
		databaseName = databaseName[0:paramIdx]
	}
	if databaseName == "" {
		return errors.New("database name not found in mysql driver args")
	}

	db, err := sql.Open("mysql", driverArgs[0:idx+1])
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.Exec("CREATE DATABASE IF NOT EXISTS `" + databaseName + "` CHARACTER SET utf8mb4")
	return err
}
