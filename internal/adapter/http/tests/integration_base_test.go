//go:build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "tasktracker/internal/adapter/db"
	"tasktracker/internal/config"
)

const kvMigration = "20261019120000_create_kv_entries_table"

// IntegrationSuiteBase provisions a throwaway MySQL database and connects to
// it the way the API does, through dbadapter.ConnectDB.
type IntegrationSuiteBase struct {
	suite.Suite

	cfg     *config.Config
	adminDB *sqlx.DB
	DB      *sqlx.DB
}

func (s *IntegrationSuiteBase) SetupSuite() {
	s.cfg = &config.Config{
		DbHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:     envOrDefault("MYSQL_PORT", "3306"),
		DbUser:     envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword: envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbName:     envOrDefault("MYSQL_TEST_DATABASE", "tasktracker_test"),
		DbParams:   os.Getenv("MYSQL_PARAMS"),
	}
	s.Require().True(strings.HasSuffix(s.cfg.DbName, "_test"), "refusing to use a non _test database")

	ctx := context.Background()
	adminDSN := dbadapter.DSN(s.cfg.DbUser, s.cfg.DbPassword, s.cfg.DbHost, s.cfg.DbPort, "", s.cfg.DbParams)
	adminDB, err := sqlx.ConnectContext(ctx, "mysql", adminDSN)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.ExecContext(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.cfg.DbName))
	s.Require().NoError(err)
	_, err = s.adminDB.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE `%s`", s.cfg.DbName))
	s.Require().NoError(err)

	s.applyMigration("up")
	db, err := dbadapter.ConnectDB(ctx, s.cfg)
	s.Require().NoError(err)
	s.DB = db
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.adminDB != nil {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.cfg.DbName))
		s.Require().NoError(err)
		s.Require().NoError(s.adminDB.Close())
	}
}

// ResetDatabase empties the key-value table between tests.
func (s *IntegrationSuiteBase) ResetDatabase() {
	_, err := s.DB.Exec("DELETE FROM kv_entries")
	s.Require().NoError(err)
}

// applyMigration runs the up or down file of the kv_entries migration against
// the test database. The up file must agree with the schema ConnectDB ensures.
func (s *IntegrationSuiteBase) applyMigration(direction string) {
	path := filepath.Join(projectRoot(), "db", "migrations", kvMigration+"."+direction+".sql")
	content, err := os.ReadFile(path)
	s.Require().NoError(err)

	dsn := dbadapter.DSN(s.cfg.DbUser, s.cfg.DbPassword, s.cfg.DbHost, s.cfg.DbPort, s.cfg.DbName, s.cfg.DbParams)
	db, err := sqlx.Connect("mysql", dsn)
	s.Require().NoError(err)
	defer db.Close()

	_, err = db.Exec(string(content))
	s.Require().NoError(err)
}

func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
