package etl

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/BartekS5/finess/pkg/logger"
	"github.com/BartekS5/finess/pkg/models"
	"github.com/BartekS5/finess/pkg/utils"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLPublisher upserts cards into a SQL Server table.
type SQLPublisher struct {
	DB    *sql.DB
	Table string
	Log   *logger.Logger
}

func NewSQLPublisher(db *sql.DB, table string, log *logger.Logger) (*SQLPublisher, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &SQLPublisher{DB: db, Table: table, Log: log}, nil
}

func (s *SQLPublisher) EnsureContainer(ctx context.Context) error {
	s.Log.Infof("Create SQL table : %s", s.Table)
	query := fmt.Sprintf(`IF OBJECT_ID(N'%[1]s', N'U') IS NULL
CREATE TABLE %[1]s (
	finess  VARCHAR(9)    NOT NULL PRIMARY KEY,
	name    NVARCHAR(60)  NULL,
	cp      VARCHAR(5)    NULL,
	dept    VARCHAR(2)    NULL,
	city    NVARCHAR(60)  NULL,
	opened  DATE          NULL,
	updated DATE          NULL
)`, s.Table)

	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", s.Table, err)
	}
	return nil
}

func (s *SQLPublisher) Put(ctx context.Context, key string, card models.Card) error {
	query := fmt.Sprintf(`MERGE %s AS t
USING (SELECT @p1 AS finess) AS src ON t.finess = src.finess
WHEN MATCHED THEN
	UPDATE SET name = @p2, cp = @p3, dept = @p4, city = @p5, opened = @p6, updated = @p7
WHEN NOT MATCHED THEN
	INSERT (finess, name, cp, dept, city, opened, updated)
	VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7);`, s.Table)

	_, err := s.DB.ExecContext(ctx, query,
		key,
		card[models.FieldName],
		card[models.FieldZipCode],
		card[models.FieldDept],
		card[models.FieldCity],
		utils.NullableDate(card[models.FieldOpened]),
		utils.NullableDate(card[models.FieldUpdated]),
	)
	if err != nil {
		return fmt.Errorf("merge %s: %w", key, err)
	}
	s.Log.Debugf("Merged %s into %s", key, s.Table)
	return nil
}
