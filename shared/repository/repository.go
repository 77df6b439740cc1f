package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"

	"github.com/jmoiron/sqlx"
)

// insertBatchSize keeps a bulk insert below the bind parameter limit of the drivers.
const insertBatchSize = 500

// Connection holds the read and write handles of a SQL store. Both may point at the same pool.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository reads and replaces a whole table of T. Column names come from the db tags of T.
type Repository[T any] struct {
	db          *Connection
	otel        otel.Otel
	table       string
	entitas     string
	orderColumn string
	Columns     []string
}

func NewRepository[T any](entitasName, tableName, orderColumn string, dbConnection *Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:          dbConnection,
		otel:        otl,
		table:       tableName,
		entitas:     entitasName,
		orderColumn: orderColumn,
		Columns:     getColumns(reflect.TypeOf(zero)),
	}
}

// GetAll returns every row of the table in stored order.
func (repo *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(repo.Columns, ", "), repo.table, repo.orderColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	if err := repo.db.Read.SelectContext(ctx, &models, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

// ReplaceAll swaps the table content for models inside its own transaction.
func (repo *Repository[T]) ReplaceAll(ctx context.Context, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ReplaceAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	return WithTx(ctx, repo.db, func(sqltx *sqlx.Tx) error {
		return repo.ReplaceAllTx(ctx, sqltx, models)
	})
}

// ReplaceAllTx swaps the table content for models inside a caller owned transaction.
func (repo *Repository[T]) ReplaceAllTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ReplaceAllTx", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if err := repo.deleteAll(ctx, sqltx); err != nil {
		return err
	}

	for start := 0; start < len(models); start += insertBatchSize {
		end := min(start+insertBatchSize, len(models))

		if err := repo.insertBulk(ctx, sqltx, models[start:end]); err != nil {
			return err
		}
	}

	scope.SetAttribute("rows", len(models))

	return nil
}

func (repo *Repository[T]) deleteAll(ctx context.Context, exec execer) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.deleteAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := "DELETE FROM " + repo.table
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.ExecContext(ctx, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) insertBulk(ctx context.Context, exec execer, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.insertBulk", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	placeholder := make([]string, 0, len(repo.Columns))
	for _, column := range repo.Columns {
		placeholder = append(placeholder, ":"+column)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.Columns, ", "), strings.Join(placeholder, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, models); err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to bulk insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

// WithTx runs fn in a write transaction, committing on success and rolling back otherwise.
func WithTx(ctx context.Context, db *Connection, fn func(sqltx *sqlx.Tx) error) (err error) {
	sqltx, err := db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = sqltx.Rollback()
		}
	}()

	if err = fn(sqltx); err != nil {
		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func getColumns(reflectType reflect.Type) (columns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}
