package repository

import (
	"errors"

	repo "github.com/Natoons/cynova/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// DBのエラーをStoreErrorに変換する
func toStoreError(entity string, uniqueField string, err error) error {
	if err == nil {
		return nil
	}

	var se *repo.StoreError
	if errors.As(err, &se) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &repo.StoreError{Kind: repo.KindNotFound, Entity: entity, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &repo.StoreError{Kind: repo.KindConflict, Entity: entity, Field: uniqueField, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &repo.StoreError{Kind: repo.KindForeignKey, Entity: entity, Err: err}
	}

	// TranslateErrorが効かない経路向け
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			field := uniqueField
			if pgErr.ColumnName != "" {
				field = pgErr.ColumnName
			}
			return &repo.StoreError{Kind: repo.KindConflict, Entity: entity, Field: field, Err: err}
		case pgForeignKeyViolation:
			return &repo.StoreError{Kind: repo.KindForeignKey, Entity: entity, Field: pgErr.ColumnName, Err: err}
		}
	}

	return &repo.StoreError{Kind: repo.KindUnknown, Entity: entity, Err: err}
}

func notFound(entity string) error {
	return &repo.StoreError{Kind: repo.KindNotFound, Entity: entity}
}
