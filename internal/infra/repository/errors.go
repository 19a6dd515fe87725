package repository

import (
	"errors"
	"strings"

	repo "glance/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// 一意制約違反を ErrConflict に変換する。
// postgresは23505、sqlite（テスト用）はエラーメッセージで判定
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repo.ErrConflict
	}

	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return repo.ErrConflict
	}

	return err
}
