package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "github.com/Natoons/cynova/internal/repository"
)

// HTTPError はhandlerがそのままレスポンスにできるエラー
type HTTPError struct {
	Status  int
	Message string
	Details []string
	// 500のときの原因（ログ用、レスポンスには出さない）
	Err error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// 入力検証の失敗（400 + 項目ごとのメッセージ）
func NewValidationError(details []string) error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "validation failed",
		Details: details,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// リポジトリのエラーをHTTPErrorに変換する。
// StoreError以外はそのまま返し、上位のエラーハンドラで500にする。
func FromStoreError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}

	var se *repo.StoreError
	if !errors.As(err, &se) {
		return err
	}

	entity := se.Entity
	if entity == "" {
		entity = "resource"
	}

	switch se.Kind {
	case repo.KindNotFound:
		return NewHTTPError(http.StatusNotFound, entity+" not found")
	case repo.KindConflict:
		if se.Field != "" {
			return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s with this %s already exists", entity, se.Field))
		}
		return NewHTTPError(http.StatusBadRequest, entity+" already exists")
	case repo.KindForeignKey:
		return NewHTTPError(http.StatusBadRequest, "invalid reference")
	default:
		return &HTTPError{Status: http.StatusInternalServerError, Message: "db error", Err: err}
	}
}
