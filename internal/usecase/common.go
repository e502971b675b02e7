package usecase

import (
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxQueryLen  = 100
)

// usecaseが入力検証をvalidatorに任せる約束
// 失敗時は NewValidationError 相当の *HTTPError を返す
type Validator interface {
	Validate(v any) error
}

// 一覧APIのページング情報
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pageCount(total, limit),
	}
}

// ceil(total/limit)
func pageCount(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}

type PageInput struct {
	Page  int
	Limit int
}

func (p PageInput) validate() error {
	if p.Page < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	// offset (page-1)*limit がintに収まる範囲まで
	if p.Page-1 > math.MaxInt/p.Limit {
		return NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	return nil
}

// 全文検索のq。空と長すぎる値は400
func normalizeSearchQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", NewHTTPError(http.StatusBadRequest, "q required")
	}
	if len([]rune(q)) > MaxQueryLen {
		return "", NewHTTPError(http.StatusBadRequest, "q too long")
	}
	return q, nil
}

// 一覧のqは任意
func normalizeListQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) > MaxQueryLen {
		return "", NewHTTPError(http.StatusBadRequest, "q too long")
	}
	return q, nil
}

// 検証前に前後の空白を落とす
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// IDのチェック。空は400、UUIDでなければ存在しないものとして404
func checkID(id string, entity string) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, "missing id")
	}
	if _, err := uuid.Parse(id); err != nil {
		return NewHTTPError(http.StatusNotFound, entity+" not found")
	}
	return nil
}
