package repository

import (
	"errors"
	"fmt"
)

// ストア層のエラー種別。mapperはこれだけを見て分岐する。
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindConflict
	KindForeignKey
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForeignKey:
		return "foreign_key"
	default:
		return "unknown"
	}
}

// StoreError はリポジトリが返す唯一のエラー型
type StoreError struct {
	Kind   ErrorKind
	Entity string
	Field  string
	Err    error
}

func (e *StoreError) Error() string {
	msg := e.Kind.String()
	if e.Entity != "" {
		msg = e.Entity + ": " + msg
	}
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// 種別が同じなら一致とみなす（errors.Is(err, ErrNotFound) 用）
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var ErrNotFound = &StoreError{Kind: KindNotFound}

// errがStoreErrorでなければKindUnknown
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
