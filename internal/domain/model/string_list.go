package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList はIDやタグの一覧。
// DBにはJSON配列のテキストで保存し、APIでもエンコード済みの文字列 ("[]" など) で返す。
type StringList []string

// 常に空配列として扱う
func (l StringList) Normalize() StringList {
	if l == nil {
		return StringList{}
	}
	return l
}

// JSON配列テキストに変換
func (l StringList) Encode() string {
	b, err := json.Marshal([]string(l.Normalize()))
	if err != nil {
		return "[]"
	}
	return string(b)
}

// JSON配列テキストから復元
func DecodeStringList(s string) (StringList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StringList{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("invalid encoded list: %w", err)
	}
	return StringList(out).Normalize(), nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Encode())
}

// "[\"a\"]" 形式の文字列と ["a"] 形式の配列のどちらも受け付ける
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return fmt.Errorf("invalid list: %w", err)
		}
		*l = StringList(arr).Normalize()
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("invalid list: %w", err)
	}
	decoded, err := DecodeStringList(encoded)
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

func (l StringList) Value() (driver.Value, error) {
	return l.Encode(), nil
}

func (l *StringList) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("unsupported list column type %T", src)
	}

	decoded, err := DecodeStringList(s)
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

func (StringList) GormDataType() string {
	return "text"
}
