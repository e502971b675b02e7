package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type structValidator struct {
	v *validator.Validate
}

// Usecaseは interface を依存注入
func New() usecase.Validator {
	return &structValidator{v: NewValidate()}
}

// 共通設定済みの validator.Validate（configの検証でも使う）
func NewValidate() *validator.Validate {
	v := validator.New()

	//エラーの項目名はJSONのキーにする
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	//decimalは数値として比較する
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("decimals2", hasAtMostTwoDecimals)

	return v
}

// 小数点以下2桁まで
func hasAtMostTwoDecimals(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(fl.Field().Float()).Exponent() >= -2
	case reflect.String:
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.Exponent() >= -2
	default:
		return true
	}
}

// 入力を検証する。失敗は400のHTTPErrorで返す
func (s *structValidator) Validate(in any) error {
	err := s.v.Struct(in)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	return usecase.NewValidationError(Messages(ves))
}

// 項目ごとのメッセージに変換
func Messages(ves validator.ValidationErrors) []string {
	out := make([]string, 0, len(ves))
	for _, fe := range ves {
		out = append(out, fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "decimals2":
		return field + " must have at most 2 decimal places"
	case "url":
		return field + " must be a valid URL"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}

// 先頭の構造体名を外した項目名（ingredientIds[0] など）
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
