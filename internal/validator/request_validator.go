package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator はリクエスト構造体のタグ検証をまとめる。
// 戻り値は field名 -> メッセージ のmap（問題なければnil）。
type RequestValidator struct {
	v *validator.Validate
}

func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// エラーのフィールド名はjsonタグに合わせる
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Struct(s interface{}) map[string]string {
	err := rv.v.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": "invalid request"}
	}

	return formatErrors(errs)
}

func formatErrors(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			messages[field] = fmt.Sprintf("The %s field is required.", field)
		case "email":
			messages[field] = fmt.Sprintf("The %s field must be a valid email address.", field)
		case "min":
			messages[field] = fmt.Sprintf("The %s field must be at least %s.", field, err.Param())
		case "max":
			messages[field] = fmt.Sprintf("The %s field may not be greater than %s.", field, err.Param())
		case "oneof":
			messages[field] = fmt.Sprintf("The %s field must be one of: %s.", field, err.Param())
		case "gte":
			messages[field] = fmt.Sprintf("The %s field must be at least %s.", field, err.Param())
		case "lte":
			messages[field] = fmt.Sprintf("The %s field may not be greater than %s.", field, err.Param())
		case "eqfield":
			messages[field] = fmt.Sprintf("The %s field confirmation does not match.", field)
		default:
			messages[field] = fmt.Sprintf("The %s field is invalid.", field)
		}
	}
	return messages
}
