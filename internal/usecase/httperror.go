package usecase

import (
	"errors"
	"fmt"

	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ValidationError はフィールド別メッセージを運ぶ（422で返す）。
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fieldErrors map[string]string) error {
	return &ValidationError{Errors: fieldErrors}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// リクエスト構造体のタグ検証の約束（internal/validatorが実装）
type StructValidator interface {
	Struct(s interface{}) map[string]string
}

// ページング付き一覧のレスポンス
type ListMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

type PageResponse struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}

const (
	defaultPerPage       = 15
	defaultNestedPerPage = 10
)

// repoと同じ正規化をしてmetaの値を揃える
func normalizePagination(p *repo.Pagination, perPageDefault int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = perPageDefault
	}
}

func newListMeta(p repo.Pagination, total int64) ListMeta {
	lastPage := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return ListMeta{
		CurrentPage: p.Page,
		LastPage:    lastPage,
		PerPage:     p.PerPage,
		Total:       total,
	}
}
