package repository

import "errors"

// 見つからないを統一
var ErrNotFound = errors.New("not found")

// 一覧系で共通のページング・ソート指定
type Pagination struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}
