package repositories

import "errors"

// ErrRecordNotFound - строка с указанным id отсутствует
var ErrRecordNotFound = errors.New("record not found")
