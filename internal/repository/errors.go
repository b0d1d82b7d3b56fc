package repository

import "errors"

// ErrNotFound is returned in place of gorm.ErrRecordNotFound so callers do
// not depend on gorm.
var ErrNotFound = errors.New("record not found")
