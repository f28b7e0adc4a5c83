package utils

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrProvinceNotFound  = errors.New("province not found")
	ErrDuplicateProvince = errors.New("province already exists")
	ErrDuplicateTenun    = errors.New("tenun already exists in this province")
	ErrDuplicateSlug     = errors.New("slug already in use")
	ErrInvalidGender     = errors.New("gender must be MEN, WOMEN or UNISEX")
	ErrDatabaseError     = errors.New("database error")
)
