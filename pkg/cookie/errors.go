package cookie

import "errors"

var (
	ErrInvalidName     = errors.New("cookie.invalid_name")
	ErrInvalidCookie   = errors.New("cookie.invalid_cookie")
	ErrNilHeader       = errors.New("cookie.nil_header")
	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
)
