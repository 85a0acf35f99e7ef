package deduction

import "errors"

var (
	ErrRateNotFound        = errors.New("deduction rate not found")
	ErrBracketNotFound     = errors.New("tax bracket not found")
	ErrBracketTableInvalid = errors.New("tax bracket table has gaps or overlapping ranges")
	ErrBracketTableEmpty   = errors.New("no active tax brackets configured")
)
