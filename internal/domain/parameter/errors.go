package parameter

import "errors"

var (
	ErrPensionFundNotFound   = errors.New("pension fund not found")
	ErrHealthInsurerNotFound = errors.New("health insurer not found")
	ErrUnknownEntityKind     = errors.New("unknown contribution entity kind")
	ErrParameterNotFound     = errors.New("configuration parameter not found")
)
