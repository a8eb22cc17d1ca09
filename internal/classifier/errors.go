package classifier

import "errors"

var (
	ErrUnknownLanguage = errors.New("unknown classifier language")
	ErrEmptyKeywordSet = errors.New("classifier keyword set is empty")
)
