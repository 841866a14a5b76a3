package blocks

import "errors"

var (
	ErrTemplateAlreadyExists = errors.New("template already exists")
	ErrUnknownTemplate       = errors.New("unknown template")
	ErrInvalidTemplate       = errors.New("invalid template definition")
)
