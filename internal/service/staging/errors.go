package staging

import "errors"

var (
	ErrInvalidInput   = errors.New("service staging: invalid input")
	ErrInternal       = errors.New("service staging: internal error")
	ErrSnapshotFailed = errors.New("service staging: snapshot fetch failed")
)
