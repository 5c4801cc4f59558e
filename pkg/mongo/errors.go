package mongo

import "errors"

var (
	ErrConnect           = errors.New("mongo: failed to connect")
	ErrHealthcheckFailed = errors.New("mongo: healthcheck failed")
	ErrReplaceCollection = errors.New("mongo: failed to replace collection")
)
