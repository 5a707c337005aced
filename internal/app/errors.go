package app

import "github.com/pkg/errors"

var errMalformedOverride = errors.New("override must be key=value")
