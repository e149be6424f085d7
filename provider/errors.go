package provider

import "errors"

var ErrNoSources = errors.New("no rate sources configured")
