package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent identical read requests. The balance client refetches the whole
// project after every mutation, so several tabs polling the same project can
// issue the same load at once; a centralized singleflight.Group ensures only
// one database load runs per key while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// ProjectGroup deduplicates full-project loads keyed by project public id.
var ProjectGroup singleflight.Group

// ListGroup deduplicates project listing loads (single "list" key).
var ListGroup singleflight.Group
