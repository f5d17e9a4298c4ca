package collector

import (
	"errors"

	"SteamSentinel/internal/model"
)

// Fetcher delivers one snapshot of the upstream analysis data: the decoded
// records plus the raw payload for verbatim backup.
type Fetcher interface {
	Fetch() (records []model.IndexRecord, raw []byte, err error)
	Name() string
}

// Failure classes for one collection cycle. The scheduler logs and retries
// per class instead of treating every failure the same way.
var (
	ErrFetch  = errors.New("fetch failed")
	ErrParse  = errors.New("parse failed")
	ErrNoData = errors.New("no data for category")
)
