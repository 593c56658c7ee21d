package domain

import "time"

// Token describes an issued access token. The signed string itself is the
// credential; this struct carries the metadata surfaced alongside it.
type Token struct {
	SubjectID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
