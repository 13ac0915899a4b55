// Package localdb provides the key-value persistence backend for the store:
// one serialized value per logical key, scoped to a single local profile
// directory. It is deliberately not a database; tables are rewritten whole on
// every mutation.
package localdb

// Backend reads and writes one opaque string value per key. The second return
// of Get reports whether the key exists at all, which callers need to tell
// "never written" apart from "written empty".
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
