package bolt

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

// OpenBoltDB opens (or creates) the embedded store file. The timeout bounds
// the wait for the file lock held by another process.
func OpenBoltDB(path string) (*bolt.DB, error) {
	return bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
}
