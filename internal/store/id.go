package store

import (
	crand "crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Game ids are monotonic ULIDs over crypto/rand.
var (
	idEntropy   = ulid.Monotonic(crand.Reader, 0)
	idEntropyMu sync.Mutex
)

func NewID() string {
	idEntropyMu.Lock()
	defer idEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), idEntropy).String()
}
