package store

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NextID returns a millisecond timestamp followed by nine random base36 characters.
// Collisions are possible in theory and not handled.
func NextID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}
