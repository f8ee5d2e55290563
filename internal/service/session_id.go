package service

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewSessionID returns a random UUID, falling back to a base36
// timestamp plus random suffix when the system entropy source fails
func NewSessionID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return fallbackSessionID(time.Now())
}

func fallbackSessionID(now time.Time) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	for i := 0; i < 8; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}
