package usecase

import (
	"fmt"
	"sync/atomic"
	"time"
)

type sequenceIDGen struct {
	n atomic.Int64
}

func (g *sequenceIDGen) NewID() (string, error) {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", g.n.Add(1)), nil
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
