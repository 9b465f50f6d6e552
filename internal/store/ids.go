package store

import (
	"fmt"
	"strconv"
	"strings"
)

// idSequence mints ids of the form prefix + zero-padded counter ("P001")
type idSequence struct {
	prefix string
	next   int
}

func newIDSequence(prefix string) idSequence {
	return idSequence{prefix: prefix, next: 1}
}

func (s *idSequence) mint() string {
	id := fmt.Sprintf("%s%03d", s.prefix, s.next)
	s.next++
	return id
}

// seed moves the counter past the highest numeric id already in use.
// Ids that do not follow the pattern are ignored.
func (s *idSequence) seed(ids []string) {
	highest := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, s.prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	s.next = highest + 1
}
