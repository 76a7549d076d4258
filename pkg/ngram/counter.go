/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: counter.go
Description: Streaming byte n-gram counter for Akaylee ArchRec. Reads a
byte stream in bounded chunks and accumulates raw bigram and trigram
counts, carrying context across chunk boundaries so that n-grams
straddling a read boundary are counted exactly once.
*/

package ngram

import (
	"fmt"
	"io"
)

// countBufSize is the read buffer size for streaming counts. Any bounded
// buffer works; n-grams spanning buffer boundaries are carried over.
const countBufSize = 64 * 1024

// maxEmptyReads bounds consecutive (0, nil) reads before the counter
// gives up on a stuck reader, same guard as bufio.
const maxEmptyReads = 100

// CountReader streams r to completion and accumulates raw bigram and
// trigram counts into the model's tables. Inputs shorter than two bytes
// contribute no bigram counts, inputs shorter than three bytes no
// trigram counts; empty input is valid and leaves the tables untouched.
func (m *Model) CountReader(r io.Reader) error {
	buf := make([]byte, countBufSize)

	var prev1, prev2 byte
	seen := 0  // bytes of context available, saturates at 2
	empty := 0 // consecutive reads with no data and no error

	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			b := buf[i]
			if seen >= 1 {
				m.Bigram[int(prev1)<<8|int(b)]++
			}
			if seen == 2 {
				m.Trigram[int(prev2)<<16|int(prev1)<<8|int(b)]++
			}
			prev2, prev1 = prev1, b
			if seen < 2 {
				seen++
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read failed while counting n-grams: %w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxEmptyReads {
			return fmt.Errorf("read failed while counting n-grams: %w", io.ErrNoProgress)
		}
	}
}
