// ABOUTME: Reader turns a raw byte stream into a blocking sequence of Keys
// ABOUTME: Buffers escape sequences and resolves lone ESC via a short timeout

package key

import (
	"io"
	"time"
	"unicode/utf8"
)

const (
	readBufSize = 256
	escTimeout  = 50 * time.Millisecond
)

// Reader decodes keys from an io.Reader. Reads are demand-driven: the
// background goroutine touches the underlying reader only while a ReadKey
// call is waiting, so a child process handed the same terminal (the editor
// prompt does this) never competes for input bytes.
type Reader struct {
	data    chan readResult
	req     chan struct{}
	buf     []byte
	err     error
	pending bool
}

type readResult struct {
	data []byte
	err  error
}

// NewReader starts the read goroutine over r and returns a Reader ready for
// ReadKey.
func NewReader(r io.Reader) *Reader {
	kr := &Reader{
		data: make(chan readResult),
		req:  make(chan struct{}),
		buf:  make([]byte, 0, readBufSize),
	}
	go kr.readLoop(r)
	return kr
}

// readLoop performs one blocking read per request and forwards the result.
func (kr *Reader) readLoop(r io.Reader) {
	defer close(kr.data)
	tmp := make([]byte, readBufSize)
	for range kr.req {
		n, err := r.Read(tmp)
		var res readResult
		if n > 0 {
			res.data = make([]byte, n)
			copy(res.data, tmp[:n])
		}
		res.err = err
		kr.data <- res
		if err != nil {
			return
		}
	}
}

// request asks the read goroutine for more bytes unless a read is already
// outstanding.
func (kr *Reader) request() {
	if kr.pending || kr.err != nil {
		return
	}
	kr.req <- struct{}{}
	kr.pending = true
}

// receive consumes one read result, appending any bytes to the buffer.
func (kr *Reader) receive(res readResult, ok bool) {
	kr.pending = false
	if !ok {
		kr.err = io.EOF
		return
	}
	if len(res.data) > 0 {
		kr.buf = append(kr.buf, res.data...)
	}
	if res.err != nil {
		kr.err = res.err
	}
}

// ReadKey blocks until one complete key event is available. After the
// underlying reader fails, buffered bytes drain first and the error is
// returned once the buffer is empty.
func (kr *Reader) ReadKey() (Key, error) {
	for {
		if len(kr.buf) > 0 {
			consumed, k, needsWait := kr.tryParse()
			if needsWait {
				if kr.err == nil && kr.waitForMore() {
					continue
				}
				// Nothing more is coming. A stalled ESC pair resolves as
				// Alt+rune, a lone ESC stands alone, and a stalled partial
				// rune is dropped byte by byte.
				if kr.buf[0] == 0x1b {
					if len(kr.buf) >= 2 {
						if k := Parse(string(kr.buf[:2])); k.Type != Unknown {
							kr.buf = kr.buf[2:]
							return k, nil
						}
					}
					kr.buf = kr.buf[1:]
					return Key{Type: Escape}, nil
				}
				kr.buf = kr.buf[1:]
				continue
			}
			kr.buf = kr.buf[consumed:]
			if k.Type == Unknown {
				continue
			}
			return k, nil
		}
		if kr.err != nil {
			return Key{Type: Unknown}, kr.err
		}
		kr.request()
		res, ok := <-kr.data
		kr.receive(res, ok)
	}
}

// tryParse attempts to parse one key from the front of the buffer.
// Returns (consumed bytes, parsed key, needs-wait flag).
func (kr *Reader) tryParse() (int, Key, bool) {
	if kr.buf[0] == 0x1b {
		if len(kr.buf) == 1 {
			return 0, Key{}, true
		}
		return kr.parseEscapeFromBuf()
	}

	if !utf8.FullRune(kr.buf) {
		if len(kr.buf) < utf8.UTFMax && kr.err == nil {
			return 0, Key{}, true
		}
		return 1, Key{Type: Unknown}, false
	}

	r, size := utf8.DecodeRune(kr.buf)
	if r == utf8.RuneError {
		return 1, Key{Type: Unknown}, false
	}
	return size, Parse(string(kr.buf[:size])), false
}

// Bracketed-paste markers. The markers themselves are swallowed; the pasted
// bytes between them decode as ordinary rune keys.
const (
	pasteStart = "\x1b[200~"
	pasteEnd   = "\x1b[201~"
)

// parseEscapeFromBuf matches the longest known escape sequence at the front
// of the buffer. Requires len(buf) >= 2.
func (kr *Reader) parseEscapeFromBuf() (int, Key, bool) {
	if s := string(kr.buf[:min(len(kr.buf), len(pasteStart))]); s == pasteStart || s == pasteEnd {
		return len(pasteStart), Key{Type: Unknown}, false
	}

	maxLen := min(len(kr.buf), 8)
	for end := maxLen; end >= 3; end-- {
		k := Parse(string(kr.buf[:end]))
		if k.Type != Unknown {
			return end, k, false
		}
	}

	// ESC [ and ESC O open CSI/SS3 sequences and are never Alt+rune, so an
	// unmatched prefix waits for the rest while more bytes may arrive.
	// A read split mid-sequence must not decode the opener on its own.
	if kr.buf[1] == '[' || kr.buf[1] == 'O' {
		if len(kr.buf) <= 6 && kr.err == nil {
			return 0, Key{}, true
		}
		// Draining with only the opener left: decode it as Alt+rune,
		// matching the timeout resolution.
		if len(kr.buf) == 2 {
			return 2, Parse(string(kr.buf[:2])), false
		}
		// Overlong or drained unknown sequence: consume the ESC and
		// reparse the remainder.
		return 1, Key{Type: Escape}, false
	}

	// Two-byte ESC pair: Alt+rune.
	if k := Parse(string(kr.buf[:2])); k.Type != Unknown {
		return 2, k, false
	}
	return 1, Key{Type: Escape}, false
}

// waitForMore blocks briefly for more bytes to complete an escape sequence.
// Returns false once the timeout elapses with nothing read.
func (kr *Reader) waitForMore() bool {
	kr.request()
	timer := time.NewTimer(escTimeout)
	defer timer.Stop()

	select {
	case res, ok := <-kr.data:
		kr.receive(res, ok)
		return true
	case <-timer.C:
		return false
	}
}
