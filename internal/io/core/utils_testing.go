package core

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"io"
	"math/rand"
	"sort"
	"sync"
)

// ChannelReader hands out queued writes one at a time, so a single Read never spans two
// writes. It is used to feed code with arbitrarily sliced input.
type ChannelReader struct {
	buf  []mo.Result[[]byte]
	lock *sync.Mutex
	cond *sync.Cond
}

func NewChannelReader() *ChannelReader {
	mutex := sync.Mutex{}
	cond := sync.NewCond(&mutex)
	return &ChannelReader{lock: &mutex, cond: cond}
}

func (r *ChannelReader) Fail(err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.cond.Broadcast()

	r.buf = append(r.buf, mo.Err[[]byte](err))
}

func (r *ChannelReader) Write(p []byte) (n int, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.cond.Broadcast()

	r.buf = append(r.buf, mo.Ok(append([]byte{}, p...)))

	return len(p), nil
}

func (r *ChannelReader) WriteString(p string) {
	_, _ = r.Write([]byte(p))
}

func (r *ChannelReader) WriteInRandomChunks(p []byte) {
	for _, s := range RandomlySlice(p) {
		_, _ = r.Write(s)
	}
}

// RandomlySlice cuts p into consecutive non-empty pieces of random length.
func RandomlySlice(p []byte) [][]byte {
	if len(p) == 0 {
		return [][]byte{}
	} else if len(p) == 1 {
		return [][]byte{p}
	}

	var indices []int
	for i := 0; i < len(p)-1; i += rand.Intn(len(p)-i-1) + 1 {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	ranges := lo.Zip2(indices, append(append([]int{}, indices...), len(p))[1:])
	return lo.Map(ranges, func(pair lo.Tuple2[int, int], _ int) []byte {
		return p[pair.A:pair.B]
	})
}

func (r *ChannelReader) Read(p []byte) (n int, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for len(r.buf) == 0 {
		r.cond.Wait()
	}

	result := r.buf[0]
	buffer, e := result.Get()

	// a trailing EOF stays queued so every later Read sees it too
	if e != io.EOF {
		r.buf = r.buf[1:]
	}

	if e != nil {
		return 0, e
	}

	if len(buffer) > len(p) {
		rest := mo.Ok(buffer[len(p):])
		r.buf = append([]mo.Result[[]byte]{rest}, r.buf...)
	}

	return copy(p, buffer), nil
}

func (r *ChannelReader) IsEmpty() bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.buf) == 0
}

// ------------------------------------------------------------------------

// LimitedWriter accepts at most Limit bytes per Write and, like a misbehaving sink,
// reports the short count without an error.
type LimitedWriter struct {
	Limit   int
	Written []byte
}

func (w *LimitedWriter) Write(p []byte) (int, error) {
	n := min(len(p), w.Limit)
	w.Written = append(w.Written, p[:n]...)
	return n, nil
}

// FailingWriter fails every Write after the first Budget bytes.
type FailingWriter struct {
	Budget int
	Err    error
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	if len(p) > w.Budget {
		n := w.Budget
		w.Budget = 0
		return n, w.Err
	}
	w.Budget -= len(p)
	return len(p), nil
}
