package storage

import "io"

// ProgressReader wraps an upload body and reports percentage estimates
// derived from bytes read over the declared total. Reported values are
// non-decreasing and capped at 99 while streaming; Complete reports the
// final 100 exactly once.
type ProgressReader struct {
	r        io.Reader
	total    int64
	read     int64
	last     int
	done     bool
	callback func(int)
}

func NewProgressReader(r io.Reader, total int64, callback func(int)) *ProgressReader {
	return &ProgressReader{r: r, total: total, last: -1, callback: callback}
}

func (p *ProgressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += int64(n)
		p.report()
	}
	return n, err
}

func (p *ProgressReader) report() {
	if p.callback == nil || p.total <= 0 {
		return
	}
	pct := int(p.read * 100 / p.total)
	if pct > 99 {
		pct = 99
	}
	if pct > p.last {
		p.last = pct
		p.callback(pct)
	}
}

// Complete reports 100. Safe to call more than once; only the first call
// reports.
func (p *ProgressReader) Complete() {
	if p.done || p.callback == nil {
		return
	}
	p.done = true
	p.last = 100
	p.callback(100)
}
