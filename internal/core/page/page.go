// Package page is the offset/limit paging contract shared by repositories
// and services.
package page

import "math"

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Request is a zero-based page number plus page size.
type Request struct {
	Page int
	Size int
}

// Of builds a normalized request.
func Of(number, size int) Request {
	return Request{Page: number, Size: size}.Normalize()
}

// Normalize clamps negative pages to zero, out-of-range sizes to the
// defaults, and the page number so that Offset cannot overflow.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	if r.Page > math.MaxInt/r.Size {
		r.Page = math.MaxInt / r.Size
	}
	return r
}

func (r Request) Offset() int {
	n := r.Normalize()
	return n.Page * n.Size
}

func (r Request) Limit() int {
	return r.Normalize().Size
}

// Page is one slice of a larger ordered result.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// New wraps content fetched for req. total is the count of the whole result,
// independent of the page size.
func New[T any](content []T, req Request, total int64) Page[T] {
	req = req.Normalize()
	if content == nil {
		content = []T{}
	}
	pages := int((total + int64(req.Size) - 1) / int64(req.Size))
	return Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Map converts the content of p with fn, keeping the metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[R]{
		Content:       out,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
