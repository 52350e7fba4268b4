package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Request is a zero-based page request.
type Request struct {
	Number int `json:"page"`
	Size   int `json:"size"`
}

func NewRequest(number, size int) Request {
	return Request{Number: number, Size: size}.Normalize()
}

// Normalize clamps the request into the supported range.
func (r Request) Normalize() Request {
	if r.Number < 0 {
		r.Number = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	return r
}

func (r Request) Offset() int {
	return r.Number * r.Size
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	HasNext    bool  `json:"hasNext"`
}

// NewPage derives HasNext from the total item count.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Number:     req.Number,
		Size:       req.Size,
		TotalItems: total,
		HasNext:    int64(req.Offset()+len(items)) < total,
	}
}

// Len is the number of elements on this page.
func (p Page[T]) Len() int {
	return len(p.Items)
}

// Slice pages through an in-memory, already ordered result set.
func Slice[T any](all []T, req Request) Page[T] {
	start := req.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + req.Size
	if end > len(all) {
		end = len(all)
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return NewPage(items, req, int64(len(all)))
}
