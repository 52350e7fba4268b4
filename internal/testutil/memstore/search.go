//go:build unit

package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pagination"
)

type Index struct {
	mu   sync.Mutex
	docs map[int64]search.Document

	SaveAllCalls int
}

func NewIndex() *Index {
	return &Index{docs: make(map[int64]search.Document)}
}

func (x *Index) Docs() map[int64]search.Document {
	x.mu.Lock()
	defer x.mu.Unlock()
	return maps.Clone(x.docs)
}

func (x *Index) ExistsByID(_ context.Context, id int64) (bool, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	_, ok := x.docs[id]
	return ok, nil
}

func (x *Index) Save(_ context.Context, doc search.Document) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.docs[doc.ID] = doc
	return nil
}

func (x *Index) SaveAll(_ context.Context, docs []search.Document) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.SaveAllCalls++
	for _, d := range docs {
		x.docs[d.ID] = d
	}
	return nil
}

func (x *Index) DeleteByID(_ context.Context, id int64) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.docs, id)
	return nil
}

func (x *Index) FindByID(_ context.Context, id int64) (*search.Document, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	d, ok := x.docs[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "search document not found")
	}
	return &d, nil
}

func (x *Index) find(match func(search.Document) bool) (*search.Document, error) {
	for _, d := range x.all() {
		if match(d) {
			return &d, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "search document not found")
}

func (x *Index) FindByReference(_ context.Context, reference string) (*search.Document, error) {
	return x.find(func(d search.Document) bool { return d.BookingReference == reference })
}

func (x *Index) FindByConfirmationNumber(_ context.Context, confirmationNumber string) (*search.Document, error) {
	return x.find(func(d search.Document) bool { return d.ConfirmationNumber == confirmationNumber })
}

func (x *Index) FullTextSearch(_ context.Context, text string, page pagination.Request) (pagination.Page[search.Document], error) {
	return pagination.Slice(search.RankByText(x.all(), text), page), nil
}

func (x *Index) Search(ctx context.Context, criteria search.Criteria, page pagination.Request) (pagination.Page[search.Document], error) {
	docs, _ := x.Scan(ctx, criteria)
	return pagination.Slice(docs, page), nil
}

func (x *Index) Scan(_ context.Context, criteria search.Criteria) ([]search.Document, error) {
	out := make([]search.Document, 0)
	for _, d := range x.all() {
		if criteria.Matches(d) {
			out = append(out, d)
		}
	}
	criteria.Order.Sort(out)
	return out, nil
}

func (x *Index) Count(_ context.Context) (int64, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return int64(len(x.docs)), nil
}

func (x *Index) all() []search.Document {
	x.mu.Lock()
	defer x.mu.Unlock()
	out := make([]search.Document, 0, len(x.docs))
	for _, id := range slices.Sorted(maps.Keys(x.docs)) {
		out = append(out, x.docs[id])
	}
	return out
}

// Hotels is a fixed hotel directory.
type Hotels map[int64]search.HotelInfo

func (h Hotels) Lookup(_ context.Context, ids []int64) (map[int64]search.HotelInfo, error) {
	out := make(map[int64]search.HotelInfo, len(ids))
	for _, id := range ids {
		if info, ok := h[id]; ok {
			out[id] = info
		}
	}
	return out, nil
}
