// Package searchstore keeps search documents in Redis: one JSON value per
// booking, a sorted set of ids, and hashes from reference and confirmation
// number to id. Filtering and ranking happen in process over the loaded set.
package searchstore

import (
	"context"
	"encoding/json"
	"strconv"

	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const mgetChunk = 500

type RedisIndex struct {
	rdb    redis.UniversalClient
	prefix string
	logger zerolog.Logger
}

var _ shared.SearchIndex = (*RedisIndex)(nil)

func NewRedisIndex(rdb redis.UniversalClient, keyPrefix string, logger zerolog.Logger) *RedisIndex {
	return &RedisIndex{
		rdb:    rdb,
		prefix: "{" + keyPrefix + ":search}",
		logger: logger.With().Str("component", "search_index").Logger(),
	}
}

// Keys share one hash tag so multi-key commands stay in a single cluster slot.
func (x *RedisIndex) docKey(id int64) string { return x.prefix + ":doc:" + strconv.FormatInt(id, 10) }
func (x *RedisIndex) idsKey() string         { return x.prefix + ":ids" }
func (x *RedisIndex) refKey() string         { return x.prefix + ":ref" }
func (x *RedisIndex) confKey() string        { return x.prefix + ":conf" }

func (x *RedisIndex) storeErr(msg string, err error) error {
	return infra.WrapRepoErr(x.logger, infra.KindStoreFailure, msg, err)
}

func (x *RedisIndex) ExistsByID(ctx context.Context, id int64) (bool, error) {
	n, err := x.rdb.Exists(ctx, x.docKey(id)).Result()
	if err != nil {
		return false, x.storeErr("failed to check search document", err)
	}
	return n > 0, nil
}

func (x *RedisIndex) queueSave(ctx context.Context, pipe redis.Pipeliner, doc search.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	pipe.Set(ctx, x.docKey(doc.ID), b, 0)
	pipe.ZAdd(ctx, x.idsKey(), redis.Z{Score: float64(doc.ID), Member: doc.ID})
	if doc.BookingReference != "" {
		pipe.HSet(ctx, x.refKey(), doc.BookingReference, doc.ID)
	}
	if doc.ConfirmationNumber != "" {
		pipe.HSet(ctx, x.confKey(), doc.ConfirmationNumber, doc.ID)
	}
	return nil
}

func (x *RedisIndex) Save(ctx context.Context, doc search.Document) error {
	return x.SaveAll(ctx, []search.Document{doc})
}

// SaveAll writes the batch in one MULTI/EXEC.
func (x *RedisIndex) SaveAll(ctx context.Context, docs []search.Document) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := x.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, d := range docs {
			if err := x.queueSave(ctx, pipe, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return x.storeErr("failed to save search documents", err)
	}
	return nil
}

func (x *RedisIndex) DeleteByID(ctx context.Context, id int64) error {
	doc, err := x.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	_, err = x.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, x.docKey(id))
		pipe.ZRem(ctx, x.idsKey(), id)
		pipe.HDel(ctx, x.refKey(), doc.BookingReference)
		pipe.HDel(ctx, x.confKey(), doc.ConfirmationNumber)
		return nil
	})
	if err != nil {
		return x.storeErr("failed to delete search document", err)
	}
	return nil
}

func (x *RedisIndex) FindByID(ctx context.Context, id int64) (*search.Document, error) {
	b, err := x.rdb.Get(ctx, x.docKey(id)).Bytes()
	if err == redis.Nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "search document not found")
	}
	if err != nil {
		return nil, x.storeErr("failed to load search document", err)
	}
	var doc search.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, x.storeErr("failed to decode search document", err)
	}
	return &doc, nil
}

func (x *RedisIndex) findVia(ctx context.Context, hashKey, field string) (*search.Document, error) {
	id, err := x.rdb.HGet(ctx, hashKey, field).Int64()
	if err == redis.Nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "search document not found")
	}
	if err != nil {
		return nil, x.storeErr("failed to resolve search document", err)
	}
	return x.FindByID(ctx, id)
}

func (x *RedisIndex) FindByReference(ctx context.Context, reference string) (*search.Document, error) {
	return x.findVia(ctx, x.refKey(), reference)
}

func (x *RedisIndex) FindByConfirmationNumber(ctx context.Context, confirmationNumber string) (*search.Document, error) {
	return x.findVia(ctx, x.confKey(), confirmationNumber)
}

func (x *RedisIndex) FullTextSearch(ctx context.Context, text string, page pagination.Request) (pagination.Page[search.Document], error) {
	all, err := x.loadAll(ctx)
	if err != nil {
		return pagination.Page[search.Document]{}, err
	}
	return pagination.Slice(search.RankByText(all, text), page), nil
}

func (x *RedisIndex) Search(ctx context.Context, criteria search.Criteria, page pagination.Request) (pagination.Page[search.Document], error) {
	docs, err := x.Scan(ctx, criteria)
	if err != nil {
		return pagination.Page[search.Document]{}, err
	}
	return pagination.Slice(docs, page), nil
}

func (x *RedisIndex) Scan(ctx context.Context, criteria search.Criteria) ([]search.Document, error) {
	all, err := x.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]search.Document, 0, len(all))
	for _, d := range all {
		if criteria.Matches(d) {
			out = append(out, d)
		}
	}
	criteria.Order.Sort(out)
	return out, nil
}

func (x *RedisIndex) Count(ctx context.Context) (int64, error) {
	n, err := x.rdb.ZCard(ctx, x.idsKey()).Result()
	if err != nil {
		return 0, x.storeErr("failed to count search documents", err)
	}
	return n, nil
}

// loadAll returns every document in id order. Ids whose value vanished between
// the range and the fetch are skipped.
func (x *RedisIndex) loadAll(ctx context.Context) ([]search.Document, error) {
	ids, err := x.rdb.ZRange(ctx, x.idsKey(), 0, -1).Result()
	if err != nil {
		return nil, x.storeErr("failed to list search documents", err)
	}

	docs := make([]search.Document, 0, len(ids))
	for start := 0; start < len(ids); start += mgetChunk {
		end := min(start+mgetChunk, len(ids))
		keys := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			n, err := strconv.ParseInt(id, 10, 64)
			if err != nil {
				x.logger.Warn().Str("member", id).Msg("skipping malformed search id")
				continue
			}
			keys = append(keys, x.docKey(n))
		}

		values, err := x.rdb.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, x.storeErr("failed to fetch search documents", err)
		}
		for i, v := range values {
			raw, ok := v.(string)
			if !ok {
				continue
			}
			var doc search.Document
			if err := json.Unmarshal([]byte(raw), &doc); err != nil {
				x.logger.Warn().Err(err).Str("key", keys[i]).Msg("skipping undecodable search document")
				continue
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}
