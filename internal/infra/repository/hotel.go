package repository

import (
	"context"
	"slices"

	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/infra"

	"github.com/rs/zerolog"
)

// HotelDirectory reads hotel names and locations for search documents.
type HotelDirectory struct {
	db     DBTX
	logger zerolog.Logger
}

func NewHotelDirectory(db DBTX, logger zerolog.Logger) *HotelDirectory {
	return &HotelDirectory{db: db, logger: logger}
}

func (h *HotelDirectory) Lookup(ctx context.Context, ids []int64) (map[int64]search.HotelInfo, error) {
	unique := slices.Compact(slices.Sorted(slices.Values(ids)))
	out := make(map[int64]search.HotelInfo, len(unique))
	if len(unique) == 0 {
		return out, nil
	}

	rows, err := h.db.Query(ctx, `SELECT id, name, city, country FROM hotels WHERE id = ANY($1)`, unique)
	if err != nil {
		return nil, infra.WrapRepoErr(h.logger, infra.KindDBFailure, "failed to look up hotels", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			info search.HotelInfo
		)
		if err := rows.Scan(&id, &info.Name, &info.City, &info.Country); err != nil {
			return nil, infra.WrapRepoErr(h.logger, infra.KindDBFailure, "failed to scan hotel", err)
		}
		out[id] = info
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(h.logger, infra.KindDBFailure, "failed to read hotels", err)
	}
	return out, nil
}
