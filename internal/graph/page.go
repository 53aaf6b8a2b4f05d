package graph

import "context"

// Page is one page of a cursor-paginated Graph collection. NextLink is the
// opaque cursor for the following page; an empty NextLink marks the end of
// the collection.
type Page[T any] struct {
	Items    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// FetchFunc produces the initial page of a collection.
type FetchFunc[T any] func(ctx context.Context) (Page[T], error)

// FetchNextFunc produces the page identified by a cursor from a prior page.
type FetchNextFunc[T any] func(ctx context.Context, nextLink string) (Page[T], error)

// Drain follows a collection's cursor chain and concatenates all page items
// in page order. A limit > 0 stops draining once at least limit items have
// accumulated and truncates the result to exactly limit items; the last
// drained page may overshoot the boundary since page size does not align
// with the limit. Looping continues strictly on cursor presence, never on
// item count, so a sparse page with zero items and a live cursor does not
// terminate the drain.
//
// Any page fetch failure propagates immediately and partial pages are
// discarded; per-item tolerance is a concern of the aggregation layer, not
// of single-collection drains.
func Drain[T any](ctx context.Context, limit int, first FetchFunc[T], next FetchNextFunc[T]) ([]T, error) {
	page, err := first(ctx)
	if err != nil {
		return nil, err
	}

	items := append([]T(nil), page.Items...)
	for page.NextLink != "" && (limit <= 0 || len(items) < limit) {
		page, err = next(ctx, page.NextLink)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
