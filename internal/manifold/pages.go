package manifold

import "context"

// collectPages drains a cursor-paginated listing. fetch produces one page of
// results starting after the given cursor (empty for the first page); lastID
// extracts the cursor from the final item of a page. The sequence ends when a
// page comes back shorter than pageSize, including empty.
func collectPages[T any](
	ctx context.Context,
	pageSize int,
	fetch func(ctx context.Context, before string) ([]T, error),
	lastID func(T) string,
) ([]T, error) {
	var (
		all    []T
		before string
	)

	for {
		page, err := fetch(ctx, before)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)

		if len(page) < pageSize {
			return all, nil
		}

		before = lastID(page[len(page)-1])
	}
}
