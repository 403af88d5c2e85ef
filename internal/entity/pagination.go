package entity

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// Paginate returns the window of items selected by pg. A nil pg returns items unchanged.
func Paginate[T any](items []T, pg *PaginationInput) []T {
	if pg == nil {
		return items
	}

	start := min(max(pg.Offset, 0), len(items))
	end := len(items)
	if pg.Limit > 0 {
		end = min(start+pg.Limit, len(items))
	}

	return items[start:end]
}
