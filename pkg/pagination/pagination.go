package pagination

// Page is the envelope every list endpoint returns. TotalCount is the
// unpaginated filtered count; Data is the paginated slice.
type Page[T any] struct {
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	Data       []T   `json:"data"`
}

const (
	DefaultPageIndex = 1
	DefaultPageSize  = 10
	MaxPageSize      = 10
)

// Normalize clamps caller-supplied page parameters: index defaults to 1,
// size is clamped into [1, MaxPageSize] with 0 meaning the default.
func Normalize(pageIndex, pageSize int) (int, int) {
	if pageIndex < 1 {
		pageIndex = DefaultPageIndex
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageIndex, pageSize
}

func NewPage[T any](pageIndex, pageSize int, total int64, data []T) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{PageIndex: pageIndex, PageSize: pageSize, TotalCount: total, Data: data}
}
