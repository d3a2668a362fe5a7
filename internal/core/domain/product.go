package domain

import "time"

const (
	ProductsCollection = "products"
	UsersCollection    = "users"
)

type (
	// A Product is the canonical catalog product served to the storefront.
	Product struct {
		ID           string
		Name         string
		Slug         string
		Description  string
		BasePrice    int64
		Stock        int
		CategoryID   string
		CategoryName string
		Images       []ProductImage
		Featured     bool
		Available    bool
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	ProductImage struct {
		ID    string
		URL   string
		Alt   string
		Order int
	}
)

// Thumbnail returns the representative image: the one with order index 0,
// otherwise the first present image.
func (p Product) Thumbnail() (ProductImage, bool) {
	for _, img := range p.Images {
		if img.Order == 0 {
			return img, true
		}
	}
	if len(p.Images) == 0 {
		return ProductImage{}, false
	}
	return p.Images[0], true
}

var (
	minTimestampSeconds = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxTimestampSeconds = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// A Timestamp is a stored point in time as the storage layer hands it over.
//
// Valid is false when the field is absent. A Timestamp with Nanos outside
// [0, 1e9) or Seconds outside years 1..9999 cannot be converted.
type Timestamp struct {
	Seconds int64
	Nanos   int32
	Valid   bool
}

// NewTimestamp makes a valid [Timestamp] from t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Seconds: t.Unix(),
		Nanos:   int32(t.Nanosecond()),
		Valid:   true,
	}
}

// ToTime converts the timestamp to a concrete time.
func (ts Timestamp) ToTime() (time.Time, bool) {
	if !ts.Valid || ts.Nanos < 0 || ts.Nanos >= 1e9 {
		return time.Time{}, false
	}
	if ts.Seconds < minTimestampSeconds || ts.Seconds > maxTimestampSeconds {
		return time.Time{}, false
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC(), true
}

// A ProductRecord is a product exactly as read from storage,
// before normalization.
type ProductRecord struct {
	ID           string
	Name         string
	Slug         string
	Description  string
	BasePrice    int64
	Stock        int
	CategoryID   string
	CategoryName *string
	Images       []ProductImage
	Featured     bool
	Available    bool
	CreatedAt    Timestamp
	UpdatedAt    Timestamp
}
