package service

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/rupiah"
)

const (
	DefaultCategoryLabel = "Fashion"
	PlaceholderImage     = "/placeholder-product.jpg"
)

var newCollectionFallback = [...]domain.DisplayItem{
	{
		Name:     "Salsabila Aurora Dress",
		Price:    "Rp750.000",
		Category: "Wedding",
		Image:    "/images/koleksi_terbaru1.jpg",
		Alt:      "Salsabila Aurora Dress",
		Rating:   "4.5/5",
	},
	{
		Name:     "Nayla Voyage Set",
		Price:    "Rp520.000",
		Category: "Formal",
		Image:    "/images/koleksi_terbaru2.jpg",
		Alt:      "Nayla Voyage Set",
		Rating:   "4.8/5",
	},
	{
		Name:     "Aluna Breeze Tunic",
		Price:    "Rp590.000",
		Category: "Casual",
		Image:    "/images/koleksi_terbaru3.jpg",
		Alt:      "Aluna Breeze Tunic",
		Rating:   "4.6/5",
	},
}

var productsFallback = [...]domain.DisplayItem{
	{
		Name:     "Kalila Bloom Set",
		Price:    "Rp680.000",
		Category: "Traditional",
		Image:    "/images/produk_kami1.jpeg",
		Alt:      "Kalila Bloom Set",
	},
	{
		Name:     "Abaya Nayyara Luxe",
		Price:    "Rp740.000",
		Category: "Formal",
		Image:    "/images/produk_kami2.jpeg",
		Alt:      "Abaya Nayyara Luxe",
	},
	{
		Name:     "Nadira Ethnica Kebaya",
		Price:    "Rp890.000",
		Category: "Wedding",
		Image:    "/images/produk_kami3.jpeg",
		Alt:      "Nadira Ethnica Kebaya",
	},
	{
		Name:     "Purple Robe",
		Price:    "Rp560.000",
		Category: "Casual",
		Image:    "/images/produk_kami4.jpeg",
		Alt:      "Purple Robe",
	},
	{
		Name:     "Plain Dress",
		Price:    "Rp720.000",
		Category: "Semi Formal",
		Image:    "/images/produk_kami5.jpeg",
		Alt:      "Plain Dress",
	},
	{
		Name:     "Batik Tunic",
		Price:    "Rp630.000",
		Category: "Batik",
		Image:    "/images/produk_kami6.jpeg",
		Alt:      "Batik Tunic",
	},
}

var showcase = [...]domain.ShowcaseItem{
	{
		Title:       "Dress",
		Description: "An elegant dress with a modern cut, perfect for both formal and casual occasions.",
		Image:       "/images/pakaian_desainer1.jpg",
	},
	{
		Title:       "Accessories",
		Description: "Unique accessories to complete your style, from bags to luxurious jewelry.",
		Image:       "/images/pakaian_desainer2.jpg",
	},
	{
		Title:       "Outerwear",
		Description: "A stylish outerwear collection designed to provide the perfect finishing touch.",
		Image:       "/images/pakaian_desainer3.jpg",
	},
}

// NewCollectionFallback returns a copy of the static "new collection" items.
func NewCollectionFallback() []domain.DisplayItem {
	items := newCollectionFallback
	return items[:]
}

// ProductsFallback returns a copy of the static "our products" items.
func ProductsFallback() []domain.DisplayItem {
	items := productsFallback
	return items[:]
}

// Showcase returns a copy of the designer outfits showcase.
func Showcase() []domain.ShowcaseItem {
	items := showcase
	return items[:]
}

// SelectDisplaySet picks what a grid renders: the live products when there
// are any, otherwise the fallback items unchanged. The two are never mixed.
func SelectDisplaySet(
	live []domain.Product, fallback []domain.DisplayItem,
) domain.DisplaySet {
	if len(live) == 0 {
		return domain.DisplaySet{
			Source: domain.SourceFallback,
			Items:  fallback,
		}
	}

	items := make([]domain.DisplayItem, len(live))
	for i, p := range live {
		items[i] = ToDisplayItem(p)
	}
	return domain.DisplaySet{
		Source:   domain.SourceLive,
		Items:    items,
		Products: live,
	}
}

// ToDisplayItem renders a live product as a grid card.
func ToDisplayItem(p domain.Product) domain.DisplayItem {
	item := domain.DisplayItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    rupiah.FormatInt(p.BasePrice),
		Category: p.CategoryName,
		Image:    PlaceholderImage,
		Alt:      p.Name,
		Link:     "/products/" + p.Slug,
	}
	if item.Category == "" {
		item.Category = DefaultCategoryLabel
	}

	if img, ok := p.Thumbnail(); ok {
		if img.URL != "" {
			item.Image = img.URL
		}
		if img.Alt != "" {
			item.Alt = img.Alt
		}
	}
	return item
}
