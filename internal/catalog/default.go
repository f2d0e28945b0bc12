package catalog

import "github.com/giftai/giftai/internal/model"

// defaultItems is the built-in gift catalog used when no external catalog
// source is configured.
var defaultItems = []model.CatalogItem{
	{
		ID:              "yoga_set",
		Name:            "Premium Yoga Starter Set",
		Category:        "wellness",
		BasePrice:       4500,
		Tags:            []string{"sport", "yoga", "health", "me-time", "wellness"},
		BaseDescription: "A comfortable set with a yoga mat, block, and non-slip socks.",
	},
	{
		ID:              "vinyl_player",
		Name:            "Retro Turntable and Vinyl Set",
		Category:        "music",
		BasePrice:       5500,
		Tags:            []string{"music", "retro", "decor", "home"},
		BaseDescription: "A vintage-styled turntable with starter records in a favorite genre.",
	},
	{
		ID:              "photo_album",
		Name:            "Personalized Photo Album",
		Category:        "memory",
		BasePrice:       900,
		Tags:            []string{"photo", "memories", "personalizable", "romantic"},
		BaseDescription: "An elegant album ready to be filled with photos you took together.",
	},
	{
		ID:              "spa_day",
		Name:            "Couples Spa and Massage Day",
		Category:        "experience",
		BasePrice:       3200,
		Tags:            []string{"experience", "romantic", "relaxation", "spa"},
		BaseDescription: "A relaxing experience with spa entry, sauna, and a couples massage.",
	},
	{
		ID:              "kindle",
		Name:            "Kindle Paperwhite E-Reader",
		Category:        "tech",
		BasePrice:       6500,
		Tags:            []string{"books", "tech", "reading", "travel"},
		BaseDescription: "A bookworm's gift: dozens of books carried on a single device.",
	},
	{
		ID:              "airpods",
		Name:            "Apple AirPods Earbuds",
		Category:        "tech",
		BasePrice:       7500,
		Tags:            []string{"music", "tech", "everyday", "apple"},
		BaseDescription: "Comfortable wireless earbuds for everyday listening.",
	},
	{
		ID:              "coffee_set",
		Name:            "Third-Wave Coffee Experience Set",
		Category:        "coffee",
		BasePrice:       1800,
		Tags:            []string{"coffee", "gourmet", "home", "hobby"},
		BaseDescription: "Specialty single-origin beans with pour-over brewing equipment.",
	},
	{
		ID:              "polaroid",
		Name:            "Instax Mini Instant Camera",
		Category:        "photo",
		BasePrice:       3500,
		Tags:            []string{"photo", "memories", "fun", "friends"},
		BaseDescription: "A playful camera that turns moments into instant prints.",
	},
	{
		ID:              "corporate_box",
		Name:            "Premium Office Gift Box",
		Category:        "corporate",
		BasePrice:       1500,
		Tags:            []string{"corporate", "office", "neutral", "elegant"},
		BaseDescription: "A tasteful box with a planner, metal pen, and coffee mug.",
	},
	{
		ID:              "smart_mug",
		Name:            "Smart Temperature-Control Mug",
		Category:        "tech",
		BasePrice:       2100,
		Tags:            []string{"office", "tech", "coffee", "gift"},
		BaseDescription: "A smart mug that keeps drinks at a steady temperature for hours.",
	},
}

// Default returns a Store backed by the built-in catalog.
func Default() *Store {
	store, err := NewStore(defaultItems)
	if err != nil {
		// The built-in catalog is validated by tests; this cannot happen
		// at runtime.
		panic(err)
	}
	return store
}
