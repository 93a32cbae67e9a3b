package domain

type MenuItem struct {
	ID          string
	Name        string
	Price       float64
	Rating      float64
	Description string
	Category    string
	Glyph       string
	Special     bool
}

// CatalogEntry is the admin-side view of a menu item with stock tracking.
type CatalogEntry struct {
	ID       string
	Name     string
	Category string
	Price    float64
	Stock    int
}

const (
	DefaultStock      = 20
	LowStockThreshold = 10
)

// LowStock is derived on every read, never stored.
func (e CatalogEntry) LowStock() bool {
	return e.Stock < LowStockThreshold
}

func SeedMenu() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Paneer Butter Masala Bowl",
			Price:       180,
			Rating:      4.8,
			Description: "Rich paneer in creamy tomato gravy with rice",
			Category:    "Mains",
			Glyph:       "🍛",
			Special:     true,
		},
		{
			ID:          "2",
			Name:        "Veggie Buddha Bowl",
			Price:       140,
			Rating:      4.6,
			Description: "Fresh seasonal vegetables with quinoa and tahini",
			Category:    "Healthy",
			Glyph:       "🥗",
		},
		{
			ID:          "3",
			Name:        "Aloo Tikki Burger Combo",
			Price:       160,
			Rating:      4.7,
			Description: "Crispy potato patty burger with masala fries",
			Category:    "Burgers",
			Glyph:       "🍔",
		},
		{
			ID:          "4",
			Name:        "Margherita Pizza Slice",
			Price:       120,
			Rating:      4.5,
			Description: "Fresh mozzarella, basil and tomato sauce",
			Category:    "Pizza",
			Glyph:       "🍕",
		},
		{
			ID:          "5",
			Name:        "Dal Makhani Thali",
			Price:       200,
			Rating:      4.9,
			Description: "Today's Special: Creamy dal with rice, roti & pickle",
			Category:    "Thali",
			Glyph:       "🍽️",
			Special:     true,
		},
		{
			ID:          "6",
			Name:        "Chole Bhature",
			Price:       100,
			Rating:      4.4,
			Description: "Today's Offer: Spicy chickpeas with fluffy bhature (50% OFF)",
			Category:    "Street Food",
			Glyph:       "🫓",
			Special:     true,
		},
	}
}

func SeedCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ID: "1", Name: "Paneer Butter Masala Bowl", Category: "Mains", Price: 180, Stock: 25},
		{ID: "2", Name: "Veggie Buddha Bowl", Category: "Healthy", Price: 140, Stock: 8},
		{ID: "3", Name: "Aloo Tikki Burger Combo", Category: "Burgers", Price: 160, Stock: 15},
		{ID: "4", Name: "Dal Makhani Thali", Category: "Thali", Price: 200, Stock: 12},
		{ID: "5", Name: "Chole Bhature", Category: "Street Food", Price: 100, Stock: 3},
		{ID: "6", Name: "Margherita Pizza", Category: "Pizza", Price: 120, Stock: 5},
	}
}
