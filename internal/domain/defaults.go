package domain

// Seed data used whenever a stored collection is absent or unreadable.

func DefaultAdmins() []Admin {
	return []Admin{
		{Name: "Store Manager", Email: "Mohamedihsas001@gmail.com", Password: "admin123", Phone: "0763913526"},
		{Name: "Admin One", Email: "admin@srshopping.com", Password: "admin123", Phone: "0760000001"},
		{Name: "Owner", Email: "owner@srshopping.com", Password: "admin123", Phone: "0760000002"},
	}
}

func DefaultCategories() []Category {
	return []Category{
		{
			Name:        "Home items",
			Image:       "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?auto=format&fit=crop&w=900&q=80",
			Description: "Storage, decor, daily essentials for every room.",
		},
		{
			Name:        "Kitchen items",
			Image:       "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=900&q=80",
			Description: "Cookware, utensils, organizers, meal prep tools.",
		},
		{
			Name:        "Living room items",
			Image:       "https://images.unsplash.com/photo-1484100356142-db6ab6244067?auto=format&fit=crop&w=900&q=80",
			Description: "Cushions, throws, lamps, and tidy-up solutions.",
		},
		{
			Name:        "Dresses & fashion",
			Image:       "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=900&q=80",
			Description: "Everyday outfits, workwear, and weekend picks.",
		},
		{
			Name:        "Bathroom items",
			Image:       "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?auto=format&fit=crop&w=900&q=80",
			Description: "Towels, organizers, and fresh-scent essentials.",
		},
		{
			Name:        "Study & school items",
			Image:       "https://images.unsplash.com/photo-1463320898484-cdee8141c787?auto=format&fit=crop&w=900&q=80",
			Description: "Stationery, backpacks, and tech accessories.",
		},
		{
			Name:        "Shoes",
			Image:       "https://images.unsplash.com/photo-1514996937319-344454492b37?auto=format&fit=crop&w=900&q=80",
			Description: "Comfort-first sneakers, sandals, and formal wear.",
		},
		{
			Name:        "Children items",
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=900&q=80",
			Description: "Toys, apparel, and school-ready essentials.",
		},
		{
			Name:        "Beauty & cream products",
			Image:       "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80",
			Description: "Skin care, creams, and self-care kits.",
		},
		{
			Name:        "Perfumes & scents",
			Image:       "https://images.unsplash.com/photo-1506617420156-8e4536971650?auto=format&fit=crop&w=900&q=80",
			Description: "Signature fragrances and deodorants.",
		},
		{
			Name:        "Electrical items",
			Image:       "https://images.unsplash.com/photo-1517420704952-d9f39e95b43f?auto=format&fit=crop&w=900&q=80",
			Description: "Small appliances, lighting, and handy gadgets.",
		},
		{
			Name:        "Cleaning & chemical products",
			Image:       "https://images.unsplash.com/photo-1581578731548-c64695cc6952?auto=format&fit=crop&w=900&q=80",
			Description: "Detergents, disinfectants, and home care kits.",
		},
	}
}

func DefaultProducts() []Product {
	return []Product{
		{ID: "p-1", Name: "Velvet Throw Pillow", Price: 18.99, Quantity: 24, Category: "Living room items", Image: "https://images.unsplash.com/photo-1505691938895-1758d7feb511?auto=format&fit=crop&w=900&q=80", Featured: true},
		{ID: "p-2", Name: "Stainless Steel Pan Set", Price: 54.5, Quantity: 15, Category: "Kitchen items", Image: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=900&q=80", Featured: true},
		{ID: "p-3", Name: "Minimal Desk Lamp", Price: 22.75, Quantity: 30, Category: "Home items", Image: "https://images.unsplash.com/photo-1481277542470-605612bd2d61?auto=format&fit=crop&w=900&q=80", Featured: true},
		{ID: "p-4", Name: "Cotton Bath Towel Set", Price: 19.99, Quantity: 40, Category: "Bathroom items", Image: "https://images.unsplash.com/photo-1505691938895-1758d7feb511?auto=format&fit=crop&w=900&q=80"},
		{ID: "p-5", Name: "Study Backpack", Price: 27.5, Quantity: 18, Category: "Study & school items", Image: "https://images.unsplash.com/photo-1463320898484-cdee8141c787?auto=format&fit=crop&w=900&q=80"},
		{ID: "p-6", Name: "Casual White Sneakers", Price: 35.0, Quantity: 20, Category: "Shoes", Image: "https://images.unsplash.com/photo-1514996937319-344454492b37?auto=format&fit=crop&w=900&q=80", Featured: true},
		{ID: "p-7", Name: "Kids Learning Kit", Price: 16.0, Quantity: 28, Category: "Children items", Image: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=900&q=80"},
		{ID: "p-8", Name: "Hydrating Face Cream", Price: 14.25, Quantity: 36, Category: "Beauty & cream products", Image: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80", Featured: true},
		{ID: "p-9", Name: "Fresh Citrus Perfume", Price: 29.99, Quantity: 22, Category: "Perfumes & scents", Image: "https://images.unsplash.com/photo-1506617420156-8e4536971650?auto=format&fit=crop&w=900&q=80"},
		{ID: "p-10", Name: "Compact Blender", Price: 49.99, Quantity: 12, Category: "Electrical items", Image: "https://images.unsplash.com/photo-1517420704952-d9f39e95b43f?auto=format&fit=crop&w=900&q=80"},
		{ID: "p-11", Name: "Eco Dish Soap Duo", Price: 9.95, Quantity: 50, Category: "Cleaning & chemical products", Image: "https://images.unsplash.com/photo-1581578731548-c64695cc6952?auto=format&fit=crop&w=900&q=80"},
		{ID: "p-12", Name: "Linen Summer Dress", Price: 32.5, Quantity: 16, Category: "Dresses & fashion", Image: "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=900&q=80"},
	}
}

const (
	DefaultCategoryImage = "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?auto=format&fit=crop&w=900&q=80"
	DefaultProductImage  = "https://images.unsplash.com/photo-1491553895911-0055eca6402d?auto=format&fit=crop&w=800&q=80"
)
