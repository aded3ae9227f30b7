package catalog

// Seed returns the static demo menu. Prices are cents; original price and
// discount are display-only and not arithmetically tied together.
func Seed() Catalog {
	return Catalog{
		{
			Name:               "Supreme Pizza",
			Cuisine:            "Italian",
			Category:           "Pizza",
			PriceCents:         1299,
			OriginalPriceCents: 1599,
			DiscountPct:        18,
			Rating:             4.5,
			DeliveryMins:       30,
			Available:          true,
			Description:        "Loaded with pepperoni, sausage, bell peppers and olives on a hand-tossed crust.",
			Tags:               []string{"bestseller", "spicy"},
			ImageURL:           "/images/supreme-pizza.jpg",
		},
		{
			Name:               "Burger Deluxe",
			Cuisine:            "American",
			Category:           "Burgers",
			PriceCents:         899,
			OriginalPriceCents: 1099,
			DiscountPct:        18,
			Rating:             4.3,
			DeliveryMins:       20,
			Available:          true,
			Description:        "Double beef patty with cheddar, caramelized onions and house sauce.",
			Tags:               []string{"bestseller"},
			ImageURL:           "/images/burger-deluxe.jpg",
		},
		{
			Name:               "Sushi Platter",
			Cuisine:            "Japanese",
			Category:           "Sushi",
			PriceCents:         1599,
			OriginalPriceCents: 1899,
			DiscountPct:        15,
			Rating:             4.8,
			DeliveryMins:       35,
			Available:          true,
			Description:        "Twelve-piece chef selection of nigiri and maki with wasabi and pickled ginger.",
			Tags:               []string{"raw", "chef-special"},
			ImageURL:           "/images/sushi-platter.jpg",
		},
		{
			Name:               "Taco Combo",
			Cuisine:            "Mexican",
			Category:           "Mexican",
			PriceCents:         1099,
			OriginalPriceCents: 1299,
			DiscountPct:        15,
			Rating:             4.2,
			DeliveryMins:       25,
			Available:          true,
			Description:        "Three street tacos with carne asada, cilantro, onion and lime.",
			Tags:               []string{"spicy"},
			ImageURL:           "/images/taco-combo.jpg",
		},
		{
			Name:               "Caesar Salad",
			Cuisine:            "Healthy",
			Category:           "Salads",
			PriceCents:         799,
			OriginalPriceCents: 899,
			DiscountPct:        11,
			Rating:             4.0,
			DeliveryMins:       15,
			Available:          true,
			Description:        "Crisp romaine, parmesan shavings and garlic croutons in classic dressing.",
			Tags:               []string{"vegetarian"},
			ImageURL:           "/images/caesar-salad.jpg",
		},
		{
			Name:               "Pasta Carbonara",
			Cuisine:            "Italian",
			Category:           "Pasta",
			PriceCents:         1199,
			OriginalPriceCents: 1399,
			DiscountPct:        14,
			Rating:             4.6,
			DeliveryMins:       28,
			Available:          true,
			Description:        "Spaghetti tossed with pancetta, egg yolk and pecorino romano.",
			Tags:               []string{"creamy"},
			ImageURL:           "/images/pasta-carbonara.jpg",
		},
		{
			Name:               "Chocolate Lava Cake",
			Cuisine:            "Dessert",
			Category:           "Desserts",
			PriceCents:         649,
			OriginalPriceCents: 799,
			DiscountPct:        19,
			Rating:             4.7,
			DeliveryMins:       18,
			Available:          true,
			Description:        "Warm chocolate cake with a molten center, served with vanilla ice cream.",
			Tags:               []string{"sweet", "bestseller"},
			ImageURL:           "/images/lava-cake.jpg",
		},
	}
}
