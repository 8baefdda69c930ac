package seed

import "vstore-backend/internal/models"

func img(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?w=500"
}

// Products returns a fresh copy of the seed catalog.
func Products() []models.Product {
	return []models.Product{
		{
			Name:          "Classic Crew Tee",
			Description:   "Soft organic cotton tee with a relaxed everyday fit.",
			Price:         599,
			OriginalPrice: 799,
			Discount:      25,
			Image:         img("1521572163474-6864f9cf17ab"),
			Images:        []string{img("1521572163474-6864f9cf17ab"), img("1503341504253-dff4815485f1")},
			Category:      "T-Shirts",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"White", "Black", "Navy"},
			Fabric:        "Cotton",
			Rating:        4.5,
			Reviews:       128,
			InStock:       models.Bool(true),
			FreeDelivery:  models.Bool(true),
			DeliveryDays:  3,
		},
		{
			Name:          "Washed Denim Jacket",
			Description:   "Vintage wash denim jacket with button closure and chest pockets.",
			Price:         2499,
			OriginalPrice: 3499,
			Discount:      29,
			Image:         img("1544966503-7cc5ac882d5f"),
			Images:        []string{img("1544966503-7cc5ac882d5f"), img("1551698618-1dfe5d97d256")},
			Category:      "Jackets",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Blue", "Black"},
			Fabric:        "Denim",
			Rating:        4.3,
			Reviews:       89,
			InStock:       models.Bool(true),
			FreeDelivery:  models.Bool(true),
			DeliveryDays:  5,
		},
		{
			Name:          "Non-Iron Dress Shirt",
			Description:   "Crisp office shirt in an easy-care cotton blend.",
			Price:         1299,
			OriginalPrice: 1799,
			Discount:      28,
			Image:         img("1602810318383-e386cc2a3ccf"),
			Images:        []string{img("1602810318383-e386cc2a3ccf"), img("1594938298603-c8148c4dae35")},
			Category:      "Shirts",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"White", "Light Blue"},
			Fabric:        "Cotton Blend",
			Rating:        4.7,
			Reviews:       156,
			InStock:       models.Bool(true),
			FreeDelivery:  models.Bool(true),
			DeliveryDays:  2,
		},
		{
			Name:          "Slim Chinos",
			Description:   "Slim fit twill chinos for casual and smart-casual days.",
			Price:         1899,
			OriginalPrice: 2499,
			Discount:      24,
			Image:         img("1473966968600-fa801b869a1a"),
			Images:        []string{img("1473966968600-fa801b869a1a"), img("1624378439575-d8705ad7ae80")},
			Category:      "Pants",
			Sizes:         []string{"28", "30", "32", "34", "36"},
			Colors:        []string{"Khaki", "Navy", "Olive"},
			Fabric:        "Cotton Twill",
			Rating:        4.4,
			Reviews:       203,
			InStock:       models.Bool(true),
			FreeDelivery:  models.Bool(true),
			DeliveryDays:  4,
		},
		{
			Name:          "Merino Crew Sweater",
			Description:   "Warm merino wool sweater with ribbed cuffs and hem.",
			Price:         3299,
			OriginalPrice: 4299,
			Discount:      23,
			Image:         img("1576566588028-4147f3842f27"),
			Images:        []string{img("1576566588028-4147f3842f27")},
			Category:      "Sweaters",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Gray", "Burgundy", "Cream"},
			Fabric:        "Wool",
			Rating:        4.6,
			Reviews:       94,
			InStock:       models.Bool(true),
			FreeDelivery:  models.Bool(true),
			DeliveryDays:  6,
		},
		{
			Name:          "Leather Chelsea Boots",
			Description:   "Genuine leather boots with elastic side panels.",
			Price:         4999,
			OriginalPrice: 6999,
			Discount:      29,
			Image:         img("1549298916-b41d501d3772"),
			Images:        []string{img("1549298916-b41d501d3772"), img("1608256246200-53e8b47b2dc1")},
			Category:      "Footwear",
			Sizes:         []string{"7", "8", "9", "10", "11"},
			Colors:        []string{"Brown", "Black"},
			Fabric:        "Leather",
			Rating:        4.8,
			Reviews:       76,
			InStock:       models.Bool(true),
			FreeDelivery:  models.Bool(false),
			DeliveryDays:  7,
		},
		{
			Name:          "Pullover Hoodie",
			Description:   "Brushed fleece hoodie with a kangaroo pocket.",
			Price:         1799,
			OriginalPrice: 2299,
			Discount:      22,
			Image:         img("1556821840-3a63f95609a7"),
			Images:        []string{img("1556821840-3a63f95609a7")},
			Category:      "Hoodies",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Gray", "Black", "Maroon"},
			Fabric:        "Cotton Blend",
			Rating:        4.5,
			Reviews:       198,
			InStock:       models.Bool(true),
			FreeDelivery:  models.Bool(true),
			DeliveryDays:  4,
		},
		{
			Name:          "Tailored Blazer",
			Description:   "Single-breasted blazer in a premium wool blend.",
			Price:         5999,
			OriginalPrice: 7999,
			Discount:      25,
			Image:         img("1507003211169-0a1dd7228f2d"),
			Images:        []string{img("1507003211169-0a1dd7228f2d")},
			Category:      "Blazers",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Navy", "Charcoal"},
			Fabric:        "Wool Blend",
			Rating:        4.7,
			Reviews:       67,
			InStock:       models.Bool(false),
			FreeDelivery:  models.Bool(true),
			DeliveryDays:  5,
		},
	}
}
