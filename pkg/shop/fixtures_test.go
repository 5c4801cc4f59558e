package shop_test

import "time"

const (
	productID = "507f1f77bcf86cd799439011"
	userID    = "507f191e810c19729de860ea"
)

func validReview() map[string]any {
	return map[string]any{
		"product":            productID,
		"user":               userID,
		"isVerifiedPurchase": true,
		"title":              "Great fit",
		"comment":            "Would buy again",
		"rating":             5,
	}
}

func validProduct() map[string]any {
	return map[string]any{
		"name":         "Linen Shirt",
		"slug":         "linen-shirt",
		"category":     "Shirts",
		"images":       []any{"/images/p11-1.jpg"},
		"brand":        "Nike",
		"description":  "A light summer shirt",
		"isPublished":  true,
		"price":        "49.99",
		"listPrice":    59.99,
		"countInStock": 12,
		"avgRating":    4.5,
		"numReviews":   2,
		"ratingDistribution": []any{
			map[string]any{"rating": 5, "count": 1},
			map[string]any{"rating": 4, "count": 1},
		},
		"numSales": 7,
	}
}

func validItem() map[string]any {
	return map[string]any{
		"clientId":     "b3f1c7b0-0c1e-4d3e-9a55-3c4d5e6f7a8b",
		"product":      productID,
		"name":         "Linen Shirt",
		"slug":         "linen-shirt",
		"category":     "Shirts",
		"quantity":     2,
		"countInStock": 12,
		"image":        "/images/p11-1.jpg",
		"price":        49.99,
		"size":         "M",
	}
}

func validAddress() map[string]any {
	return map[string]any{
		"fullName":   "Ann Lee",
		"street":     "1 Main St",
		"city":       "Oslo",
		"postalCode": "0150",
		"province":   "Oslo",
		"phone":      "+47 555 0100",
		"country":    "Norway",
	}
}

func validOrder(now time.Time) map[string]any {
	return map[string]any{
		"user":                 userID,
		"items":                []any{validItem()},
		"shippingAddress":      validAddress(),
		"paymentMethod":        "PayPal",
		"itemsPrice":           99.98,
		"shippingPrice":        0,
		"taxPrice":             "15.00",
		"totalPrice":           114.98,
		"expectedDeliveryDate": now.Add(72 * time.Hour),
	}
}

func validUser() map[string]any {
	return map[string]any{
		"name":          "Ann Lee",
		"email":         "ann@x.com",
		"emailVerified": false,
		"role":          "User",
		"password":      "secret",
		"paymentMethod": "Stripe",
		"address":       validAddress(),
	}
}

func validWebPage() map[string]any {
	return map[string]any{
		"title":       "About Us",
		"slug":        "about-us",
		"content":     "We sell shirts.",
		"isPublished": true,
	}
}

func validSetting() map[string]any {
	return map[string]any{
		"common": map[string]any{},
		"site": map[string]any{
			"name":        "Storefront",
			"logo":        "/icons/logo.svg",
			"slogan":      "Spend less, enjoy more.",
			"description": "A storefront",
			"keywords":    "shop, shirts",
			"url":         "https://shop.example.com",
			"email":       "admin@shop.example.com",
			"phone":       "+1 555 0100",
			"author":      "Storefront Team",
			"copyright":   "2026 Storefront",
			"address":     "1 Main St",
		},
		"availableLanguages": []any{
			map[string]any{"name": "English", "code": "en-US"},
			map[string]any{"name": "Français", "code": "fr"},
		},
		"carousels": []any{
			map[string]any{
				"title":         "Best deals on shirts",
				"url":           "/search?category=Shirts",
				"image":         "/images/banner1.jpg",
				"buttonCaption": "Shop Now",
			},
		},
		"defaultLanguage": "en-US",
		"availableCurrencies": []any{
			map[string]any{"name": "United States Dollar", "code": "USD", "convertRate": 1, "symbol": "$"},
			map[string]any{"name": "Euro", "code": "EUR", "convertRate": "0.96", "symbol": "€"},
		},
		"defaultCurrency": "USD",
		"availablePaymentMethods": []any{
			map[string]any{"name": "PayPal", "commission": 0},
			map[string]any{"name": "Stripe", "commission": 0},
		},
		"defaultPaymentMethod": "PayPal",
		"availableDeliveryDates": []any{
			map[string]any{"name": "Tomorrow", "daysToDeliver": 1, "shippingPrice": 12.9, "freeShippingMinPrice": 0},
			map[string]any{"name": "Next 5 Days", "daysToDeliver": 5, "shippingPrice": 4.9, "freeShippingMinPrice": 35},
		},
		"defaultDeliveryDate": "Next 5 Days",
	}
}
