package model

// Product represents an item in the storefront catalog. The catalog is
// static; there is no product backend.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// Categories offered by the storefront, in display order.
var Categories = []string{
	"All",
	"T-Shirts",
	"Jeans",
	"Jackets",
	"Hoodies",
	"Shirts",
	"Dresses",
	"Shoes",
	"Sweaters",
}

// Products is the storefront catalog.
var Products = []Product{
	{
		ID:          "1",
		Name:        "Classic Denim Jacket",
		Price:       89.99,
		Category:    "Jackets",
		Image:       "https://images.pexels.com/photos/1656684/pexels-photo-1656684.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Timeless denim jacket perfect for casual outings",
		Rating:      4.5,
		Reviews:     128,
	},
	{
		ID:          "2",
		Name:        "Cotton Blend T-Shirt",
		Price:       24.99,
		Category:    "T-Shirts",
		Image:       "https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Comfortable cotton blend t-shirt for everyday wear",
		Rating:      4.2,
		Reviews:     89,
	},
	{
		ID:          "3",
		Name:        "Slim Fit Jeans",
		Price:       79.99,
		Category:    "Jeans",
		Image:       "https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Modern slim fit jeans with premium denim",
		Rating:      4.7,
		Reviews:     156,
	},
	{
		ID:          "4",
		Name:        "Casual Hoodie",
		Price:       49.99,
		Category:    "Hoodies",
		Image:       "https://images.pexels.com/photos/8148579/pexels-photo-8148579.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Cozy hoodie perfect for cool weather",
		Rating:      4.3,
		Reviews:     94,
	},
	{
		ID:          "5",
		Name:        "Elegant Dress Shirt",
		Price:       69.99,
		Category:    "Shirts",
		Image:       "https://images.pexels.com/photos/769732/pexels-photo-769732.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Professional dress shirt for formal occasions",
		Rating:      4.6,
		Reviews:     73,
	},
	{
		ID:          "6",
		Name:        "Summer Dress",
		Price:       59.99,
		Category:    "Dresses",
		Image:       "https://images.pexels.com/photos/1126993/pexels-photo-1126993.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Light and breezy summer dress",
		Rating:      4.4,
		Reviews:     112,
	},
	{
		ID:          "7",
		Name:        "Leather Boots",
		Price:       129.99,
		Category:    "Shoes",
		Image:       "https://images.pexels.com/photos/336372/pexels-photo-336372.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Durable leather boots for all occasions",
		Rating:      4.8,
		Reviews:     201,
	},
	{
		ID:          "8",
		Name:        "Knit Sweater",
		Price:       64.99,
		Category:    "Sweaters",
		Image:       "https://images.pexels.com/photos/7679862/pexels-photo-7679862.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Warm knit sweater for cold days",
		Rating:      4.1,
		Reviews:     67,
	},
}

// FindProduct looks a product up by ID.
func FindProduct(id string) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
