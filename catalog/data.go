package catalog

import "github.com/wearloom/storefront-api/models"

// Categories used by the built-in catalog.
const (
	CategoryEnglish = "English Wears"
	CategoryAfrican = "African Native Wears"
)

var defaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "T-Shirt",
		Price:       "$60.00",
		ImageURL:    "https://i.pinimg.com/736x/e7/85/0e/e7850e9742ae012df53f28357b42e28b.jpg",
		Description: "A classic beige t-shirt paired with comfortable jeans.",
		Category:    CategoryEnglish,
	},
	{
		ID:          2,
		Name:        "Hoodie",
		Price:       "$70.00",
		ImageURL:    "https://i.pinimg.com/736x/cc/46/8d/cc468d77cab35de606fb976e4851f094.jpg",
		Description: "A stylish and durable gray hoodie for everyday use.",
		Category:    CategoryEnglish,
	},
	{
		ID:          3,
		Name:        "Black Sunglasses",
		Price:       "$40.00",
		ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?q=80&w=800&h=1200&fit=crop",
		Description: "Classic black sunglasses to protect your eyes with style.",
		Category:    CategoryEnglish,
	},
	{
		ID:          4,
		Name:        "Classic Fedora Hat",
		Price:       "$80.00",
		ImageURL:    "https://i.pinimg.com/1200x/f8/fa/ba/f8fabae4df81e6154985e64e7d5c8df0.jpg",
		Description: "A timeless fedora hat for a sophisticated look.",
		Category:    CategoryEnglish,
	},
	{
		ID:          5,
		Name:        "Leather Watch",
		Price:       "$30.00",
		ImageURL:    "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?q=80&w=800&h=1200&fit=crop",
		Description: "An elegant watch with a brown leather strap.",
		Category:    CategoryEnglish,
	},
	{
		ID:          6,
		Name:        "Leather Belt",
		Price:       "$90.00",
		ImageURL:    "https://i.pinimg.com/736x/f2/9e/e7/f29ee7a2d9fff4433ce379fe544063b8.jpg",
		Description: "A high-quality woven leather belt.",
		Category:    CategoryEnglish,
	},
	{
		ID:           7,
		Name:         "Soft-Brushed Flannel Pocket Shirt",
		Subtitle:     "Own the Court",
		Price:        "$156",
		ImageURL:     "https://i.pinimg.com/1200x/5b/b5/6d/5bb56df000ad096e36793e77237df373.jpg",
		Description:  "Step back into classic hoops style with a durable leather.",
		Category:     CategoryEnglish,
		Brand:        "nike",
		IsBestSeller: true,
	},
	{
		ID:          8,
		Name:        "Red Casual Pants",
		Price:       "$50.00",
		ImageURL:    "https://i.pinimg.com/1200x/99/db/fb/99dbfb86b1a1b33ea4232d5150be23b9.jpg",
		Description: "Vibrant red casual pants to make a statement.",
		Category:    CategoryEnglish,
	},
	{
		ID:          9,
		Name:        "White Headphones",
		Price:       "$50.00",
		ImageURL:    "https://i.pinimg.com/1200x/2c/8b/18/2c8b1854b8b72aa03a007b194937e515.jpg",
		Description: "Sleek white headphones for an immersive audio experience.",
		Category:    CategoryEnglish,
	},
	{
		ID:          10,
		Name:        "Black Running Shoes",
		Price:       "$50.00",
		ImageURL:    "https://i.pinimg.com/1200x/e0/a5/b3/e0a5b353b3f7adcba85393a731a5bd61.jpg",
		Description: "Durable and comfortable black running shoes.",
		Category:    CategoryEnglish,
	},
	{
		ID:          11,
		Name:        "Men Kaftan Suit 3 Pcs",
		Price:       "$220.00",
		ImageURL:    "https://i.pinimg.com/736x/a5/e9/60/a5e960fbc1cce33051d7d821b1de0691.jpg",
		Description: "A three-piece kaftan suit in a traditional cut.",
		Category:    CategoryAfrican,
	},
	{
		ID:          12,
		Name:        "Agbada",
		Price:       "$220.00",
		ImageURL:    "https://i.pinimg.com/736x/41/1d/2c/411d2c630117cae1bd9e6384d117d74c.jpg",
		Description: "A flowing agbada robe with embroidered detailing.",
		Category:    CategoryAfrican,
	},
	{
		ID:          13,
		Name:        "Native Gown",
		Price:       "$220.00",
		ImageURL:    "https://i.pinimg.com/1200x/f5/b1/62/f5b162c18e1ec316a50ce926b211b582.jpg",
		Description: "A native gown tailored from patterned fabric.",
		Category:    CategoryAfrican,
	},
	{
		ID:          14,
		Name:        "Beautiful Red Ankara Gown",
		Price:       "$220.00",
		ImageURL:    "https://i.pinimg.com/736x/03/69/32/0369323a5e63a599461cb0f25bbd4a4f.jpg",
		Description: "A striking red ankara gown for special occasions.",
		Category:    CategoryAfrican,
	},
}
