package model

// Product row from the hosted `products` table, with its image rows
// embedded via the `product_images(product_url)` relation.
type Product struct {
	ID     string         `json:"id"`
	Nama   string         `json:"nama"`
	Harga  int64          `json:"harga"`
	Images []ProductImage `json:"product_images"`
}

type ProductImage struct {
	ProductURL string `json:"product_url"`
}
