package models

// ProductCount pairs a product with how many meeting requests reference it.
type ProductCount struct {
	ProductID   string `db:"product_id" json:"productId"`
	ProductName string `db:"product_name" json:"productName"`
	Count       int64  `db:"count" json:"count"`
}

// DashboardStats backs the admin dashboard summary panel.
type DashboardStats struct {
	Messages    map[string]int64 `json:"messages"`
	Meetings    map[string]int64 `json:"meetings"`
	TopProducts []ProductCount   `json:"topProducts"`
}
