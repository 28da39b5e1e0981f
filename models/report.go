package models

// Derived reporting shapes. Never stored; always computed from the ledger at
// query time.

type PeriodStat struct {
	Sales        float64 `json:"sales" bson:"sales"`
	Transactions int64   `json:"transactions" bson:"transactions"`
}

type TotalStat struct {
	Sales        float64 `json:"sales"`
	Transactions int64   `json:"transactions"`
	Customers    int64   `json:"customers"`
	Products     int64   `json:"products"`
}

type BestSeller struct {
	ProductID string  `json:"product_id" bson:"_id"`
	Name      string  `json:"name" bson:"name"`
	SKU       string  `json:"sku" bson:"sku"`
	TotalSold int64   `json:"total_sold" bson:"total_sold"`
	Revenue   float64 `json:"revenue" bson:"revenue"`
}

type SalesPoint struct {
	Date         string  `json:"date" bson:"_id"`
	Sales        float64 `json:"sales" bson:"sales"`
	Transactions int64   `json:"transactions" bson:"transactions"`
}

type DashboardReport struct {
	Today              PeriodStat    `json:"today"`
	Total              TotalStat     `json:"total"`
	LowStockProducts   []Product     `json:"low_stock_products"`
	BestSelling        []BestSeller  `json:"best_selling"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

type InventorySummary struct {
	TotalProducts int64   `json:"total_products" bson:"total_products"`
	TotalStock    int64   `json:"total_stock" bson:"total_stock"`
	TotalValue    float64 `json:"total_value" bson:"total_value"`
	LowStock      int64   `json:"low_stock" bson:"low_stock"`
	OutOfStock    int64   `json:"out_of_stock" bson:"out_of_stock"`
}

type InventoryRow struct {
	Product    `bson:",inline"`
	Sold       int64   `json:"sold" bson:"sold"`
	StockValue float64 `json:"stock_value" bson:"stock_value"`
}
