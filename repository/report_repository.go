package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

// Reporting queries are read-only aggregations over the ledger. They run
// outside any unit of work and never block checkouts.

func (s *MongoStore) salesStat(ctx context.Context, match bson.M) (models.PeriodStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "sales", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: "transactions", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := s.transactions().Aggregate(ctx, pipeline)
	if err != nil {
		return models.PeriodStat{}, err
	}
	defer cur.Close(ctx)
	if cur.Next(ctx) {
		var stat models.PeriodStat
		if err := cur.Decode(&stat); err != nil {
			return models.PeriodStat{}, err
		}
		return stat, nil
	}
	return models.PeriodStat{}, cur.Err()
}

// BestSellers ranks products by quantity sold across all committed
// transactions.
func (s *MongoStore) BestSellers(ctx context.Context, limit int) ([]models.BestSeller, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if limit <= 0 {
		limit = 5
	}
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$items.product_id"},
			{Key: "name", Value: bson.D{{Key: "$first", Value: "$items.name"}}},
			{Key: "sku", Value: bson.D{{Key: "$first", Value: "$items.sku"}}},
			{Key: "total_sold", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$items.subtotal"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_sold", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := s.transactions().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.BestSeller
	for cur.Next(ctx) {
		var b models.BestSeller
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, cur.Err()
}

// LowStockProducts lists products below their own low-stock threshold,
// lowest stock first.
func (s *MongoStore) LowStockProducts(ctx context.Context, limit int) ([]models.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}
	filter := bson.M{"$expr": bson.M{"$lt": bson.A{"$stock", "$min_stock"}}}
	opts := options.Find().SetSort(bson.D{{Key: "stock", Value: 1}}).SetLimit(int64(limit))

	cur, err := s.products().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Product
	for cur.Next(ctx) {
		var p models.Product
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, cur.Err()
}

// Dashboard assembles the landing-page figures from the ledger at query
// time. Nothing here is cached or stored.
func (s *MongoStore) Dashboard(ctx context.Context) (*models.DashboardReport, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.salesStat(ctx, bson.M{"created_at": bson.M{"$gte": todayStart, "$lt": todayStart.AddDate(0, 0, 1)}})
	if err != nil {
		return nil, err
	}
	total, err := s.salesStat(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	customerCount, err := s.customers().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	productCount, err := s.products().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	lowStock, err := s.LowStockProducts(ctx, 10)
	if err != nil {
		return nil, err
	}
	bestSelling, err := s.BestSellers(ctx, 5)
	if err != nil {
		return nil, err
	}

	recentCur, err := s.transactions().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(5))
	if err != nil {
		return nil, err
	}
	defer recentCur.Close(ctx)
	var recent []models.Transaction
	for recentCur.Next(ctx) {
		var t models.Transaction
		if err := recentCur.Decode(&t); err != nil {
			return nil, err
		}
		recent = append(recent, t)
	}
	if err := recentCur.Err(); err != nil {
		return nil, err
	}

	return &models.DashboardReport{
		Today: today,
		Total: models.TotalStat{
			Sales:        total.Sales,
			Transactions: total.Transactions,
			Customers:    customerCount,
			Products:     productCount,
		},
		LowStockProducts:   lowStock,
		BestSelling:        bestSelling,
		RecentTransactions: recent,
	}, nil
}

// SalesSeries buckets sales by day, month or year.
func (s *MongoStore) SalesSeries(ctx context.Context, groupBy string) ([]models.SalesPoint, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var format string
	switch groupBy {
	case "day", "":
		format = "%Y-%m-%d"
	case "month":
		format = "%Y-%m"
	case "year":
		format = "%Y"
	default:
		return nil, apperr.Validationf("groupBy must be day, month or year")
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: format},
				{Key: "date", Value: "$created_at"},
			}}}},
			{Key: "sales", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: "transactions", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := s.transactions().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var series []models.SalesPoint
	for cur.Next(ctx) {
		var p models.SalesPoint
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		series = append(series, p)
	}
	return series, cur.Err()
}

// InventoryReport joins per-product sold quantities onto the catalog in Go,
// the same way the Excel export assembles its rows.
func (s *MongoStore) InventoryReport(ctx context.Context) ([]models.InventoryRow, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	soldPipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$items.product_id"},
			{Key: "sold", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
		}}},
	}
	cur, err := s.transactions().Aggregate(ctx, soldPipeline)
	if err != nil {
		return nil, err
	}
	sold := map[string]int64{}
	for cur.Next(ctx) {
		var row struct {
			ID   string `bson:"_id"`
			Sold int64  `bson:"sold"`
		}
		if err := cur.Decode(&row); err != nil {
			cur.Close(ctx)
			return nil, err
		}
		sold[row.ID] = row.Sold
	}
	cur.Close(ctx)
	if err := cur.Err(); err != nil {
		return nil, err
	}

	products, err := s.ListProducts(ctx, "", "")
	if err != nil {
		return nil, err
	}

	rows := make([]models.InventoryRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, models.InventoryRow{
			Product:    p,
			Sold:       sold[p.ID],
			StockValue: float64(p.Stock) * p.Price,
		})
	}
	return rows, nil
}

// InventorySummary aggregates catalog-wide stock figures.
func (s *MongoStore) InventorySummary(ctx context.Context) (*models.InventorySummary, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_products", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_stock", Value: bson.D{{Key: "$sum", Value: "$stock"}}},
			{Key: "total_value", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$multiply", Value: bson.A{"$stock", "$price"}}}}}},
			{Key: "low_stock", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{bson.D{{Key: "$lt", Value: bson.A{"$stock", "$min_stock"}}}, 1, 0}}}}}},
			{Key: "out_of_stock", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{bson.D{{Key: "$eq", Value: bson.A{"$stock", 0}}}, 1, 0}}}}}},
		}}},
	}

	cur, err := s.products().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var summary models.InventorySummary
		if err := cur.Decode(&summary); err != nil {
			return nil, err
		}
		return &summary, nil
	}
	return &models.InventorySummary{}, cur.Err()
}
