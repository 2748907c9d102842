package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nexmart/checkout/docs"
	"github.com/nexmart/checkout/internal/config"
	"github.com/nexmart/checkout/internal/httpx"
	"github.com/nexmart/checkout/internal/metrics"
	ord "github.com/nexmart/checkout/internal/order"
	"github.com/nexmart/checkout/internal/outbox"
)

// @title NexMart Checkout API
// @version 1.0
// @description Order checkout core: coded orders, atomic totals, invoice dispatch.
// @BasePath /
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	repo := ord.NewPGRepo(pool)
	ext := ord.NewExt(cfg.ProductSvcBaseURL, cfg.BuyerSvcBaseURL)
	svc := ord.NewService(repo, ext)
	m := metrics.NewServerMetrics("checkout")

	enqueue := func(ctx context.Context, orderID, code string) error {
		return outbox.Enqueue(ctx, pool, orderID, code)
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Metrics(m))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/orders", createOrderHandler(svc))
	r.GET("/orders/:id", getOrderHandler(repo))
	r.GET("/orders/:id/items", getOrderItemsHandler(repo))
	r.GET("/orders/buyer/:buyer_id", listOrdersByBuyerHandler(repo))
	r.PUT("/orders/:id/status", updateOrderStatusHandler(repo))
	r.POST("/orders/:id/invoice/resend", resendInvoiceHandler(repo, enqueue))

	log.Printf("checkout-service listening on %s", cfg.CheckoutSvcAddr)
	log.Fatal(r.Run(cfg.CheckoutSvcAddr))
}
