// product-service exposes the read-only snapshot lookup the checkout core
// consumes. Catalog CRUD lives outside this core.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexmart/checkout/internal/config"
	"github.com/nexmart/checkout/internal/httpx"
	prod "github.com/nexmart/checkout/internal/product"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer pool.Close()

	repo := prod.NewPGRepo(pool)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/products/:id", getProductHandler(repo))

	log.Printf("product-service listening on %s", cfg.ProductSvcAddr)
	log.Fatal(r.Run(cfg.ProductSvcAddr))
}

func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		price, err := p.ComputedPrice()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "bad price data"})
			return
		}
		c.JSON(http.StatusOK, prod.SnapshotResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       price,
			Stock:       p.Stock,
			SellerID:    p.SellerID,
		})
	}
}
