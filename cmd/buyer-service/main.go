// buyer-service exposes the contact lookup the invoice worker consumes.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	byr "github.com/nexmart/checkout/internal/buyer"
	"github.com/nexmart/checkout/internal/config"
	"github.com/nexmart/checkout/internal/httpx"
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

	repo := byr.NewPGRepo(pool)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/buyers/:id", getBuyerHandler(repo))

	log.Printf("buyer-service listening on %s", cfg.BuyerSvcAddr)
	log.Fatal(r.Run(cfg.BuyerSvcAddr))
}

func getBuyerHandler(repo byr.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, b)
	}
}
