// invoice-worker drains the invoice job outbox: for each committed order it
// renders the PDF, mails it to the buyer and marks the job sent. Failures
// bump the job's attempt count and are retried on the next poll; they can
// never touch the order itself.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexmart/checkout/internal/config"
	"github.com/nexmart/checkout/internal/invoice"
	"github.com/nexmart/checkout/internal/logging"
	ord "github.com/nexmart/checkout/internal/order"
	"github.com/nexmart/checkout/internal/outbox"
)

const service = "invoice-worker"

// batchTimeout bounds one render-and-mail batch.
const batchTimeout = 30 * time.Second

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
	mailer := invoice.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	interval := time.Duration(cfg.OutboxPollMS) * time.Millisecond
	log.Printf("invoice-worker polling every %s, batch %d", interval, cfg.OutboxBatch)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pollLoop(runCtx, interval, batchTimeout, func(batchCtx context.Context) {
		runBatch(batchCtx, pool, repo, ext, mailer, cfg.OutboxBatch)
	})
	log.Printf("invoice-worker shutting down")
}

// pollLoop invokes process with a deadline-bound context once per interval
// until ctx is cancelled.
func pollLoop(ctx context.Context, interval, timeout time.Duration, process func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		batchCtx, cancel := context.WithTimeout(ctx, timeout)
		process(batchCtx)
		cancel()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func runBatch(ctx context.Context, pool *pgxpool.Pool, repo ord.Repository, ext *ord.Ext, mailer *invoice.Mailer, batch int) {
	jobs, err := outbox.FetchPending(ctx, pool, batch)
	if err != nil {
		logging.Log(logging.Fields{Service: service, Step: "fetch", Status: "error", Message: err.Error()})
		return
	}
	for _, job := range jobs {
		start := time.Now()
		if err := dispatch(ctx, repo, ext, mailer, job); err != nil {
			logging.Log(logging.Fields{
				Service: service, JobID: job.ID, OrderID: job.OrderID, OrderCode: job.OrderCode,
				Step: "dispatch", Status: "error", Message: err.Error(),
				DurationMS: time.Since(start).Milliseconds(),
			})
			if err := outbox.MarkFailed(ctx, pool, job.ID); err != nil {
				logging.Log(logging.Fields{Service: service, JobID: job.ID, Step: "mark_failed", Status: "error", Message: err.Error()})
			}
			continue
		}
		if err := outbox.MarkSent(ctx, pool, job.ID); err != nil {
			logging.Log(logging.Fields{Service: service, JobID: job.ID, Step: "mark_sent", Status: "error", Message: err.Error()})
			continue
		}
		logging.Log(logging.Fields{
			Service: service, JobID: job.ID, OrderID: job.OrderID, OrderCode: job.OrderCode,
			Step: "dispatch", Status: "sent", DurationMS: time.Since(start).Milliseconds(),
		})
	}
}

func dispatch(ctx context.Context, repo ord.Repository, ext *ord.Ext, mailer *invoice.Mailer, job outbox.Job) error {
	o, items, err := repo.GetByID(ctx, job.OrderID)
	if err != nil {
		return err
	}
	contact, err := ext.FetchBuyer(ctx, o.BuyerID)
	if err != nil {
		return err
	}

	// best-effort seller names; missing sellers render as the placeholder
	sellerNames := map[string]string{}
	for _, it := range items {
		if it.SellerID == nil {
			continue
		}
		if _, ok := sellerNames[*it.SellerID]; ok {
			continue
		}
		if s, err := ext.FetchBuyer(ctx, *it.SellerID); err == nil {
			sellerNames[*it.SellerID] = s.Name
		}
	}

	pdf, err := invoice.Render(o, items, sellerNames)
	if err != nil {
		return err
	}
	return mailer.SendInvoice(contact.Name, contact.Email, o.Code, pdf)
}
