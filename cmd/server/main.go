package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"warebell/internal/directory"
	"warebell/internal/docstore"
	"warebell/internal/fulfillment"
	"warebell/internal/notify"
	"warebell/internal/platform/config"
	"warebell/internal/platform/httpserver"
	"warebell/internal/platform/logger"
	"warebell/internal/platform/metrics"
	platformredis "warebell/internal/platform/redis"
	"warebell/internal/printing"
	"warebell/internal/queue"
	"warebell/internal/realtime"
	httptransport "warebell/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	m := metrics.New()

	// Durable sinks: postgres when configured, in-memory otherwise.
	var (
		notifyStore notify.Store
		dirStore    directory.Store
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Error("ping postgres", "error", err)
			os.Exit(1)
		}
		notifyStore = notify.NewPostgresStore(db)
		dirStore = directory.NewPostgresStore(db)
	} else {
		notifyStore = notify.NewInMemoryStore()
		dirStore = directory.NewInMemoryStore()
	}

	// Ephemeral channel: redis pub/sub when configured.
	var publisher realtime.Publisher
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		publisher = realtime.NewRedisPublisher(redisClient)
	} else {
		publisher = realtime.NewMemoryPublisher()
	}

	notifier, err := notify.New(notifyStore, publisher, dirStore,
		notify.WithLogger(log), notify.WithMetrics(m))
	if err != nil {
		log.Error("build notifier", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Task queue: kafka when brokers are configured, channel worker otherwise.
	var enqueuer queue.Enqueuer
	if len(cfg.KafkaBrokers) > 0 {
		kafkaEnqueuer, err := queue.NewKafkaEnqueuer(cfg.KafkaBrokers, cfg.TaskTopic, log)
		if err != nil {
			log.Error("build kafka enqueuer", "error", err)
			os.Exit(1)
		}
		defer kafkaEnqueuer.Close()
		enqueuer = kafkaEnqueuer

		worker, err := queue.NewKafkaWorker(cfg.KafkaBrokers, cfg.TaskTopic, "warebell-workers", log)
		if err != nil {
			log.Error("build kafka worker", "error", err)
			os.Exit(1)
		}
		worker.Register(queue.TaskNotifyAssignedUsers, notify.TaskHandler(notifier))
		go func() {
			if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("kafka worker stopped", "error", err)
			}
		}()
	} else {
		memQueue := queue.NewMemoryQueue(64, log)
		memQueue.Register(queue.TaskNotifyAssignedUsers, notify.TaskHandler(notifier))
		go func() {
			if err := memQueue.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("task worker stopped", "error", err)
			}
		}()
		enqueuer = memQueue
	}

	printer := printing.NewService(printing.NewInMemoryFormatStore(), &printing.LogPrinter{Logger: log}, log)

	svc, err := fulfillment.New(fulfillment.Stores{
		PickLists:        docstore.NewInMemoryPickLists(),
		SalesOrders:      docstore.NewInMemorySalesOrders(),
		DeliveryNotes:    docstore.NewInMemoryDeliveryNotes(),
		PurchaseReceipts: docstore.NewInMemoryPurchaseReceipts(),
		StockEntries:     docstore.NewInMemoryStockEntries(),
		Items:            docstore.NewInMemoryItems(),
	},
		fulfillment.WithLogger(log),
		fulfillment.WithMetrics(m),
		fulfillment.WithEnqueuer(enqueuer),
		fulfillment.WithPrinter(printer),
		fulfillment.WithNotifier(notifier),
	)
	if err != nil {
		log.Error("build fulfillment service", "error", err)
		os.Exit(1)
	}

	handler := httptransport.NewHandler(svc, notifyStore, log)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting warebell", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
