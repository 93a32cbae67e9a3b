package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/campuseats/canteen/internal/adapter/handler"
	"github.com/campuseats/canteen/internal/adapter/storage"
	"github.com/campuseats/canteen/internal/core/domain"
	"github.com/campuseats/canteen/internal/core/service"
	"github.com/campuseats/canteen/internal/port"
)

const (
	httpAddr       = ":8080"
	redisAddr      = "localhost:6379"
	mysqlDSN       = "root:root@tcp(localhost:3306)/campuseats?parseTime=true"
	tokenStorePath = "daily_tokens.json"
	serviceFee     = service.DefaultServiceFee
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openTokenStore(ctx)
	if err != nil {
		log.Fatalf("failed to open token store: %v", err)
	}
	defer closeStore()

	catalog := storage.NewMemoryCatalog(domain.SeedMenu())
	tokens := service.NewTokenAllocator(store)
	wizard := service.NewOrderWizard(catalog, tokens, serviceFee)
	board := service.NewAdminBoard(domain.SeedOrders(), domain.SeedCatalog())

	httpHandler := handler.NewHTTPHandler(wizard, board)
	mux := http.NewServeMux()
	httpHandler.Register(mux)

	addr := httpAddr
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		addr = v
	}
	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Any in-flight progress ticker dies with the wizard session.
	wizard.NewOrder()
	log.Println("session closed")
}

// openTokenStore picks the durable store for the daily token counter.
// TOKEN_STORE selects redis, mysql or file; the default is the local
// JSON file, which needs no external service.
func openTokenStore(ctx context.Context) (port.KVRepository, func(), error) {
	switch os.Getenv("TOKEN_STORE") {
	case "redis":
		addr := redisAddr
		if v := os.Getenv("REDIS_ADDR"); v != "" {
			addr = v
		}
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		log.Printf("token store: redis at %s", addr)
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }, nil

	case "mysql":
		dsn := mysqlDSN
		if v := os.Getenv("MYSQL_DSN"); v != "" {
			dsn = v
		}
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, nil, err
		}
		if _, err := db.ExecContext(ctx,
			`CREATE TABLE IF NOT EXISTS kv_store (k VARCHAR(191) PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
			return nil, nil, err
		}
		log.Println("token store: mysql")
		return storage.NewMySQLAdapter(db), func() { db.Close() }, nil

	default:
		path := tokenStorePath
		if v := os.Getenv("TOKEN_STORE_PATH"); v != "" {
			path = v
		}
		log.Printf("token store: file at %s", path)
		return storage.NewFileAdapter(path), func() {}, nil
	}
}
