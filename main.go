package main

import (
	"log"
	"time"

	"github.com/N4th0wl/HangTuah-Website/config"
	httpapi "github.com/N4th0wl/HangTuah-Website/internal/api/http"
	"github.com/N4th0wl/HangTuah-Website/internal/service"
	"github.com/N4th0wl/HangTuah-Website/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisClient := config.MustInitRedis()
	menuCache := storage.NewMenuRedisCache(redisClient, 5*time.Minute)

	notifier := storage.NewKafkaNotifier(
		config.NewKafkaWriter("orders"),
		config.NewKafkaWriter("notifications"),
	)

	images, err := storage.NewDiskImageStore(config.UploadsDir())
	if err != nil {
		log.Fatal("Failed to create uploads directory:", err)
	}

	tokens := service.NewTokenManager(config.JWTSecret(), 7*24*time.Hour)
	accounts := service.NewAccountService(repo, tokens)
	menu := service.NewMenuService(repo, repo, menuCache, images)
	orders := service.NewOrderService(repo,
		service.DefaultQRGenerator{MerchantName: "Hang Tuah Toastery"}, notifier)
	reports := service.NewReportService(repo)
	contact := service.NewContactService(notifier)

	handler := httpapi.NewHandler(accounts, menu, orders, reports, contact, images, tokens)
	router := httpapi.NewRouter(handler, config.UploadsDir())
	httpapi.StartServer(config.ServerAddr(), router)
}
