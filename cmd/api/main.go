package main

import (
	"os"

	"eato/internal/config"
	"eato/internal/handler"
	"eato/internal/infra/db"
	infraRepo "eato/internal/infra/repository"
	"eato/internal/logger"
	"eato/internal/notifier"
	"eato/internal/server"
	"eato/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	log := logger.New("eato-api")

	cfg, err := config.Load()
	if err != nil {
		log.Error("startup", "config load failed", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Error("startup", "db connect failed", err)
		os.Exit(1)
	}

	//スキーマ作成は起動時に一度だけ明示的に行う
	if err := db.Migrate(gormDB); err != nil {
		log.Error("startup", "db migrate failed", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	menuRepo := infraRepo.NewMenuGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//通知Bot（読み取り専用でrepoを使う）。初期化失敗は通知だけ止まる。
	tg := notifier.NewTelegram(
		cfg.Telegram.Token,
		cfg.Telegram.ChatID,
		orderRepo,
		orderItemRepo,
		menuRepo,
		log,
	)

	//Usecase生成
	menuUC := usecase.NewMenuUsecase(menuRepo)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, orderItemRepo, tg)
	inventoryUC := usecase.NewInventoryUsecase(inventoryRepo)

	//Handler生成
	menuH := handler.NewMenuHandler(menuUC)
	orderH := handler.NewOrderHandler(orderUC)
	inventoryH := handler.NewInventoryHandler(inventoryUC)

	//Server起動
	addr := ":" + cfg.Port
	log.Info("startup", "listening on "+addr)

	if err := server.Start(addr, menuH, orderH, inventoryH); err != nil {
		log.Error("startup", "server stopped", err)
		os.Exit(1)
	}
}
