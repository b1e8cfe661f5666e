package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定。DB接続情報はinfra/dbが環境変数から直接読む。
type Config struct {
	Port string // サーバーポート（8080）

	Telegram TelegramConfig
}

// 通知Bot用。どちらも必須で、欠けていたら起動できない。
type TelegramConfig struct {
	Token  string
	ChatID int64
}

// Loadは環境変数
func Load() (Config, error) {
	chatID, err := mustInt64("TELEGRAM_CHAT_ID")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getEnv("PORT", "8080"),
		Telegram: TelegramConfig{
			Token:  os.Getenv("TELEGRAM_TOKEN"),
			ChatID: chatID,
		},
	}

	//必須チェック
	if cfg.Telegram.Token == "" {
		return Config{}, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustInt64(key string) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
