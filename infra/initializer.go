package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}

// SecretKey はトークン署名用の秘密鍵を返す。
// 未設定のまま起動させない（安全でないデフォルト値へのフォールバックはしない）。
func SecretKey() string {
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		log.Fatal("SECRET_KEY is not set")
	}
	return secretKey
}
