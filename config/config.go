package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config trả về giá trị biến môi trường, ưu tiên file .env
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("Error loading .env file")
	}
	return os.Getenv(key)
}
