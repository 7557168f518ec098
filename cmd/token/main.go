// Command token mints a bearer token for the API, signed with the configured JWT_SECRET
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"business-manager-backend/internal/auth"
	"business-manager-backend/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "user id carried by the token")
	email := flag.String("email", "", "optional email carried by the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		log.Fatal(err)
	}

	token, err := authService.GenerateJWT(*userID, *email, *ttl)
	if err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	fmt.Println(token)
}
