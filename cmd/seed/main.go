package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"banner-chat-be/internal/model"
	"banner-chat-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seedPassword  = "testpassword"
	seedBatchSize = 500
)

func main() {
	userCount := flag.Int("users", 5, "number of users to create")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-users N] <chat_count>\n", os.Args[0])
		os.Exit(1)
	}

	chatCount, err := strconv.Atoi(flag.Arg(0))
	if err != nil || chatCount < 1 {
		log.Fatalf("Error: chat_count must be a positive integer, got %q", flag.Arg(0))
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding %d users and %d chats...", *userCount, chatCount)

	users, err := seedUsers(db, *userCount)
	if err != nil {
		log.Fatalf("Error: Failed to seed users: %v", err)
	}
	color.Green("Created %d users", len(users))

	created, err := seedChats(db, users, chatCount)
	if err != nil {
		log.Fatalf("Error: Failed to seed chats: %v", err)
	}
	color.Green("Created %d chats", created)

	color.Cyan("Seeding completed!")
}

func seedUsers(db *gorm.DB, count int) ([]model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, count)
	for i := 0; i < count; i++ {
		// Random suffix keeps reruns collision free.
		suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
		users = append(users, model.User{
			Username:     fmt.Sprintf("testuser_%d_%s", i, suffix),
			PasswordHash: string(hash),
			IsStaff:      false,
			IsSuperuser:  false,
		})
	}

	if err := db.CreateInBatches(&users, seedBatchSize).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func seedChats(db *gorm.DB, users []model.User, count int) (int, error) {
	chats := make([]model.Chat, 0, count)
	for i := 0; i < count; i++ {
		owner := users[rand.Intn(len(users))]
		chats = append(chats, model.Chat{
			UserId: owner.Id,
		})
	}

	if err := db.CreateInBatches(&chats, seedBatchSize).Error; err != nil {
		return 0, err
	}
	return len(chats), nil
}
