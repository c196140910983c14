package configs

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/joveey/sistem-bk-online/entity"
)

// SeedCounselor creates the first counselor account once, from env.
// The email is stored lowercased, the same normalization login applies.
func SeedCounselor() error {
	db := DB()
	email := strings.ToLower(strings.TrimSpace(getEnv("COUNSELOR_EMAIL", "")))
	pass := getEnv("COUNSELOR_PASSWORD", "")
	name := getEnv("COUNSELOR_NAME", "Counselor")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding counselor: missing COUNSELOR_EMAIL/COUNSELOR_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Counselor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ counselor already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	counselor := entity.Counselor{
		Email:    email,
		Name:     name,
		Password: string(hash),
	}
	return db.Create(&counselor).Error
}
