package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is built once in main and handed to everything that needs it; no
// package keeps its own view of the environment.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	UploadDir string
	PublicDir string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "shopadmin")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("UPLOAD_DIR", "upload/images")
	viper.SetDefault("PUBLIC_DIR", "public")
	viper.AutomaticEnv()

	return Config{
		Port:      viper.GetString("PORT"),
		MongoURI:  viper.GetString("MONGO_URI"),
		DBName:    viper.GetString("DB_NAME"),
		JWTSecret: viper.GetString("JWT_SECRET"),
		UploadDir: viper.GetString("UPLOAD_DIR"),
		PublicDir: viper.GetString("PUBLIC_DIR"),
	}
}
