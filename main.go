package main

import (
	"fmt"
	"log"

	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/router"
	"blog-api/internal/service"
	"blog-api/internal/store"
	"blog-api/internal/util"

	"gorm.io/gorm"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// JWT 密钥没配置时随机生成一个（重启后已签发的 token 会失效）
	if cfg.JWT.Secret == "" {
		secret, err := util.RandomString(32)
		if err != nil {
			log.Fatalf("generate jwt secret: %v", err)
		}
		cfg.JWT.Secret = secret
		log.Println("jwt.secret is empty, generated a random one; tokens will not survive restarts")
	}

	// pick persistence backend
	var (
		userStore store.UserStore
		postStore store.PostStore
		db        *gorm.DB
	)
	switch cfg.Database.Driver {
	case "memory":
		mem := store.NewMemoryStore()
		userStore, postStore = mem, mem
	default:
		db, err = database.Init(cfg.Database)
		if err != nil {
			log.Fatalf("init database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
		gs := store.NewGormStore(db)
		userStore, postStore = gs, gs
	}

	userService := service.NewUserService(userStore, cfg.Security.BcryptCost)
	postService := service.NewPostService(postStore, userService)
	authService := service.NewAuthService(userService, cfg.JWT.Secret, cfg.JWT.ExpireHours)

	r := router.Setup(cfg, db, authService, userService, postService)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
