package main

import (
	"log"
	"os"
	"time"

	"github.com/SKxrda3/sb-voice/internal/cart"
	"github.com/SKxrda3/sb-voice/internal/catalog"
	"github.com/SKxrda3/sb-voice/internal/db"
	"github.com/SKxrda3/sb-voice/internal/dialog"
	"github.com/SKxrda3/sb-voice/internal/resolve"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CORE ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	committer := cart.NewPostgresCommitter(pgDB)
	resolver := resolve.NewResolver(nil)

	engine := dialog.NewEngine(catalogRepo, resolver, committer)

	sessions, err := dialog.NewLRUSessionStore(dialog.DefaultSessionCapacity)
	if err != nil {
		log.Fatal("❌ Session store init failed:", err)
	}

	// ───────────────────────── ROUTES ─────────────────────────
	handler := dialog.NewHandler(engine, sessions)

	api := r.Group("/api/v1")
	{
		api.POST("/start-conversation", handler.StartConversation)
		api.POST("/chat", handler.Chat)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
