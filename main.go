package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"restaurant-foh/config"
	"restaurant-foh/handlers"
	"restaurant-foh/identity"
	"restaurant-foh/inventory"
	"restaurant-foh/middleware"
	"restaurant-foh/routes"
	"restaurant-foh/statemachine"
	"restaurant-foh/storage"
	"restaurant-foh/store"
)

func main() {
	cfg, err := config.Load()
	log := newLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	log.Info().Str("path", cfg.DatabasePath).Msg("database connected and migrated")

	seed, err := config.LoadSeed(cfg.SeedPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed")
	}
	initial, err := seed.InitialState(time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("build initial state")
	}

	archive := storage.OrderArchive{Docs: storage.NewDocuments(db)}
	orders := store.New(
		statemachine.NewReducer(cfg.Policy),
		initial,
		store.WithArchiver(archive),
		store.WithLogger(log.With().Str("component", "store").Logger()),
	)

	svc := identity.NewService(db, cfg.JWTSecret, cfg.TokenTTL)
	session := identity.NewSession(svc)
	gate := identity.NewGate(session)
	defer gate.Close()
	gate.OnChange(func(st identity.State) {
		if st.CurrentUser == nil {
			log.Info().Msg("terminal signed out")
			return
		}
		log.Info().Str("user_id", st.CurrentUser.ID).Str("role", string(st.CurrentUser.Role)).Msg("terminal signed in")
	})

	h := &handlers.Handler{
		Store:             orders,
		Identity:          svc,
		Session:           session,
		Gate:              gate,
		Inventory:         inventory.NewBoard(seed.SupplyNeeds, seed.Deliveries),
		Archive:           archive,
		StrictTransitions: cfg.StrictTransitions,
		Log:               log.With().Str("component", "http").Logger(),
	}
	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("register validators")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(h.Log))

	// CORS for the front-of-house web client
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Front-of-House API",
			"version": "1.0.0",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Restaurant Front-of-House API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"customer", "kitchen", "reception", "owner", "supplier", "admin"},
		})
	})

	routes.SetupRoutes(r, h)

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("start server")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if cfg.GinMode == gin.ReleaseMode {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}
