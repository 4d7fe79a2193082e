package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"overlayServer/api"
	"overlayServer/config"
	"overlayServer/engine"
	"overlayServer/state"
	"overlayServer/ws"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables")
	} else {
		log.Println("✅ Loaded environment variables from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Config error:", err)
	}

	// Build the shared-economy engine
	eng := engine.New(engine.Params{
		GateThreshold:          config.VideoGateThreshold,
		ClickReward:            config.ClickReward,
		Catalog:                config.DefaultCatalog(),
		BlackjackWinMultiplier: config.BlackjackWinMultiplier,
		DealerStandsAt:         config.DealerStandsAt,
		Race: engine.RaceParams{
			Horses:        config.HorseNames,
			FinishLine:    config.RaceFinishLine,
			TickInterval:  config.RaceTickInterval,
			StepMin:       config.HorseStepMin,
			StepMax:       config.HorseStepMax,
			WinMultiplier: config.RaceWinMultiplier,
		},
	})

	overlay := state.NewOverlayState(
		time.Now(),
		cfg.SalaryPerHour,
		config.EncourageMessages,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	// Wire broadcasts before the first timer can fire
	ws.Init(eng, overlay)
	api.Init(eng, overlay)

	eng.Start(context.Background())

	// WebSocket endpoint
	http.HandleFunc("/ws", ws.HandleOverlayWS)

	// API endpoints
	http.HandleFunc("/api/health", api.HandleHealthCheck)
	http.HandleFunc("/api/balance", api.HandleGetBalance)
	http.HandleFunc("/api/shop", api.HandleGetShop)
	http.HandleFunc("/api/race", api.HandleGetRace)
	http.HandleFunc("/api/pythagore", api.HandlePythagore)

	addr := cfg.Addr()
	log.Printf("🚀 Overlay server starting on %s", addr)
	log.Println("")
	log.Println("📡 WebSocket Endpoint:")
	log.Println("   ws://localhost:" + cfg.Port + "/ws - Unified overlay WebSocket")
	log.Println("   - Subscribe to 'economy' for balance, shop and video gate")
	log.Println("   - Subscribe to 'blackjack' for the card table")
	log.Println("   - Subscribe to 'race' for the horse race")
	log.Println("   - Subscribe to 'overlay' for salary meter and messages")
	log.Println("")
	log.Println("🔌 API Endpoints:")
	log.Println("   GET  /api/health - Health check")
	log.Println("   GET  /api/balance - Current cookie balance")
	log.Println("   GET  /api/shop - Upgrade catalog and inventory")
	log.Println("   GET  /api/race - Horse roster and last result")
	log.Println("   GET  /api/pythagore - Mini-calculator √(a²+b²)")
	log.Println("")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("❌ Server error:", err)
	}
}
