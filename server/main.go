//go:build !js
// +build !js

package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/simukka/swarm-survivor/game"
)

//go:embed index.html
var indexHTML []byte

// Config is the server configuration. Values come from flags, which default
// to the environment (optionally loaded from a .env file).
type Config struct {
	Port      int
	StaticDir string
	Debug     bool
}

// loadEnv reads .env when present. A missing file is not an error.
func loadEnv(log zerolog.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
		return
	}
	log.Info().Msg("loaded environment from .env")
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func parseConfig(args []string) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", envInt("PORT", 8080), "HTTP server port")
	fs.StringVar(&cfg.StaticDir, "static", envString("STATIC_DIR", "."), "Directory to serve static files from")
	fs.BoolVar(&cfg.Debug, "debug", os.Getenv("DEBUG") != "", "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// presetInfo is the JSON view of a tuning preset.
type presetInfo struct {
	Name          string  `json:"name"`
	PlayerHealth  int     `json:"playerHealth"`
	PlayerSpeed   float64 `json:"playerSpeed"`
	FireMaxMs     int64   `json:"fireMaxMs"`
	FireMinMs     int64   `json:"fireMinMs"`
	SpawnMaxMs    int64   `json:"spawnMaxMs"`
	SpawnMinMs    int64   `json:"spawnMinMs"`
	RampWindowSec float64 `json:"rampWindowSec"`
	FirePollMs    int64   `json:"firePollMs"`
}

func listPresets() ([]presetInfo, error) {
	names := game.PresetNames()
	out := make([]presetInfo, 0, len(names))
	for _, name := range names {
		t, err := game.LoadTuning(name)
		if err != nil {
			return nil, err
		}
		out = append(out, presetInfo{
			Name:          name,
			PlayerHealth:  t.Player.Health,
			PlayerSpeed:   t.Player.Speed,
			FireMaxMs:     t.Fire.Max.Milliseconds(),
			FireMinMs:     t.Fire.Min.Milliseconds(),
			SpawnMaxMs:    t.Spawn.Max.Milliseconds(),
			SpawnMinMs:    t.Spawn.Min.Milliseconds(),
			RampWindowSec: t.RampWindow.Seconds(),
			FirePollMs:    t.FirePoll.Milliseconds(),
		})
	}
	return out, nil
}

// accessLog logs one line per request.
func accessLog(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func newMux(cfg Config, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Serve embedded index.html at root path
	static := http.FileServer(http.Dir(cfg.StaticDir))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		// Serve other static files (the compiled bundle) from disk
		static.ServeHTTP(w, r)
	})

	mux.HandleFunc("/api/presets", func(w http.ResponseWriter, r *http.Request) {
		presets, err := listPresets()
		if err != nil {
			log.Error().Err(err).Msg("listing presets")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"presets": presets,
		})
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return accessLog(log, mux)
}

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("component", "server").Logger()
	loadEnv(log)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.Debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Str("static", cfg.StaticDir).Msg("swarm survivor server starting")
	if err := http.ListenAndServe(addr, newMux(cfg, log)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
