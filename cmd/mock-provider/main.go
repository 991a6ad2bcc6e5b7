package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/hooplab/statprep/internal/fixture"
)

// Default configuration constants.
const (
	defaultAddr       = ":9090"
	defaultPlayers    = 120
	defaultSeed       = 42
	defaultLowGames   = 8
	defaultMalformed  = 2
	readHeaderTimeout = 5 * time.Second
)

func main() {
	var (
		addr      = flag.String("addr", defaultAddr, "Listen address")
		players   = flag.Int("players", defaultPlayers, "Number of synthetic players to serve")
		seed      = flag.Int64("seed", defaultSeed, "Deterministic generation seed")
		season    = flag.String("season", "2023-24", "Season identifier echoed in the payload")
		lowGames  = flag.Int("low-games", defaultLowGames, "Rows below the 15-game floor")
		malformed = flag.Int("malformed", defaultMalformed, "Rows with an unparsable percentage cell")
	)
	flag.Parse()

	gen := fixture.New(
		fixture.WithSeason(*season),
		fixture.WithPlayerCount(*players),
		fixture.WithSeed(*seed),
		fixture.WithLowGameRows(*lowGames),
		fixture.WithMalformedRows(*malformed),
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           fixture.Handler(gen),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	os.Stdout.WriteString("mock provider listening on " + *addr + "\n")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		os.Stderr.WriteString("mock provider failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
