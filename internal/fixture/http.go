package fixture

import (
	"net/http"
)

// statsPath is the only route the mock provider serves.
const statsPath = "/stats/leaguedashplayerstats"

// Handler serves the generator's payload the way the real provider would.
// The payload is rendered once per request so -seed changes take effect
// without restarting.
func Handler(g *Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != statsPath {
			http.NotFound(w, r)
			return
		}
		payload, err := g.Payload()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	})
}
