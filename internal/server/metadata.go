package server

// serviceMetadata describes this game service to the casino platform.
// Health endpoints return it verbatim and telemetry lifts it into
// game.* resource attributes.
var serviceMetadata = map[string]string{
	"version":      "2.1.0",
	"gameType":     "european-roulette",
	"gameCategory": "table-games",
	"complexity":   "high",
	"rtp":          "97.3%",
	"maxPayout":    "36x",
	"owner":        "Table-Games-Team",
	"technology":   "Go-Roulette-gRPC",
}

// Metadata returns a fresh copy of the service metadata.
func Metadata() map[string]string {
	m := make(map[string]string, len(serviceMetadata))
	for k, v := range serviceMetadata {
		m[k] = v
	}
	return m
}
