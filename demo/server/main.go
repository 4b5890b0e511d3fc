package main

import (
	"log"
	"net/http"
	"path/filepath"

	flatgeograph "github.com/cristianob/flatgeographbuf"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type City struct {
	Name       string
	Country    string
	Longitude  float64
	Latitude   float64
	Population int
	Capital    bool
}

var cities = []City{
	{"Tokyo", "Japan", 139.6917, 35.6895, 13960000, true},
	{"New York", "United States", -73.9857, 40.7484, 8336817, false},
	{"London", "United Kingdom", -0.1276, 51.5074, 8982000, true},
	{"Paris", "France", 2.3522, 48.8566, 2161000, true},
	{"Beijing", "China", 116.4074, 39.9042, 21540000, true},
	{"Moscow", "Russia", 37.6173, 55.7558, 12615000, true},
	{"São Paulo", "Brazil", -46.6333, -23.5505, 12300000, false},
	{"Mumbai", "India", 72.8777, 19.0760, 12400000, false},
	{"Los Angeles", "United States", -118.2437, 34.0522, 3971883, false},
	{"Shanghai", "China", 121.4737, 31.2304, 24870000, false},
	{"Istanbul", "Turkey", 28.9784, 41.0082, 15520000, false},
	{"Buenos Aires", "Argentina", -58.3816, -34.6037, 3075646, true},
	{"Cairo", "Egypt", 31.2357, 30.0444, 10230000, true},
	{"Sydney", "Australia", 151.2093, -33.8688, 5312000, false},
	{"Berlin", "Germany", 13.4050, 52.5200, 3669491, true},
}

// flightRoute is one directed edge of the demo "flights between cities"
// graph: indices into the cities slice, plus a flight duration in hours.
type flightRoute struct {
	From, To int
	Hours    float64
	Airline  string
}

var routes = []flightRoute{
	{0, 9, 3.5, "ANA"},
	{1, 2, 7.5, "British Airways"},
	{2, 3, 1.5, "Air France"},
	{3, 5, 3.75, "Aeroflot"},
	{4, 9, 2.25, "China Eastern"},
	{1, 8, 5.5, "Delta"},
	{8, 7, 16.5, "United"},
	{2, 12, 5.0, "EgyptAir"},
	{12, 13, 11.75, "Qantas"},
	{5, 10, 3.25, "Turkish Airlines"},
	{10, 11, 16.5, "Turkish Airlines"},
	{6, 1, 9.75, "LATAM"},
	{14, 2, 1.75, "Lufthansa"},
}

func main() {
	fc := geojson.NewFeatureCollection()
	for _, city := range cities {
		f := geojson.NewFeature(orb.Point{city.Longitude, city.Latitude})
		f.Properties = geojson.Properties{
			"name":       city.Name,
			"country":    city.Country,
			"population": city.Population,
			"capital":    city.Capital,
		}
		fc.Append(f)
	}

	edges := make([]flatgeograph.Edge, len(routes))
	order := []string{"hours", "airline"}
	for i, r := range routes {
		edges[i] = flatgeograph.Edge{
			From: uint32(r.From),
			To:   uint32(r.To),
			Properties: flatgeograph.Properties{
				"hours":   r.Hours,
				"airline": r.Airline,
			},
			PropertyOrder: order,
		}
	}
	adjacency := &flatgeograph.AdjacencyList{Edges: edges}

	opts := &flatgeograph.SerializeOptions{
		Name:         "world_cities",
		Description:  "Major world cities with flight routes",
		IncludeIndex: false,
	}

	fggData, err := flatgeograph.Serialize(fc, adjacency, opts)
	if err != nil {
		log.Fatalf("Failed to create FlatGeoGraphBuf: %v", err)
	}

	clientDir := filepath.Join("..", "client")

	fs := http.FileServer(http.Dir(clientDir))
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data.fgg" {
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Write(fggData)
			return
		}
		fs.ServeHTTP(w, r)
	})

	log.Println("Server starting on http://localhost:8080")
	log.Println("Serving client files from:", clientDir)
	log.Fatal(http.ListenAndServe(":8080", nil))
}
