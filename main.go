package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/mtriki/osmroute/handlers"
	"github.com/mtriki/osmroute/services"
)

func main() {
	addr := flag.String("addr", envOr("OSMROUTE_ADDR", ":8080"), "listen address")
	mapsDir := flag.String("maps", envOr("OSMROUTE_MAPS", "data/maps"), "directory with *.osm.gz map exports")
	flag.Parse()

	routeService := services.NewRouteService()
	if err := routeService.LoadMapsFromDirectory(*mapsDir); err != nil {
		log.Fatalf("could not load maps: %v", err)
	}
	if len(routeService.Maps()) == 0 {
		log.Printf("warning: no maps found in %s", *mapsDir)
	}

	router := mux.NewRouter()
	handlers.NewRoutingHandler(routeService).RegisterRoutes(router)

	log.Printf("route server listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
