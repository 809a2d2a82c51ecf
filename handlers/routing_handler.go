package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mtriki/osmroute/graphs"
	"github.com/mtriki/osmroute/models"
	"github.com/mtriki/osmroute/services"
	"github.com/mtriki/osmroute/utils"
)

type RoutingHandler struct {
	routeService *services.RouteService
}

func NewRoutingHandler(routeService *services.RouteService) *RoutingHandler {
	return &RoutingHandler{
		routeService: routeService,
	}
}

func (h *RoutingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/routes", h.CalculateRoute).Methods("POST")
	router.HandleFunc("/api/routes/modes", h.GetAvailableModes).Methods("GET")
	router.HandleFunc("/api/maps", h.GetMaps).Methods("GET")
}

func (h *RoutingHandler) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	var req models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mode := utils.ParseTransportMode(req.Mode)
	if mode == models.Unknown {
		writeError(w, http.StatusBadRequest, "unsupported transport mode: "+req.Mode)
		return
	}

	mapName := req.Map
	if mapName == "" {
		names := h.routeService.Maps()
		if len(names) == 0 {
			writeError(w, http.StatusNotFound, "no maps loaded")
			return
		}
		mapName = names[0]
	}

	resp, err := h.routeService.ComputeRoute(r.Context(), mapName, mode, req.Origin, req.Destination)
	if err != nil {
		switch {
		case errors.Is(err, graphs.ErrEmptyGraph):
			writeError(w, http.StatusUnprocessableEntity, "endpoints cannot be resolved: "+err.Error())
		case errors.Is(err, services.ErrUnknownMap):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *RoutingHandler) GetAvailableModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ModesResponse{Modes: models.AllModes})
}

func (h *RoutingHandler) GetMaps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.MapsResponse{Maps: h.routeService.Maps()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
