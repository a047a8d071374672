package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/handlers"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/middleware"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// New wires services, handlers and middleware over store and returns the root handler.
// Request metrics are registered on reg and served from /metrics.
func New(store services.DocumentStore, logger *logrus.Logger, reg *prometheus.Registry) http.Handler {
	applicationHandler := handlers.NewApplicationHandler(services.NewApplicationService(store))
	boardHandler := handlers.NewBoardHandler(services.NewBoardService(store))
	eventHandler := handlers.NewEventHandler(services.NewEventService(store))
	announcementHandler := handlers.NewAnnouncementHandler(services.NewAnnouncementService(store))
	systemHandler := handlers.NewSystemHandler(services.NewDiagnosticsService(store))

	router := mux.NewRouter()

	router.HandleFunc("/", systemHandler.Root).Methods("GET", "HEAD")
	router.HandleFunc("/test", systemHandler.TestDatabase).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/applications", applicationHandler.CreateApplication).Methods("POST")
	api.HandleFunc("/applications", applicationHandler.GetApplications).Methods("GET")

	api.HandleFunc("/board", boardHandler.GetBoard).Methods("GET")
	api.HandleFunc("/board", boardHandler.AddBoardMember).Methods("POST")

	api.HandleFunc("/events", eventHandler.GetEvents).Methods("GET")
	api.HandleFunc("/events", eventHandler.CreateEvent).Methods("POST")

	api.HandleFunc("/announcements", announcementHandler.GetAnnouncements).Methods("GET")
	api.HandleFunc("/announcements", announcementHandler.CreateAnnouncement).Methods("POST")

	var handler http.Handler = router
	handler = middleware.Recover(logger)(handler)
	handler = middleware.NewMetrics(reg).Middleware(router)(handler)
	handler = middleware.RequestLogger(logger)(handler)
	handler = middleware.CORS(handler)
	return handler
}
