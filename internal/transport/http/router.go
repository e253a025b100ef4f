package http

import (
	"net/http"
	"time"

	httpmw "github.com/MouhibAssas/HotelRoomsManagement/internal/transport/http/middleware"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/transport/ws"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig, h *Handler, wsServer *ws.Server) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(httpmw.Tracing)
	r.Use(httpmw.WithRequestLogger)
	r.Use(httpmw.RequestLogger)
	r.Use(middlewareChi.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// WS endpoint, без таймаута запроса
	if wsServer != nil {
		r.Get("/ws/rooms", wsServer.HandleWS)
	}

	r.Group(func(pr chi.Router) {
		pr.Use(middlewareChi.Timeout(cfg.RequestTimeout))

		// формат, который умеет читать удалённый fallback
		pr.Get("/api/rooms", h.Snapshot)

		pr.Route("/rooms", func(rm chi.Router) {
			rm.Get("/", h.ListRooms)
			rm.Post("/", h.CreateRoom)
			rm.Get("/stats", h.Stats)
			rm.Get("/defaults", h.Defaults)
			rm.Post("/initialize", h.Initialize)

			rm.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.GetRoom)
				rr.Patch("/", h.UpdateRoom)
				rr.Delete("/", h.DeleteRoom)
				rr.Put("/status", h.ChangeStatus)
			})
		})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
