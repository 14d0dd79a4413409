package misc

import (
	"encoding/json"
	"net/http"

	"github.com/fitforge/webfront/internal/auth"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	versionInfo string
	cache       *freecache.Cache
	admin       *auth.Admin
}

func NewHandler(
	versionInfo string,
	cache *freecache.Cache,
	admin *auth.Admin,
) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		cache:       cache,
		admin:       admin,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/ops/cache/purge", handler.handleCachePurge).Methods("POST").Name("cache-purge")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleCachePurge drops every cached catalog entry (program lists,
// muscle presets). Admin credentials are required, the session token
// alone does not grant it.
func (handler *Handler) handleCachePurge(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.cachePurge")
	defer span.End()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, handler.admin.PasswordHash) {
		log.Tracef("[password] failed cache purge attempt by: %s", req.Username)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}
	if req.Username != handler.admin.Username {
		log.Tracef("[username] failed cache purge attempt by: %s", req.Username)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}

	entries := handler.cache.EntryCount()
	handler.cache.Clear()
	log.Warnf("cache purged by %s, %d entries dropped", req.Username, entries)

	pkg.WriteJSONResponseOK(w, `{"purged": true}`)
}
