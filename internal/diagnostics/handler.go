// Package diagnostics serves the liveness root and the store
// connectivity summary the operations frontend polls.
package diagnostics

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lawnmow/pkg/config"
	httputil "lawnmow/pkg/http"
	"lawnmow/pkg/logger"
)

const (
	statusConnected    = "connected"
	statusNotConnected = "not_connected"
	maxCollections     = 10
	probeTimeout       = 2 * time.Second
)

type RootResponse struct {
	Message string `json:"message"`
}

// TestResponse reports env var presence as booleans only; values never
// appear in the payload.
type TestResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	ConnectionStatus string   `json:"connection_status"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	Collections      []string `json:"collections"`
}

type Handler struct {
	mongoClient *mongo.Client
	dbName      string
	log         *logger.Logger
}

func NewHandler(mongoClient *mongo.Client, dbName string, log *logger.Logger) *Handler {
	return &Handler{
		mongoClient: mongoClient,
		dbName:      dbName,
		log:         log,
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, RootResponse{
		Message: "Lawn Mowing Backend is running",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Root", "error", err)
	}
}

func (h *Handler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	response := TestResponse{
		Backend:          "running",
		Database:         "not_available",
		ConnectionStatus: statusNotConnected,
		DatabaseURLSet:   os.Getenv(config.EnvMongoURI) != "",
		DatabaseNameSet:  os.Getenv(config.EnvMongoDatabaseName) != "",
		Collections:      []string{},
	}

	if h.mongoClient != nil {
		response.Database, response.ConnectionStatus, response.Collections = h.probeStore(r.Context())
	}

	if err := httputil.WriteJSON(w, http.StatusOK, response); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Test", "error", err)
	}
}

// probeStore pings the store and lists collection names. Each step
// either succeeds or is reported explicitly; nothing is swallowed.
func (h *Handler) probeStore(ctx context.Context) (database, connection string, collections []string) {
	collections = []string{}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		h.log.Error("Store ping failed", "error", err)
		return "unreachable", statusNotConnected, collections
	}

	names, err := h.mongoClient.Database(h.dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		h.log.Error("Failed to list collection names", "error", err)
		return "connected_with_errors", statusConnected, collections
	}

	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	return "connected", statusConnected, names
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/test", h.Test)
}
