package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/campusconnect/campus-events-service/internal/system/config"
	"github.com/campusconnect/campus-events-service/internal/system/constants"
	"github.com/campusconnect/campus-events-service/internal/system/database/provider"
	"github.com/campusconnect/campus-events-service/internal/system/log"
	"github.com/campusconnect/campus-events-service/internal/system/managers"
	"github.com/campusconnect/campus-events-service/internal/system/storage"
)

func main() {
	serverHome := getServerHome()
	configFile := filepath.Join(serverHome, "config", "deployment.yaml")

	envFiles, _ := filepath.Glob(filepath.Join(serverHome, "config", "*.env"))
	_ = godotenv.Load(envFiles...)

	// Load the configuration file.
	serverConfig, err := config.LoadConfig(configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeRuntime(serverHome, serverConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	// Initialize logger.
	if err := log.Init(serverConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger().With(log.String("component", "server"))

	// Initialize the document store.
	if err := provider.InitDatabase(serverConfig.Mongo); err != nil {
		logger.Fatal("Failed to initialize the document store", log.Error(err))
	}

	// Initialize the blob store for event images.
	if err := storage.InitBlobStore(serverConfig.Storage); err != nil {
		logger.Fatal("Failed to initialize the blob store", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", serverConfig.Addr.Host, serverConfig.Addr.Port)
	handler := enableCORS(initMultiplexer(), serverConfig.Auth.CORSAllowedOrigins)

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("address", serverAddr), log.Error(err))
	}
	logger.Info("Campus events service started", log.String("address", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", resolveOrigin(r.Header.Get("Origin"), allowedOrigins))
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func resolveOrigin(origin string, allowedOrigins []string) string {

	if len(allowedOrigins) == 0 {
		return "*"
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) || allowed == "*" {
			return allowed
		}
	}
	return allowedOrigins[0]
}

func getServerHome() string {

	projectHome := ""
	projectHomeFlag := flag.String("serverHome", "", "Path to the server home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}
