// Package server exposes the generation API and the embedded web
// front-end over HTTP.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/omghumre/ui-generator-agent/common"
	"github.com/omghumre/ui-generator-agent/llm"
	"github.com/omghumre/ui-generator-agent/logger"
	"github.com/omghumre/ui-generator-agent/repo"
	"github.com/omghumre/ui-generator-agent/session"
)

// ExtractorFactory builds a repository extractor for a request's repo URL.
// It is a field so handler tests can substitute a fake.
type ExtractorFactory func(repoURL string) (repo.Extractor, error)

// RelayFactory builds a relay client for a request that overrides the
// process-level provider or model. Same test-seam idea as ExtractorFactory.
type RelayFactory func(providerName, modelName string) (llm.LLM, error)

// Server wires the relay, the session store and the HTTP surface together
type Server struct {
	llm          llm.LLM
	store        *session.Store
	settings     common.Settings
	providerName string
	modelName    string
	newExtractor ExtractorFactory
	newRelay     RelayFactory
}

// New creates a server around the given relay client and session store
func New(llmClient llm.LLM, store *session.Store, settings common.Settings, providerName, modelName string) *Server {
	return &Server{
		llm:          llmClient,
		store:        store,
		settings:     settings,
		providerName: providerName,
		modelName:    modelName,
		newExtractor: defaultExtractorFactory,
		newRelay: func(providerName, modelName string) (llm.LLM, error) {
			return llm.NewLLM(providerName, modelName,
				llm.WithMaxTokens(settings.Generation.MaxTokens),
				llm.WithTemperature(settings.Generation.Temperature),
			)
		},
	}
}

func defaultExtractorFactory(repoURL string) (repo.Extractor, error) {
	owner, name, err := repo.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	return repo.NewExtractor(repo.ProviderGitHub, repo.WithRepository(owner, name))
}

// Router builds the HTTP route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(corsMiddleware, loggingMiddleware)

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	api.HandleFunc("/improve", s.handleImprove).Methods(http.MethodPost)
	api.HandleFunc("/frameworks", s.handleFrameworks).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/download", s.handleDownload).Methods(http.MethodGet)

	return router
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
		// WriteTimeout must cover a full relay round trip
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Infof("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	s.store.Close()
	logger.Info("Server stopped")

	return nil
}
