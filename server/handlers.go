package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/omghumre/ui-generator-agent/common"
	"github.com/omghumre/ui-generator-agent/llm"
	"github.com/omghumre/ui-generator-agent/logger"
	"github.com/omghumre/ui-generator-agent/prompt"
	"github.com/omghumre/ui-generator-agent/session"
	"github.com/thedevsaddam/govalidator"
)

type generateRequest struct {
	Description string `json:"description"`
	Framework   string `json:"framework"`
	RepoURL     string `json:"repo_url"`
	SessionID   string `json:"session_id"`
	Provider    string `json:"provider"`
	Model       string `json:"model"`
}

type generateResponse struct {
	SessionID string `json:"session_id"`
	Version   int    `json:"version"`
	Framework string `json:"framework"`
	Model     string `json:"model"`
	Code      string `json:"code"`
	Raw       string `json:"raw,omitempty"`
}

type improveRequest struct {
	SessionID  string   `json:"session_id"`
	Feedback   string   `json:"feedback"`
	Categories []string `json:"categories"`
}

// handleGenerate runs one relay call: template fill, outbound request,
// code-fence extraction, version append. An empty description is rejected
// before anything goes out on the wire.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	rules := govalidator.MapData{
		"description": []string{"required"},
	}
	v := govalidator.New(govalidator.Options{
		Request: r,
		Data:    &req,
		Rules:   rules,
	})
	if e := v.ValidateJSON(); len(e) > 0 {
		writeJSONResponse(w, http.StatusBadRequest, map[string]interface{}{"validation_error": e})
		return
	}

	frameworkName := req.Framework
	if frameworkName == "" {
		frameworkName = s.settings.Generation.Framework
	}
	fw, ok := prompt.LookupFramework(frameworkName)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown framework: %s", frameworkName))
		return
	}

	// Per-request provider/model override, validated before anything
	// goes out on the wire
	relay, modelName, err := s.resolveRelay(req.Provider, req.Model)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Optional repository context
	repoContext := ""
	if req.RepoURL != "" {
		extractor, err := s.newExtractor(req.RepoURL)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		info, err := extractor.Info(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusBadGateway, fmt.Sprintf("repository extraction failed: %v", err))
			return
		}
		files, err := extractor.FrontendFiles(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusBadGateway, fmt.Sprintf("repository extraction failed: %v", err))
			return
		}
		repoContext = prompt.GetRepoContextPrompt(info, files)
	}

	sess, err := s.resolveSession(req.SessionID, fw.Name)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := relay.Prompt(llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(s.settings),
		UserPrompt:   prompt.GetGeneratePrompt(req.Description, fw),
		RepoContext:  repoContext,
	})
	if resp.Error != nil {
		logger.Errorf("Generation failed: %v", resp.Error)
		writeJSONError(w, http.StatusBadGateway, fmt.Sprintf("generation failed: %v", resp.Error))
		return
	}

	block, _ := common.ExtractCodeBlock(resp.Content)
	version, err := s.store.AddVersion(sess.ID, fw.Name, block.Body, resp.Content, modelName)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, s.versionResponse(sess.ID, version))
}

// versionResponse shapes a generated version for the API. The raw provider
// text is included unless the settings turn it off.
func (s *Server) versionResponse(sessionID string, version session.Version) generateResponse {
	out := generateResponse{
		SessionID: sessionID,
		Version:   version.Number,
		Framework: version.Framework,
		Model:     version.Model,
		Code:      version.Code,
	}
	if s.settings.Generation.IncludeRaw {
		out.Raw = version.Raw
	}
	return out
}

// resolveRelay returns the process-level relay client, or builds one when
// the request overrides the provider or model
func (s *Server) resolveRelay(providerName, modelName string) (llm.LLM, string, error) {
	if providerName == "" && modelName == "" {
		return s.llm, s.modelName, nil
	}

	if providerName == "" {
		providerName = s.providerName
	}
	if modelName == "" {
		modelName = llm.DefaultModel(providerName)
	}

	relay, err := s.newRelay(providerName, modelName)
	if err != nil {
		return nil, "", err
	}
	return relay, modelName, nil
}

// resolveSession returns the named session or starts a fresh one
func (s *Server) resolveSession(id, framework string) (*session.Session, error) {
	if id == "" {
		return s.store.Create(framework), nil
	}
	return s.store.Get(id)
}

// handleImprove runs a refinement round against a session's latest version
func (s *Server) handleImprove(w http.ResponseWriter, r *http.Request) {
	var req improveRequest
	rules := govalidator.MapData{
		"session_id": []string{"required"},
		"feedback":   []string{"required"},
	}
	v := govalidator.New(govalidator.Options{
		Request: r,
		Data:    &req,
		Rules:   rules,
	})
	if e := v.ValidateJSON(); len(e) > 0 {
		writeJSONResponse(w, http.StatusBadRequest, map[string]interface{}{"validation_error": e})
		return
	}

	sess, err := s.store.Get(req.SessionID)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	latest, ok := sess.LatestVersion()
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "session has no version to improve")
		return
	}

	// Improvements target the framework the latest version was generated
	// for, which can differ from the one the session started with
	fw, ok := prompt.LookupFramework(latest.Framework)
	if !ok {
		fw, _ = prompt.LookupFramework(prompt.DefaultFramework)
	}

	resp := s.llm.Prompt(llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(s.settings),
		UserPrompt:   prompt.GetImprovePrompt(req.Feedback, req.Categories),
		PriorCode:    prompt.GetPriorCodePrompt(latest.Code, fw),
	})
	if resp.Error != nil {
		logger.Errorf("Improvement failed: %v", resp.Error)
		writeJSONError(w, http.StatusBadGateway, fmt.Sprintf("improvement failed: %v", resp.Error))
		return
	}

	if err := s.store.AddFeedback(sess.ID, session.FeedbackEntry{
		Version:    latest.Number,
		Categories: req.Categories,
		Details:    req.Feedback,
	}); err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	block, _ := common.ExtractCodeBlock(resp.Content)
	version, err := s.store.AddVersion(sess.ID, fw.Name, block.Body, resp.Content, s.modelName)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, s.versionResponse(sess.ID, version))
}

// handleGetSession returns the full session history
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sess, err := s.store.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, sess)
}

// handleDeleteSession implements "Start Over"
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.store.Delete(id); err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleDownload serves a generated version as a file attachment named
// generated_ui_v{N}.{ext}; the latest version when none is named
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sess, err := s.store.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	var version session.Version
	if raw := r.URL.Query().Get("version"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "version must be a number")
			return
		}
		v, ok := sess.VersionByNumber(number)
		if !ok {
			writeJSONError(w, http.StatusNotFound, fmt.Sprintf("version %d not found", number))
			return
		}
		version = v
	} else {
		v, ok := sess.LatestVersion()
		if !ok {
			writeJSONError(w, http.StatusNotFound, "session has no generated version")
			return
		}
		version = v
	}

	// The filename extension follows the framework the requested version
	// was generated for, not whatever the session targets now
	extension := "txt"
	if fw, ok := prompt.LookupFramework(version.Framework); ok {
		extension = fw.Extension
	}

	filename := fmt.Sprintf("generated_ui_v%d.%s", version.Number, extension)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version.Code)); err != nil {
		logger.Errorf("Failed to write download body: %v", err)
	}
}

// handleFrameworks lists the supported target frameworks
func (s *Server) handleFrameworks(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, prompt.Frameworks())
}

// handleHealth is the liveness probe
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ui-generator-agent",
	})
}
