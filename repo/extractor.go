// Package repo extracts frontend files and metadata from a source
// repository so they can be embedded in the generation prompt.
package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// ProviderGitHub extracts from a repository hosted on GitHub
	ProviderGitHub = "github"
	// ProviderLocal extracts from a directory on the local filesystem
	ProviderLocal = "local"
)

const (
	// maxFileSize is the per-file cap; larger files are skipped so a
	// single asset cannot blow the prompt
	maxFileSize = 128 * 1024
	// maxFiles caps how many files are collected per extraction
	maxFiles = 50
)

// frontendExtensions are the file types embedded into the prompt
var frontendExtensions = map[string]bool{
	".html": true,
	".css":  true,
	".js":   true,
	".jsx":  true,
	".tsx":  true,
	".vue":  true,
	".py":   true,
}

// IsFrontendFile reports whether the file name has a frontend extension
func IsFrontendFile(name string) bool {
	return frontendExtensions[fileExtension(name)]
}

func fileExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// File is a single repository file collected for prompt context
type File struct {
	Path    string
	Content string
	Type    string
}

// Info holds basic repository metadata shown to the user and embedded
// in the prompt
type Info struct {
	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
}

// String renders the metadata as a prompt section
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString("Repository: " + i.Name + "\n")
	if i.Description != "" {
		sb.WriteString("Description: " + i.Description + "\n")
	}
	if i.Language != "" {
		sb.WriteString("Primary language: " + i.Language + "\n")
	}
	sb.WriteString(fmt.Sprintf("Stars: %s, Forks: %s",
		humanize.Comma(int64(i.Stars)), humanize.Comma(int64(i.Forks))))
	return sb.String()
}

// OptionType defines the type of option for extractor providers
type OptionType string

// Available option types
const (
	APITokenOption   OptionType = "api_token"
	TimeoutOption    OptionType = "timeout"
	BaseURLOption    OptionType = "base_url"
	RepositoryOption OptionType = "repository"
	PathOption       OptionType = "path"
)

// Option represents a generic configuration option for any extractor provider
type Option struct {
	Type  OptionType
	Value any
}

// Repository identifies a hosted repository by owner and name
type Repository struct {
	Owner string
	Name  string
}

// WithAPIToken creates an option to set the API token
func WithAPIToken(token string) Option {
	return Option{
		Type:  APITokenOption,
		Value: token,
	}
}

// WithTimeout creates an option to set the API timeout in seconds
func WithTimeout(timeout int) Option {
	return Option{
		Type:  TimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to set the base URL for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// WithRepository creates an option to set the target repository
func WithRepository(owner, name string) Option {
	return Option{
		Type:  RepositoryOption,
		Value: Repository{Owner: owner, Name: name},
	}
}

// WithPath creates an option to set the local directory to extract from
func WithPath(path string) Option {
	return Option{
		Type:  PathOption,
		Value: path,
	}
}

// Extractor defines the interface for pulling prompt context out of a
// source repository
type Extractor interface {
	// Info returns basic metadata about the repository
	Info(ctx context.Context) (Info, error)
	// FrontendFiles collects the frontend files to embed in the prompt
	FrontendFiles(ctx context.Context) ([]File, error)
}

// getAPIToken retrieves the API token from environment variables
func getAPIToken() (string, error) {
	apiToken := os.Getenv("GITHUB_TOKEN")
	if apiToken == "" {
		return "", fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}
	return apiToken, nil
}

// NewExtractor creates a new extractor for the named provider
func NewExtractor(providerName string, opts ...Option) (Extractor, error) {
	var extractor Extractor
	var err error

	options := []Option{
		WithTimeout(60),
	}

	if providerName == ProviderGitHub {
		apiToken, err := getAPIToken()
		if err != nil {
			return nil, err
		}
		options = append(options, WithAPIToken(apiToken))

		// Check for GitHub Enterprise URL
		if githubURL := os.Getenv("GITHUB_API_URL"); githubURL != "" {
			options = append(options, WithBaseURL(githubURL))
		}
	}

	options = append(options, opts...)

	switch providerName {
	case ProviderGitHub:
		extractor, err = NewGitHub(options...)
	case ProviderLocal:
		extractor, err = NewLocal(options...)
	default:
		err = fmt.Errorf("unsupported extractor provider: %s", providerName)
	}

	return extractor, err
}

// ParseRepoURL splits a GitHub repository URL into owner and name
func ParseRepoURL(repoURL string) (string, string, error) {
	const marker = "github.com/"

	idx := strings.Index(repoURL, marker)
	if idx == -1 {
		return "", "", fmt.Errorf("not a GitHub repository URL: %s", repoURL)
	}

	parts := strings.Split(strings.Trim(repoURL[idx+len(marker):], "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository URL must contain owner and name: %s", repoURL)
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
