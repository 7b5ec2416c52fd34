package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-resty/resty/v2"
	"github.com/google/go-github/v48/github"
	"github.com/omghumre/ui-generator-agent/common"
	"github.com/omghumre/ui-generator-agent/logger"
	"golang.org/x/oauth2"
)

// GitHub implements the Extractor interface for repositories hosted on GitHub
type GitHub struct {
	client   *github.Client
	raw      *resty.Client
	owner    string
	name     string
	apiToken string
	baseURL  string
	timeout  int
}

// NewGitHub creates a new GitHub extractor client
func NewGitHub(opts ...Option) (*GitHub, error) {
	gh := &GitHub{
		timeout: 60, // Default timeout
	}

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case APITokenOption:
			if token, ok := opt.Value.(string); ok {
				gh.apiToken = token
			}
		case TimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				gh.timeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok {
				gh.baseURL = baseURL
			}
		case RepositoryOption:
			if repository, ok := opt.Value.(Repository); ok {
				gh.owner = repository.Owner
				gh.name = repository.Name
			}
		}
	}

	// Validate required options
	if gh.apiToken == "" {
		return nil, fmt.Errorf("API token is required for GitHub")
	}
	if gh.owner == "" || gh.name == "" {
		return nil, fmt.Errorf("repository owner and name are required for GitHub")
	}

	// Create GitHub client
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: gh.apiToken})
	tc := oauth2.NewClient(context.Background(), ts)

	if gh.baseURL != "" {
		client, err := github.NewEnterpriseClient(gh.baseURL, gh.baseURL, tc)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub Enterprise client: %w", err)
		}
		gh.client = client
	} else {
		gh.client = github.NewClient(tc)
	}

	// Raw content fetches go through a retryable client
	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())
	gh.raw = resty.NewWithClient(retryClient.StandardClient())

	return gh, nil
}

// Info fetches basic metadata about the repository
func (gh *GitHub) Info(ctx context.Context) (Info, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(gh.timeout)*time.Second)
	defer cancel()

	repoData, _, err := gh.client.Repositories.Get(ctx, gh.owner, gh.name)
	if err != nil {
		return Info{}, fmt.Errorf("failed to fetch repository information: %w", err)
	}

	return Info{
		Name:        repoData.GetName(),
		Description: repoData.GetDescription(),
		Language:    repoData.GetLanguage(),
		Stars:       repoData.GetStargazersCount(),
		Forks:       repoData.GetForksCount(),
	}, nil
}

// FrontendFiles walks the repository contents tree breadth-first from the
// root, collecting files with a frontend extension. Failures on individual
// files or subtrees are logged and skipped so one bad path does not sink
// the whole extraction.
func (gh *GitHub) FrontendFiles(ctx context.Context) ([]File, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(gh.timeout)*time.Second)
	defer cancel()

	files := []File{}
	queue := []string{""}

	for len(queue) > 0 && len(files) < maxFiles {
		current := queue[0]
		queue = queue[1:]

		fileContent, dirContent, _, err := gh.client.Repositories.GetContents(ctx, gh.owner, gh.name, current, nil)
		if err != nil {
			if current == "" {
				return nil, fmt.Errorf("failed to list repository contents: %w", err)
			}
			logger.Warnf("Error processing %s: %v", current, err)
			continue
		}

		// A file path returns a single entry instead of a listing
		entries := dirContent
		if fileContent != nil {
			entries = []*github.RepositoryContent{fileContent}
		}

		for _, item := range entries {
			switch item.GetType() {
			case "dir":
				queue = append(queue, item.GetPath())
			case "file":
				if !IsFrontendFile(item.GetName()) {
					continue
				}
				if item.GetSize() > maxFileSize {
					logger.Infof("Skipping %s: %s exceeds the %s limit",
						item.GetPath(), humanize.Bytes(uint64(item.GetSize())), humanize.Bytes(uint64(maxFileSize)))
					continue
				}

				content, err := gh.fetchRawContent(ctx, item.GetDownloadURL())
				if err != nil {
					logger.Warnf("Couldn't fetch content for %s: %v", item.GetPath(), err)
					continue
				}

				logger.Debugf("Found: %s", item.GetPath())
				files = append(files, File{
					Path:    item.GetPath(),
					Content: content,
					Type:    fileExtension(item.GetName()),
				})

				if len(files) >= maxFiles {
					logger.Infof("Reached the %d file limit, stopping extraction", maxFiles)
					break
				}
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no frontend files found in %s/%s", gh.owner, gh.name)
	}

	return files, nil
}

// fetchRawContent downloads a file through its raw download URL
func (gh *GitHub) fetchRawContent(ctx context.Context, downloadURL string) (string, error) {
	if downloadURL == "" {
		return "", fmt.Errorf("file has no download URL")
	}

	resp, err := gh.raw.R().SetContext(ctx).Get(downloadURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch file content: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("failed to fetch file content: status %d", resp.StatusCode())
	}

	return string(resp.Body()), nil
}
