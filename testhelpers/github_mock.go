package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Titles maps pull request numbers to titles; unknown numbers return 404
	Titles map[int]string
	// Owner and Repo for the mock server
	Owner string
	Repo  string

	mu       sync.Mutex
	requests []int
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Titles: make(map[int]string),
		Owner:  "owner",
		Repo:   "repo",
	}
}

// Requests returns the pull request numbers fetched so far, in order
func (c *MockGitHubServerConfig) Requests() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.requests...)
}

// NewMockGitHubServer creates an httptest server that serves GET /repos/{owner}/{repo}/pulls/{number}
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	t.Helper()
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	prefix := "/repos/" + config.Owner + "/" + config.Repo + "/pulls/"

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, prefix) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			return
		}

		number, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, prefix))
		if err != nil {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			return
		}

		config.mu.Lock()
		config.requests = append(config.requests, number)
		config.mu.Unlock()

		title, ok := config.Titles[number]
		if !ok {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(&github.PullRequest{
			Number: github.Int(number),
			Title:  github.String(title),
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
