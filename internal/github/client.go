// Package github looks up pull request metadata through the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Client is an interface for the GitHub API calls this tool needs
type Client interface {
	// GetPullRequestTitle returns the title of a pull request
	GetPullRequestTitle(ctx context.Context, number int) (string, error)

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}

// RealClient implements Client using go-github
type RealClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient creates a client for the repository described by info
func NewClient(ctx context.Context, info *RepoInfo, token string) (*RealClient, error) {
	client, err := createGitHubClient(ctx, info.Hostname, token)
	if err != nil {
		return nil, err
	}

	return &RealClient{
		client: client,
		owner:  info.Owner,
		repo:   info.Repo,
	}, nil
}

// NewClientWithBaseURL creates a client talking to an explicit API base URL
func NewClientWithBaseURL(ctx context.Context, baseURL, owner, repo, token string) (*RealClient, error) {
	client := github.NewClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})))

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %s: %w", baseURL, err)
	}
	client.BaseURL = parsed

	return &RealClient{
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// GetOwnerRepo returns the repository owner and name
func (c *RealClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// GetPullRequestTitle returns the title of pull request number
func (c *RealClient) GetPullRequestTitle(ctx context.Context, number int) (string, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return "", fmt.Errorf("failed to get pull request #%d: %w", number, err)
	}
	return pr.GetTitle(), nil
}

// createGitHubClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != "github.com" {
		// GitHub Enterprise REST API lives under /api/v3/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}
