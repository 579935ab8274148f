package deploy

// This file contains the deployment status checks: the latest GitHub
// Actions workflow run per repository, and a liveness probe against the
// Heroku app endpoint. Sequential calls, no retry or backoff.

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ActionsRun is the latest CI workflow run for a repository.
type ActionsRun struct {
	Status     string
	Conclusion string
	CreatedAt  string
	HeadSHA    string
}

type Checker struct {
	client *http.Client
	// APIBase is the GitHub API root, overridable in tests.
	APIBase string
}

func NewChecker() *Checker {
	return &Checker{
		client:  &http.Client{Timeout: 10 * time.Second},
		APIBase: "https://api.github.com",
	}
}

// AppURL returns the root URL of a Heroku app.
func AppURL(app string) string {
	return fmt.Sprintf("https://%s.herokuapp.com/", app)
}

type runsResponse struct {
	WorkflowRuns []struct {
		Status     string `json:"status"`
		Conclusion string `json:"conclusion"`
		CreatedAt  string `json:"created_at"`
		HeadSHA    string `json:"head_sha"`
	} `json:"workflow_runs"`
}

// CheckActions fetches the most recent workflow run for owner/repo.
func (c *Checker) CheckActions(owner, repo string) (*ActionsRun, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/runs?per_page=1", c.APIBase, owner, repo)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching workflow runs for %s: %w", repo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching workflow runs for %s: status %d", repo, resp.StatusCode)
	}

	var runs runsResponse
	if err := json.NewDecoder(resp.Body).Decode(&runs); err != nil {
		return nil, fmt.Errorf("parsing workflow runs for %s: %w", repo, err)
	}
	if len(runs.WorkflowRuns) == 0 {
		return nil, fmt.Errorf("no workflow runs for %s", repo)
	}

	run := runs.WorkflowRuns[0]
	sha := run.HeadSHA
	if len(sha) > 8 {
		sha = sha[:8]
	}
	return &ActionsRun{
		Status:     run.Status,
		Conclusion: run.Conclusion,
		CreatedAt:  run.CreatedAt,
		HeadSHA:    sha,
	}, nil
}

// CheckApp reports whether the app endpoint answers 200. Any error
// counts as offline.
func (c *Checker) CheckApp(url string) bool {
	resp, err := c.client.Get(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
