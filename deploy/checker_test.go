package deploy

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testChecker(apiBase string) *Checker {
	return &Checker{
		client:  &http.Client{Timeout: 2 * time.Second},
		APIBase: apiBase,
	}
}

func TestCheckActions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/example-org/example-bot/actions/runs", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("per_page"))
		w.Write([]byte(`{
			"workflow_runs": [{
				"status": "completed",
				"conclusion": "success",
				"created_at": "2026-08-29T10:00:00Z",
				"head_sha": "0123456789abcdef0123456789abcdef01234567"
			}]
		}`))
	}))
	defer srv.Close()

	run, err := testChecker(srv.URL).CheckActions("example-org", "example-bot")
	require.NoError(t, err)
	require.Equal(t, "completed", run.Status)
	require.Equal(t, "success", run.Conclusion)
	require.Equal(t, "2026-08-29T10:00:00Z", run.CreatedAt)
	require.Equal(t, "01234567", run.HeadSHA)
}

func TestCheckActionsNoRuns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"workflow_runs": []}`))
	}))
	defer srv.Close()

	_, err := testChecker(srv.URL).CheckActions("example-org", "example-bot")
	require.Error(t, err)
}

func TestCheckActionsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testChecker(srv.URL).CheckActions("example-org", "example-bot")
	require.Error(t, err)
}

func TestCheckApp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testChecker(srv.URL)
	require.True(t, c.CheckApp(srv.URL))
}

func TestCheckAppOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	c := testChecker(srv.URL)
	require.False(t, c.CheckApp(srv.URL))

	// A dead endpoint also counts as offline.
	srv.Close()
	require.False(t, c.CheckApp(srv.URL))
}

func TestAppURL(t *testing.T) {
	require.Equal(t, "https://example-bot.herokuapp.com/", AppURL("example-bot"))
}
