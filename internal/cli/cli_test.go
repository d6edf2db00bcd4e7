package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/samvad-hq/samvad-talk-courier/pkg/discourse"
	"github.com/samvad-hq/samvad-talk-courier/pkg/httpclient"
)

func testClient(t *testing.T, host string) *discourse.Client {
	t.Helper()
	client, err := discourse.NewClient(
		discourse.Config{Host: host, APIUsername: "system", APIKey: "secret"},
		httpclient.NewRestyClient(2*time.Second),
		nil,
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestRunUserPrintsDecodedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"user":{"username":"alice"}}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	if err := runUser(context.Background(), testClient(t, srv.URL), &out, "alice"); err != nil {
		t.Fatalf("runUser: %v", err)
	}
	if !strings.Contains(out.String(), `"username": "alice"`) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunBadgeNoMatchIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"badges":[{"name":"welcome"}]}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := runBadge(context.Background(), testClient(t, srv.URL), &out, "Nonexistent")
	if err == nil {
		t.Fatalf("expected error for missing badge")
	}
	if !strings.Contains(err.Error(), "Nonexistent") {
		t.Fatalf("error should name the badge: %v", err)
	}
}

func TestRunVerifyPrintsMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"user":{"username":"system"}}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	if err := runVerify(context.Background(), testClient(t, srv.URL), &out); err != nil {
		t.Fatalf("runVerify: %v", err)
	}
	if out.String() != "verified\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
