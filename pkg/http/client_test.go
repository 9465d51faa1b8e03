package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type payload struct {
	Name string `json:"name"`
}

func TestExecuteDecodesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Thane,IN" {
			t.Errorf("q = %q", got)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"name":"Thane"}`))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL+"/", ClientOptions{ReadTimeout: time.Second})
	resp, err := client.Request().
		WithContext(context.Background()).
		WithPath("data/2.5/weather").
		WithQueryParams(map[string]string{"q": "Thane,IN"}).
		WithSuccessResp(&payload{}).
		Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Success.(*payload).Name; got != "Thane" {
		t.Errorf("name = %q", got)
	}
}

func TestExecuteReturnsStatusErrorWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{})
	resp, err := client.Request().WithPath("/weather").WithSuccessResp(&payload{}).Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d", statusErr.StatusCode)
	}
	if string(statusErr.Body) != `{"cod":401,"message":"Invalid API key"}` {
		t.Errorf("body = %s", statusErr.Body)
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("response should carry the status, got %#v", resp)
	}
}

func TestExecuteHonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewHttpClient(srv.URL, ClientOptions{ReadTimeout: 5 * time.Second})
	resp, err := client.Request().WithContext(ctx).WithPath("/slow").Execute()
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if resp != nil {
		t.Errorf("transport failures should not return a response")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestRedactURLHidesAppID(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://example.com/weather?q=Thane&appid=secret", nil)
	if got := redactURL(req.URL); got != "https://example.com/weather?appid=%2A%2A%2A&q=Thane" {
		t.Errorf("redactURL = %s", got)
	}
}
