package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInitAndFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	body := `
weather:
  save:
    done: "saved sample {0} for {1}"
  point: "point {0}"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetMessage("weather.save.done", int64(7), "Thane,IN"); got != "saved sample 7 for Thane,IN" {
		t.Errorf("got %q", got)
	}
	if got := GetMessage("weather.point", map[string]float64{"lat": 1.5}); got != `point {"lat":1.5}` {
		t.Errorf("got %q", got)
	}
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	if got := GetMessage("does.not.exist"); got != "does.not.exist" {
		t.Errorf("got %q", got)
	}
}

func TestRegisterFormatsErrors(t *testing.T) {
	Register("test.failure", "failed: {0}")
	if got := GetMessage("test.failure", errors.New("boom")); got != "failed: boom" {
		t.Errorf("got %q", got)
	}
}
