package codegen

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/tkdraft/internal/layout"
)

func TestClientRoundTripAgainstServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewServer(log.New(io.Discard, "", 0)).Handler())
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/generate_code", 2*time.Second)
	code, err := c.Generate(context.Background(), []layout.Widget{
		{ID: "w1", Kind: layout.KindLabel, Text: "hi", X: 0, Y: 0, Width: 100, Height: 30},
	})
	require.NoError(t, err)
	require.Contains(t, code, "w1 = tk.Label(root, text='hi')")
}

func TestClientSurfacesDetailMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)
	_, err := c.Generate(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestClientGenericMessageWithoutDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)
	_, err := c.Generate(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "HTTP 500")
}

func TestClientTransportError(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1/generate_code", 500*time.Millisecond)
	_, err := c.Generate(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unreachable")
}

func TestClientSendsInsertionOrder(t *testing.T) {
	t.Parallel()

	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "ok"})
	}))
	t.Cleanup(srv.Close)

	widgets := []layout.Widget{
		{ID: "w1", Kind: layout.KindButton},
		{ID: "w2", Kind: layout.KindLabel},
		{ID: "w3", Kind: layout.KindFrame},
	}
	c := NewClient(srv.URL, time.Second)
	_, err := c.Generate(context.Background(), widgets)
	require.NoError(t, err)

	require.Len(t, got.Widgets, 3)
	for i, w := range got.Widgets {
		require.Equal(t, widgets[i].ID, w.ID)
	}
}

func TestSaveScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "generated_gui.py")
	require.NoError(t, SaveScript(path, "print('hi')\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "print('hi')\n", string(data))
}
