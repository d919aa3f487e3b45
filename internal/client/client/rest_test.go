package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

type recorder struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (r *recorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.reqs...)
}

// newTestServer serves a fixed status/body for every request and records
// what it received.
func newTestServer(t *testing.T, status int, body string) (*RESTClient, *recorder) {
	t.Helper()
	got := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got.add(recordedRequest{method: r.Method, path: r.URL.Path, body: string(b)})
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	c, err := NewRESTClient(srv.URL + "/")
	require.NoError(t, err)
	return c, got
}

func TestList_DecodesNotesInServerOrder(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `[
		{"id":"1","title":"Note 1","description":"Description 1","category":"Personal"},
		{"id":"2","title":"Note 2","description":"Description 2","category":"Work"}]`)

	notes, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, models.Note{ID: "1", Title: "Note 1", Description: "Description 1", Category: models.CategoryPersonal}, notes[0])
	assert.Equal(t, "2", notes[1].ID)
	assert.Equal(t, http.MethodGet, got.all()[0].method)
	assert.Equal(t, "/notes", got.all()[0].path)
}

func TestList_EmptyArrayIsNotNil(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `[]`)

	notes, err := c.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestCreate_SendsNoteWithoutID(t *testing.T) {
	c, got := newTestServer(t, http.StatusCreated, `{"id":"n1","title":"T","description":"D","category":"Work"}`)

	created, err := c.Create(context.Background(), models.Note{ID: "stale", Title: "T", Description: "D", Category: models.CategoryWork})
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)

	req := got.all()[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/notes", req.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.body), &sent))
	assert.NotContains(t, sent, "id")
	assert.Equal(t, "T", sent["title"])
}

func TestUpdate_PutsToNotePath(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"id":"n 2","title":"New","description":"D","category":"Other"}`)

	updated, err := c.Update(context.Background(), models.Note{ID: "n 2", Title: "New", Description: "D", Category: models.CategoryOther})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, http.MethodPut, got.all()[0].method)
	assert.Equal(t, "/notes/n 2", got.all()[0].path)
}

func TestUpdate_WithoutIDMakesNoCall(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{}`)

	_, err := c.Update(context.Background(), models.Note{Title: "x"})
	require.ErrorIs(t, err, ErrMissingID)
	assert.Empty(t, got.all())
}

func TestDelete_NoContent(t *testing.T) {
	c, got := newTestServer(t, http.StatusNoContent, "")

	require.NoError(t, c.Delete(context.Background(), "n1"))
	assert.Equal(t, http.MethodDelete, got.all()[0].method)
	assert.Equal(t, "/notes/n1", got.all()[0].path)

	require.ErrorIs(t, c.Delete(context.Background(), ""), ErrMissingID)
}

func TestMapError_Statuses(t *testing.T) {
	t.Run("404 is ErrNotFound", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusNotFound, `{"error":"note not found"}`)
		require.ErrorIs(t, c.Delete(context.Background(), "missing"), ErrNotFound)
		_, err := c.Update(context.Background(), models.Note{ID: "missing", Category: models.CategoryWork})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("500 is ServerError with message", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
		_, err := c.Create(context.Background(), models.Note{Title: "x", Category: models.CategoryWork})
		var se *ServerError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusInternalServerError, se.Status)
		assert.Equal(t, "boom", se.Message)
		assert.EqualError(t, err, "server error: status 500: boom")
	})

	t.Run("400 without body", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusBadRequest, "")
		_, err := c.List(context.Background())
		var se *ServerError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusBadRequest, se.Status)
		assert.EqualError(t, err, "server error: status 400")
	})
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewRESTClient(url)
	require.NoError(t, err)
	_, err = c.List(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestContextDeadlineIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c, err := NewRESTClient(srv.URL)
	require.NoError(t, err)
	_, err = c.List(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNewRESTClient_RejectsInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "127.0.0.1:8080", "ftp://host", "http://", "://bad"} {
		_, err := NewRESTClient(raw)
		require.ErrorIs(t, err, ErrInvalidBaseURL, raw)
	}
}

func TestPing(t *testing.T) {
	ok, _ := newTestServer(t, http.StatusOK, `{"status":"OK"}`)
	require.NoError(t, ok.Ping(context.Background()))

	notOK, _ := newTestServer(t, http.StatusOK, `{"status":"DEGRADED"}`)
	require.ErrorIs(t, notOK.Ping(context.Background()), ErrUnavailable)

	down, _ := newTestServer(t, http.StatusServiceUnavailable, "")
	err := down.Ping(context.Background())
	var se *ServerError
	require.True(t, errors.As(err, &se))
}

func TestClose(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `[]`)
	require.NoError(t, c.Close())
}
