package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/models"
	"github.com/go-resty/resty/v2"
)

const notesPath = "/notes"

type apiError struct {
	Error string `json:"error"`
}

type pingResponse struct {
	Status string `json:"status"`
}

type RESTClient struct {
	baseURL string
	http    *resty.Client
}

// NewRESTClient returns a client for the note resource rooted at baseURL,
// e.g. "http://127.0.0.1:8080". Only http and https URLs are accepted.
func NewRESTClient(baseURL string) (*RESTClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	baseURL = strings.TrimRight(baseURL, "/")
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetError(&apiError{})
	return &RESTClient{baseURL: baseURL, http: c}, nil
}

func (c *RESTClient) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	resp, err := c.http.R().SetContext(ctx).SetResult(&notes).Get(notesPath)
	if err := c.mapError(resp, err); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (c *RESTClient) Create(ctx context.Context, note models.Note) (models.Note, error) {
	note.ID = ""
	var created models.Note
	resp, err := c.http.R().SetContext(ctx).SetBody(note).SetResult(&created).Post(notesPath)
	if err := c.mapError(resp, err); err != nil {
		return models.Note{}, err
	}
	return created, nil
}

func (c *RESTClient) Update(ctx context.Context, note models.Note) (models.Note, error) {
	if note.ID == "" {
		return models.Note{}, ErrMissingID
	}
	var updated models.Note
	resp, err := c.http.R().SetContext(ctx).
		SetPathParam("id", note.ID).
		SetBody(note).
		SetResult(&updated).
		Put(notesPath + "/{id}")
	if err := c.mapError(resp, err); err != nil {
		return models.Note{}, err
	}
	return updated, nil
}

func (c *RESTClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).Delete(notesPath + "/{id}")
	return c.mapError(resp, err)
}

func (c *RESTClient) Ping(ctx context.Context) error {
	var pong pingResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&pong).Get("/ping")
	if err := c.mapError(resp, err); err != nil {
		return err
	}
	if pong.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *RESTClient) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// mapError turns a transport failure into ErrUnavailable, 404 into
// ErrNotFound and any other non-2xx status into *ServerError.
func (c *RESTClient) mapError(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}
	msg := ""
	if e, ok := resp.Error().(*apiError); ok && e != nil {
		msg = e.Error
	}
	return &ServerError{Status: resp.StatusCode(), Message: msg}
}
