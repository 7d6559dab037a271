package etl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BartekS5/finess/pkg/logger"
	"github.com/BartekS5/finess/pkg/models"
)

// ElasticPublisher writes cards to an ElasticSearch index over its REST API.
type ElasticPublisher struct {
	BaseURL string
	Index   string
	DocType string
	Client  *http.Client
	Log     *logger.Logger
}

func NewElasticPublisher(baseURL, index, docType string, timeout time.Duration, log *logger.Logger) *ElasticPublisher {
	return &ElasticPublisher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Index:   index,
		DocType: docType,
		Client:  &http.Client{Timeout: timeout},
		Log:     log,
	}
}

// EnsureContainer creates the index. An already existing index is reported
// by the server as an error status and surfaces as a *PublishError.
func (e *ElasticPublisher) EnsureContainer(ctx context.Context) error {
	e.Log.Infof("Create ElasticSearch Index : %s", e.Index)
	target := fmt.Sprintf("%s/%s", e.BaseURL, url.PathEscape(e.Index))
	return e.do(ctx, http.MethodPut, target, "", nil)
}

func (e *ElasticPublisher) Put(ctx context.Context, key string, card models.Card) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	body, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	target := fmt.Sprintf("%s/%s/%s/%s", e.BaseURL,
		url.PathEscape(e.Index), url.PathEscape(e.DocType), url.PathEscape(key))
	e.Log.Debugf("Publishing %s", target)
	return e.do(ctx, http.MethodPost, target, key, body)
}

func (e *ElasticPublisher) do(ctx context.Context, method, target, key string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return &PublishError{Key: key, Status: resp.StatusCode, Body: string(respBody)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
