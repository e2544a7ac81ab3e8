package topology

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/metronav/internal/common/logger"
	"github.com/metronav/pkg/metro/models"
)

const (
	httpTimeout = 30 * time.Second
	// Topology tables are small; anything past this is not one.
	maxDownloadBytes = 8 << 20
)

var ErrTopologyTooLarge = errors.New("topology download too large")

// HTTPSource fetches a from,to,distance table over HTTP.
type HTTPSource struct {
	url    string
	client *http.Client
	logger logger.Logger
}

func NewHTTPSource(url string, logger logger.Logger) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: httpTimeout,
		},
		logger: logger,
	}
}

func (s *HTTPSource) Name() string {
	return "http:" + s.url
}

func (s *HTTPSource) Load(ctx context.Context) (*models.Topology, error) {
	s.logger.Info("Starting download", "url", s.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(data) > maxDownloadBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTopologyTooLarge, maxDownloadBytes)
	}

	topo, err := ParseCSV(ctx, bytes.NewReader(data), s.topologyName())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Download completed",
		"url", s.url,
		"size_bytes", len(data),
		"stations", len(topo.Stations))

	return topo, nil
}

// topologyName is the last path element of the URL without its extension.
func (s *HTTPSource) topologyName() string {
	p := s.url
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
