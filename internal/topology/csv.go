package topology

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/metronav/internal/common/logger"
	"github.com/metronav/pkg/metro/models"
)

// CSV column names. A row with an empty "to" declares an isolated station.
const (
	columnFrom     = "from"
	columnTo       = "to"
	columnDistance = "distance"
)

type CSVSource struct {
	path   string
	logger logger.Logger
}

func NewCSVSource(path string, logger logger.Logger) *CSVSource {
	return &CSVSource{path: path, logger: logger}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

func (s *CSVSource) Load(ctx context.Context) (*models.Topology, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening topology file: %w", err)
	}
	defer f.Close()

	s.logger.Info("Parsing topology file", "path", s.path)

	name := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
	return ParseCSV(ctx, f, name)
}

// ParseCSV reads a from,to,distance table. Stations are declared in order
// of first appearance.
func ParseCSV(ctx context.Context, r io.Reader, name string) (*models.Topology, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Variable number of fields
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, h := range header {
		headerMap[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{columnFrom, columnTo, columnDistance} {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	topo := &models.Topology{Name: name}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line, _ := reader.FieldPos(0)

		from := getField(record, headerMap, columnFrom)
		if from == "" {
			return nil, fmt.Errorf("line %d: empty %q", line, columnFrom)
		}
		topo.AddStation(from)

		to := getField(record, headerMap, columnTo)
		if to == "" {
			continue
		}
		topo.AddStation(to)

		distance, err := strconv.Atoi(getField(record, headerMap, columnDistance))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing distance: %w", line, err)
		}
		topo.Connections = append(topo.Connections, models.Connection{From: from, To: to, DistanceKM: distance})
	}

	return topo, nil
}

func getField(record []string, headerMap map[string]int, field string) string {
	if idx, ok := headerMap[field]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
