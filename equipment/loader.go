package equipment

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// ErrSourceUnavailable is returned when an equipment source cannot be opened or read.
var ErrSourceUnavailable = errors.New("equipment source unavailable")

// Sink receives records as soon as they are scanned.
type Sink interface {
	Add(rec Record)
}

// LoadResult describes what one source contributed.
type LoadResult struct {
	Source   string
	Records  int
	Consumed int
	Builtin  bool
}

// Loader reads equipment sources from disk or the built-in table.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load scans source and feeds every record into sink.
func (l *Loader) Load(source string, sink Sink) (LoadResult, error) {
	res := LoadResult{Source: source}
	if rec, ok := Builtin(source); ok {
		sink.Add(rec)
		res.Records = 1
		res.Builtin = true
		l.logger.Debug("built-in equipment loaded", zap.String("source", source), zap.String("name", rec.Name))
		return res, nil
	}

	data, err := readSource(source)
	if err != nil {
		return res, err
	}

	sc := NewScanner(data)
	for {
		rec, ok := sc.Next()
		if !ok {
			break
		}
		sink.Add(rec)
		res.Records++
	}
	res.Consumed = sc.Consumed()
	l.logger.Debug("equipment source loaded",
		zap.String("source", source),
		zap.Int("records", res.Records),
		zap.Int("bytes", res.Consumed))
	return res, nil
}

func readSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSourceUnavailable, path, err)
	}
	return data, nil
}
