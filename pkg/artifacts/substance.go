package artifacts

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/maestro-works/maestro/pkg/config"
)

// Substance scoring caps. A critical stub marker caps the score at
// StubCeiling regardless of length; content under MinTokens tokens is
// capped at MinimalCeiling.
const (
	StubCeiling    = 0.2
	MinimalCeiling = 0.4
	MinTokens      = 30
)

// MarkerHit records one stub/placeholder marker found in a file.
type MarkerHit struct {
	Marker   string `json:"marker"`
	Line     int    `json:"line"`
	Critical bool   `json:"critical"`
}

// SubstanceReport is the result of scoring one file's content.
type SubstanceReport struct {
	Score        float64     `json:"score"`
	Tokens       int         `json:"tokens"`
	ContentLines int         `json:"content_lines"`
	Binary       bool        `json:"binary"`
	Hits         []MarkerHit `json:"hits,omitempty"`
}

type compiledMarker struct {
	re       *regexp.Regexp
	penalty  float64
	critical bool
	desc     string
}

var (
	markersOnce     sync.Once
	compiledMarkers []compiledMarker
)

// markerTable compiles the builtin substance marker patterns once.
// Patterns that fail to compile are dropped; the table is static so a
// bad pattern is a programming error caught by tests.
func markerTable() []compiledMarker {
	markersOnce.Do(func() {
		for _, m := range config.GetBuiltinConfig().SubstanceMarkers {
			re, err := regexp.Compile("(?i)" + m.Pattern)
			if err != nil {
				continue
			}
			compiledMarkers = append(compiledMarkers, compiledMarker{
				re:       re,
				penalty:  m.Penalty,
				critical: m.Critical,
				desc:     m.Description,
			})
		}
	})
	return compiledMarkers
}

// Binary file detection: well-known binary extensions, then a NUL-byte
// sniff over the first 8 KiB for everything else.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true,
	".pdf": true, ".zip": true, ".tar": true, ".gz": true, ".jar": true,
	".so": true, ".dll": true, ".exe": true, ".bin": true, ".woff": true,
	".woff2": true, ".ttf": true, ".eot": true, ".mp4": true, ".webp": true,
}

// IsBinary reports whether data looks like binary content for the given
// filename.
func IsBinary(name string, data []byte) bool {
	if binaryExtensions[strings.ToLower(filepath.Ext(name))] {
		return true
	}
	sniff := data
	if len(sniff) > 8192 {
		sniff = sniff[:8192]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}

// ScoreContent computes the substance score for one file's content.
//
// The score starts at 1.0 and loses each matched marker's penalty.
// Any critical marker caps the result at the stub ceiling; fewer than
// MinTokens tokens caps it at the minimal ceiling. Binary content is
// not text-scored: non-empty binaries score 1.0, empty ones 0.0.
func ScoreContent(name string, data []byte) SubstanceReport {
	if IsBinary(name, data) {
		score := 0.0
		if len(data) > 0 {
			score = 1.0
		}
		return SubstanceReport{Score: score, Binary: true}
	}

	report := SubstanceReport{Score: 1.0}
	critical := false

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		report.ContentLines++
		report.Tokens += len(strings.Fields(trimmed))

		for _, m := range markerTable() {
			if m.re.MatchString(line) {
				report.Hits = append(report.Hits, MarkerHit{
					Marker:   m.desc,
					Line:     i + 1,
					Critical: m.critical,
				})
				report.Score -= m.penalty
				if m.critical {
					critical = true
				}
			}
		}
	}

	if report.Score < 0 {
		report.Score = 0
	}
	if critical && report.Score > StubCeiling {
		report.Score = StubCeiling
	}
	if report.Tokens < MinTokens && report.Score > MinimalCeiling {
		report.Score = MinimalCeiling
	}
	return report
}

// ScoreFile reads and scores the file at path.
func ScoreFile(path string) (SubstanceReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SubstanceReport{}, err
	}
	return ScoreContent(filepath.Base(path), data), nil
}
