package e2e

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Normalizer replaces dynamic values with stable placeholders for golden comparison.
// IDs that appear multiple times get the same placeholder (preserving referential integrity).
type Normalizer struct {
	executionID string

	mu        sync.Mutex
	nodeIDs   map[string]string // original → placeholder
	bypassIDs map[string]string

	nodeCount   int
	bypassCount int
}

// Regex patterns for dynamic values.
var (
	uuidRe      = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	timestampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})`)
	unixTsRe    = regexp.MustCompile(`"(created_at|updated_at|started_at|completed_at|timestamp)":\s*\d{10,13}`)
	dbEventIDRe = regexp.MustCompile(`"db_event_id":\s*\d+`)
	connIDRe    = regexp.MustCompile(`"connection_id":\s*"[^"]*"`)
)

// NewNormalizer creates a normalizer that knows the execution ID to replace.
func NewNormalizer(executionID string) *Normalizer {
	return &Normalizer{
		executionID: executionID,
		nodeIDs:     make(map[string]string),
		bypassIDs:   make(map[string]string),
	}
}

// RegisterNodeID registers a node execution UUID for stable replacement.
// Call this in order of first appearance.
func (n *Normalizer) RegisterNodeID(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.nodeIDs[id]; !ok {
		n.nodeCount++
		n.nodeIDs[id] = fmt.Sprintf("{NODE_ID_%d}", n.nodeCount)
	}
}

// RegisterBypassID registers a bypass request UUID for stable replacement.
func (n *Normalizer) RegisterBypassID(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.bypassIDs[id]; !ok {
		n.bypassCount++
		n.bypassIDs[id] = fmt.Sprintf("{BYPASS_ID_%d}", n.bypassCount)
	}
}

// Normalize replaces dynamic values in data with stable placeholders.
func (n *Normalizer) Normalize(data string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	// 1. Replace the known execution ID first.
	if n.executionID != "" {
		data = strings.ReplaceAll(data, n.executionID, "{EXEC_ID}")
	}

	// 2. Replace registered node IDs.
	for id, placeholder := range n.nodeIDs {
		data = strings.ReplaceAll(data, id, placeholder)
	}

	// 3. Replace registered bypass IDs.
	for id, placeholder := range n.bypassIDs {
		data = strings.ReplaceAll(data, id, placeholder)
	}

	// 4. Replace any remaining UUIDs.
	data = uuidRe.ReplaceAllString(data, "{UUID}")

	// 5. Replace RFC3339 timestamps.
	data = timestampRe.ReplaceAllString(data, "{TIMESTAMP}")

	// 6. Replace Unix timestamps in known fields.
	data = unixTsRe.ReplaceAllStringFunc(data, func(match string) string {
		// Keep the field name, replace the value.
		idx := strings.Index(match, ":")
		return match[:idx+1] + " {UNIX_TS}"
	})

	// 7. Replace db_event_id.
	data = dbEventIDRe.ReplaceAllString(data, `"db_event_id": {DB_EVENT_ID}`)

	// 8. Replace connection_id.
	data = connIDRe.ReplaceAllString(data, `"connection_id": "{CONN_ID}"`)

	return data
}

// NormalizeBytes is a convenience wrapper for Normalize on byte slices.
func (n *Normalizer) NormalizeBytes(data []byte) []byte {
	return []byte(n.Normalize(string(data)))
}
