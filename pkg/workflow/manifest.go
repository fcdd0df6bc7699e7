package workflow

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maestro-works/maestro/pkg/config"
)

// ManifestNode is the wire form of one workflow node.
type ManifestNode struct {
	ID              string       `json:"id" yaml:"id"`
	Type            NodeType     `json:"type" yaml:"type"`
	Phase           config.Phase `json:"phase,omitempty" yaml:"phase,omitempty"`
	Capability      string       `json:"capability,omitempty" yaml:"capability,omitempty"`
	Persona         string       `json:"persona,omitempty" yaml:"persona,omitempty"`
	DependsOn       []string     `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Outputs         []string     `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Gates           []string     `json:"gates,omitempty" yaml:"gates,omitempty"`
	EstimatedEffort string       `json:"estimated_effort,omitempty" yaml:"estimated_effort,omitempty"`
	TimeoutSeconds  int          `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	MaxRetries      int          `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
}

// PolicyRef names a policy the workflow runs under.
type PolicyRef struct {
	ID       string `json:"id" yaml:"id"`
	Severity string `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// Manifest is the serialized workflow definition. JSON is the
// authoritative interchange format; YAML is accepted on input for
// hand-written manifests.
type Manifest struct {
	IterationID string            `json:"iteration_id" yaml:"iteration_id"`
	Timestamp   time.Time         `json:"timestamp" yaml:"timestamp"`
	Project     string            `json:"project" yaml:"project"`
	Requirement string            `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	Constraints map[string]string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Policies    []PolicyRef       `json:"policies,omitempty" yaml:"policies,omitempty"`
	Nodes       []ManifestNode    `json:"nodes" yaml:"nodes"`
}

// ParseManifest decodes a manifest from JSON or YAML. JSON is tried
// first; YAML only when the input is not a JSON document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	jsonErr := json.Unmarshal(data, &m)
	if jsonErr == nil {
		return &m, nil
	}
	if yamlErr := yaml.Unmarshal(data, &m); yamlErr != nil {
		return nil, fmt.Errorf("manifest is neither valid JSON (%v) nor valid YAML (%v)", jsonErr, yamlErr)
	}
	return &m, nil
}

// EncodeJSON serializes the manifest in its interchange form.
func (m *Manifest) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Validate checks structural integrity: unique non-empty ids, known
// node types, resolvable dependencies, and an acyclic graph. Returns
// the first problem found.
func (m *Manifest) Validate() error {
	if len(m.Nodes) == 0 {
		return ErrEmptyWorkflow
	}
	if m.IterationID == "" {
		return fmt.Errorf("%w: manifest missing iteration_id", config.ErrMissingRequiredField)
	}
	for _, n := range m.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node with empty id", config.ErrMissingRequiredField)
		}
		if !n.Type.IsValid() {
			return fmt.Errorf("%w: node %s has unknown type %q", config.ErrInvalidValue, n.ID, n.Type)
		}
		if n.Phase != "" && !n.Phase.IsValid() {
			return fmt.Errorf("%w: node %s has unknown phase %q", config.ErrInvalidValue, n.ID, n.Phase)
		}
		if n.TimeoutSeconds < 0 {
			return fmt.Errorf("%w: node %s has negative timeout", config.ErrInvalidValue, n.ID)
		}
	}
	_, err := m.buildDAG()
	return err
}

func (m *Manifest) buildDAG() (*DAG, error) {
	dag := NewDAG()
	for _, n := range m.Nodes {
		if err := dag.AddNode(n.ID, n.Type); err != nil {
			return nil, err
		}
	}
	for _, n := range m.Nodes {
		for _, dep := range n.DependsOn {
			if err := dag.AddDependency(n.ID, dep); err != nil {
				return nil, err
			}
		}
	}
	return dag, nil
}

// Workflow is a validated, executable manifest.
type Workflow struct {
	ID       string
	Manifest *Manifest
	Nodes    map[string]*Node
	dag      *DAG
}

// Build validates the manifest and constructs the executable workflow.
// Node timeouts and retry budgets fall back to the engine defaults.
func (m *Manifest) Build(engineCfg *config.EngineConfig) (*Workflow, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	dag, err := m.buildDAG()
	if err != nil {
		return nil, err
	}

	wf := &Workflow{
		ID:       m.IterationID,
		Manifest: m,
		Nodes:    make(map[string]*Node, len(m.Nodes)),
		dag:      dag,
	}
	for _, n := range m.Nodes {
		node := &Node{
			ID:              n.ID,
			Type:            n.Type,
			Phase:           n.Phase,
			DependsOn:       append([]string(nil), n.DependsOn...),
			PersonaID:       n.Persona,
			Capability:      n.Capability,
			Gates:           append([]string(nil), n.Gates...),
			Outputs:         append([]string(nil), n.Outputs...),
			EstimatedEffort: n.EstimatedEffort,
		}
		if n.TimeoutSeconds > 0 {
			node.Timeout = time.Duration(n.TimeoutSeconds) * time.Second
		} else if engineCfg != nil {
			node.Timeout = engineCfg.DefaultNodeTimeout
		}
		node.Retry = RetryPolicy{MaxRetries: n.MaxRetries}
		if engineCfg != nil {
			if node.Retry.MaxRetries == 0 {
				node.Retry.MaxRetries = engineCfg.MaxRetries
			}
			node.Retry.InitialBackoff = engineCfg.InitialBackoff
			node.Retry.MaxBackoff = engineCfg.MaxBackoff
		}
		wf.Nodes[n.ID] = node
	}
	return wf, nil
}

// Waves returns the execution order as topological groups.
func (w *Workflow) Waves() ([][]string, error) {
	return w.dag.TopologicalGroups()
}

// Downstream returns every node transitively depending on id.
func (w *Workflow) Downstream(id string) []string {
	return w.dag.Downstream(id)
}

// NodesForPhase returns the ids of nodes assigned to the phase, in
// manifest order.
func (w *Workflow) NodesForPhase(phase config.Phase) []string {
	var ids []string
	for _, n := range w.Manifest.Nodes {
		if n.Phase == phase {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
