package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Report is the stable top-level document produced by one analysis run.
// Field names and nesting are a compatibility contract: consumers key on
// them, so they never change meaning between releases. All collections are
// emitted in deterministic order.
type Report struct {
	// Nodes lists every inventoried file, ordered by id.
	Nodes []NodeOutput `yaml:"nodes" json:"nodes"`

	// Edges lists the resolved, deduplicated references, ordered by
	// (source, target). Unresolved references never appear here.
	Edges []EdgeOutput `yaml:"edges" json:"edges"`

	// Components holds the weakly connected components as sorted id lists.
	Components [][]string `yaml:"components" json:"components"`

	// Cycles holds detected directed cycles as ordered id paths returning
	// to their start.
	Cycles [][]string `yaml:"cycles" json:"cycles"`

	// Groups holds the functional groupings from every strategy.
	Groups []GroupOutput `yaml:"groups" json:"groups"`

	// Summary carries whole-graph statistics.
	Summary Summary `yaml:"summary" json:"summary"`

	// Diagnostics records everything the run skipped or could not resolve.
	Diagnostics Diagnostics `yaml:"diagnostics" json:"diagnostics"`
}

// NodeOutput is one file in the report.
type NodeOutput struct {
	// ID is the project-root-relative path with forward slashes.
	ID string `yaml:"id" json:"id"`

	// Type is the detected type tag, "unknown" when undetected.
	Type string `yaml:"type" json:"type"`

	// Importance is the degree-centrality score: in-degree + out-degree.
	Importance int `yaml:"importance" json:"importance"`

	// Groups lists the ids of the groups this node belongs to.
	Groups []string `yaml:"groups,omitempty" json:"groups,omitempty"`

	// SizeSkipped marks files whose content was not read because it
	// exceeded the size cap. The node still participates as a target.
	SizeSkipped bool `yaml:"size_skipped,omitempty" json:"size_skipped,omitempty"`
}

// EdgeOutput is one resolved dependency.
type EdgeOutput struct {
	// Source is the referencing file's id.
	Source string `yaml:"source" json:"source"`

	// Target is the referenced file's id.
	Target string `yaml:"target" json:"target"`

	// Weight counts how many references collapsed into this edge.
	Weight int `yaml:"weight" json:"weight"`
}

// GroupOutput is one functional group.
type GroupOutput struct {
	// ID is the stable group identifier, e.g. "dir:internal/cmd".
	ID string `yaml:"id" json:"id"`

	// Strategy names the grouping strategy that produced the group.
	Strategy string `yaml:"strategy" json:"strategy"`

	// Label is the human-readable group name.
	Label string `yaml:"label" json:"label"`

	// Members lists the member node ids, sorted.
	Members []string `yaml:"members" json:"members"`

	// Importance is the sum of the members' importance scores.
	Importance int `yaml:"importance" json:"importance"`

	// Completeness is an advisory 0-100 structural maturity score.
	Completeness int `yaml:"completeness" json:"completeness"`

	// InternalEdges counts edges with both endpoints inside the group.
	InternalEdges int `yaml:"internal_edges" json:"internal_edges"`
}

// Summary carries whole-graph statistics.
type Summary struct {
	TotalNodes int     `yaml:"total_nodes" json:"total_nodes"`
	TotalEdges int     `yaml:"total_edges" json:"total_edges"`
	AvgDegree  float64 `yaml:"avg_degree" json:"avg_degree"`
}

// Diagnostics records recovered problems. The run succeeds despite them;
// consumers inspect this block to judge coverage.
type Diagnostics struct {
	// Excluded counts excluded paths per exclusion reason.
	Excluded map[string]int `yaml:"excluded" json:"excluded"`

	// UnreadableFiles lists files that could not be read, sorted.
	UnreadableFiles []string `yaml:"unreadable_files,omitempty" json:"unreadable_files,omitempty"`

	// SizeSkipped counts files over the size cap.
	SizeSkipped int `yaml:"size_skipped" json:"size_skipped"`

	// Truncated is true when the inventory hit the max-files cap.
	Truncated bool `yaml:"truncated" json:"truncated"`

	// UnresolvedReferences counts extracted references that matched no
	// inventory file.
	UnresolvedReferences int `yaml:"unresolved_references" json:"unresolved_references"`
}

// Render serializes the report in the given format. YAML output uses
// two-space indentation; JSON output is indented and ends with a newline.
func (r *Report) Render(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding report as json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encoding report as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding report as yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}
