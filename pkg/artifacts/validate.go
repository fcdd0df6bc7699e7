package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/maestro-works/maestro/pkg/contracts"
)

// DeliverableStatus classifies one contract deliverable after
// validation.
type DeliverableStatus string

const (
	DeliverableSatisfied      DeliverableStatus = "satisfied"
	DeliverableMissing        DeliverableStatus = "missing"
	DeliverableBelowThreshold DeliverableStatus = "below_threshold"
	DeliverableSkipped        DeliverableStatus = "skipped"
)

// DeliverableResult is the per-deliverable outcome of a validation run.
type DeliverableResult struct {
	Name       string            `json:"name"`
	Status     DeliverableStatus `json:"status"`
	Score      float64           `json:"score"`
	MinQuality float64           `json:"min_quality"`
	Optional   bool              `json:"optional,omitempty"`
	Files      []string          `json:"files,omitempty"`
	Issues     []string          `json:"issues,omitempty"`
}

// Report is the evidence a gate evaluation consumes: per-deliverable
// attribution plus the aggregate completeness and quality numbers.
type Report struct {
	ContractVersion   int                 `json:"contract_version"`
	ProjectType       ProjectType         `json:"project_type"`
	Deliverables      []DeliverableResult `json:"deliverables"`
	CompletenessRatio float64             `json:"completeness_ratio"`
	MeanSubstance     float64             `json:"mean_substance"`
	QualityScore      float64             `json:"quality_score"`
	FilesScored       int                 `json:"files_scored"`
	Recommendations   []string            `json:"recommendations,omitempty"`
}

// Validate checks produced files against a phase contract.
//
// produced holds workspace-relative paths; nil means "everything in the
// workspace", which entry gates use to re-check a predecessor phase's
// artifacts. Every produced file is substance-scored; the aggregate
// quality score is the mean file substance multiplied by the ratio of
// satisfied required deliverables, so both stubs and gaps drag it down.
func Validate(contract *contracts.Contract, root string, produced []string) (*Report, error) {
	if produced == nil {
		snap, err := TakeSnapshot(root)
		if err != nil {
			return nil, err
		}
		produced = make([]string, 0, len(snap.Files))
		for path := range snap.Files {
			produced = append(produced, path)
		}
		sort.Strings(produced)
	}

	report := &Report{
		ContractVersion: contract.Version,
		ProjectType:     InferProjectType(produced),
	}

	// Score every produced file once; deliverable scores reuse these.
	scores := make(map[string]SubstanceReport, len(produced))
	var substanceSum float64
	for _, rel := range produced {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("failed to read produced file %s: %w", rel, err)
		}
		sr := ScoreContent(rel, data)
		scores[rel] = sr
		substanceSum += sr.Score
		report.FilesScored++
	}
	if report.FilesScored > 0 {
		report.MeanSubstance = substanceSum / float64(report.FilesScored)
	}

	requiredTotal := 0
	requiredSatisfied := 0

	for _, d := range contract.Deliverables {
		result := DeliverableResult{
			Name:       d.Name,
			MinQuality: d.MinQuality,
			Optional:   d.Optional,
		}

		if !report.ProjectType.relevantFor(d.Name) {
			result.Status = DeliverableSkipped
			report.Deliverables = append(report.Deliverables, result)
			continue
		}

		var matched []string
		var matchedSum float64
		for _, rel := range produced {
			if d.Match(rel) {
				matched = append(matched, rel)
				matchedSum += scores[rel].Score
				for _, hit := range scores[rel].Hits {
					if hit.Critical {
						result.Issues = append(result.Issues,
							fmt.Sprintf("%s:%d contains %s", rel, hit.Line, hit.Marker))
					}
				}
			}
		}
		result.Files = matched

		switch {
		case len(matched) == 0 && d.Optional:
			result.Status = DeliverableSkipped
		case len(matched) == 0:
			result.Status = DeliverableMissing
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("produce %s (expected patterns: %v)", d.Name, d.Patterns))
		default:
			result.Score = matchedSum / float64(len(matched))
			if result.Score < d.MinQuality {
				result.Status = DeliverableBelowThreshold
				report.Recommendations = append(report.Recommendations,
					fmt.Sprintf("raise %s substance from %.2f to at least %.2f", d.Name, result.Score, d.MinQuality))
			} else {
				result.Status = DeliverableSatisfied
			}
		}

		if !d.Optional {
			requiredTotal++
			if result.Status == DeliverableSatisfied {
				requiredSatisfied++
			}
		}
		report.Deliverables = append(report.Deliverables, result)
	}

	if requiredTotal > 0 {
		report.CompletenessRatio = float64(requiredSatisfied) / float64(requiredTotal)
	} else {
		report.CompletenessRatio = 1.0
	}
	report.QualityScore = report.MeanSubstance * report.CompletenessRatio

	return report, nil
}

// Deliverable returns the named per-deliverable result.
func (r *Report) Deliverable(name string) (DeliverableResult, bool) {
	for _, d := range r.Deliverables {
		if d.Name == name {
			return d, true
		}
	}
	return DeliverableResult{}, false
}
