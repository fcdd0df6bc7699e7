package contracts

import (
	"github.com/maestro-works/maestro/pkg/config"
)

// DefaultMinQuality is the substance floor applied when a deliverable
// does not set its own.
const DefaultMinQuality = 0.7

// BuiltinContracts returns the default contract for every delivery
// phase. These become version 1 in a registry seeded from config;
// project overrides layer on top as later versions.
func BuiltinContracts() []Contract {
	patterns := config.GetBuiltinConfig().DeliverablePatterns

	deliverable := func(name string, minQuality float64, optional bool) Deliverable {
		return Deliverable{
			Name:       name,
			Patterns:   patterns[name],
			MinQuality: minQuality,
			Optional:   optional,
		}
	}

	return []Contract{
		{
			Phase: config.PhaseRequirements,
			Deliverables: []Deliverable{
				deliverable("requirements_doc", 0.7, false),
				deliverable("user_stories", 0.6, true),
			},
			QualityMetrics: map[string]float64{"quality_score": 0.70},
			Owners:         []string{"requirements_analyst"},
		},
		{
			Phase: config.PhaseDesign,
			Deliverables: []Deliverable{
				deliverable("architecture_doc", 0.7, false),
				deliverable("api_contract", 0.7, false),
				deliverable("data_model", 0.6, true),
			},
			QualityMetrics: map[string]float64{"quality_score": 0.70},
			Owners:         []string{"solution_architect"},
		},
		{
			Phase: config.PhaseImplementation,
			Deliverables: []Deliverable{
				deliverable("source_code", 0.7, false),
				deliverable("frontend_code", 0.7, true),
			},
			QualityMetrics: map[string]float64{"quality_score": 0.70},
			Owners:         []string{"backend_developer", "frontend_developer"},
		},
		{
			Phase: config.PhaseTesting,
			Deliverables: []Deliverable{
				deliverable("test_suite", 0.7, false),
				deliverable("coverage_report", 0.5, true),
			},
			QualityMetrics: map[string]float64{
				"quality_score": 0.70,
				"test_coverage": 0.80,
			},
			Owners: []string{"qa_engineer"},
		},
		{
			Phase: config.PhaseDeployment,
			Deliverables: []Deliverable{
				deliverable("deployment_config", 0.7, false),
				deliverable("runbook", 0.5, true),
			},
			QualityMetrics: map[string]float64{"quality_score": 0.70},
			Owners:         []string{"devops_engineer"},
		},
	}
}
