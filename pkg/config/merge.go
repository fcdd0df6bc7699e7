package config

// mergePersonas merges built-in and user-defined persona configurations.
// User-defined personas override built-in personas with the same id.
func mergePersonas(builtinPersonas map[string]PersonaConfig, userPersonas map[string]PersonaConfig) map[string]*PersonaConfig {
	result := make(map[string]*PersonaConfig, len(builtinPersonas)+len(userPersonas))

	// First, add built-in personas
	for id, persona := range builtinPersonas {
		personaCopy := persona
		result[id] = &personaCopy
	}

	// Then, override with user-defined personas (or add new ones)
	for id, userPersona := range userPersonas {
		personaCopy := userPersona
		result[id] = &personaCopy
	}

	return result
}

// mergePolicy merges the builtin policy with user overrides.
// User gates override builtin gates per (phase, gate); user bypass rules
// replace builtin bypass rules wholesale when present.
func mergePolicy(builtin PolicyConfig, user *PolicyConfig) *PolicyConfig {
	merged := &PolicyConfig{
		Phases:      make(map[Phase]PhasePolicy, len(builtin.Phases)),
		BypassRules: builtin.BypassRules,
	}

	for phase, pp := range builtin.Phases {
		gates := make(map[string]GateSLO, len(pp.Gates))
		for gate, slo := range pp.Gates {
			gates[gate] = slo
		}
		merged.Phases[phase] = PhasePolicy{Gates: gates}
	}

	if user == nil {
		return merged
	}

	for phase, pp := range user.Phases {
		target, ok := merged.Phases[phase]
		if !ok {
			target = PhasePolicy{Gates: make(map[string]GateSLO, len(pp.Gates))}
		}
		for gate, slo := range pp.Gates {
			if slo.Severity == "" {
				slo.Severity = GateSeverityBlocking
			}
			target.Gates[gate] = slo
		}
		merged.Phases[phase] = target
	}

	// Bypass rules are governance policy: partial merges would silently
	// widen or narrow what is bypassable, so a user block wins wholesale.
	if len(user.BypassRules.BypassableGates) > 0 || len(user.BypassRules.NonBypassableGates) > 0 {
		merged.BypassRules = user.BypassRules
	} else {
		if user.BypassRules.AuditTrail.LogLocation != "" {
			merged.BypassRules.AuditTrail.LogLocation = user.BypassRules.AuditTrail.LogLocation
		}
		if user.BypassRules.AuditTrail.AlertThreshold > 0 {
			merged.BypassRules.AuditTrail.AlertThreshold = user.BypassRules.AuditTrail.AlertThreshold
		}
	}

	return merged
}

// mergeContracts returns the user contract overrides keyed by phase.
// Unlike personas there is no field-level merge: a contract override is a
// complete new contract version for its phase.
func mergeContracts(userContracts map[Phase]ContractConfig) map[Phase]ContractConfig {
	result := make(map[Phase]ContractConfig, len(userContracts))
	for phase, contract := range userContracts {
		result[phase] = contract
	}
	return result
}
