package tool

// Mode selects the permission policy for a run.
type Mode string

const (
	// ModeAllowAll permits every registered tool without confirmation.
	ModeAllowAll Mode = "allow_all"

	// ModeDenyUnlisted permits only tools on the allow list; everything
	// else is denied without user interaction.
	ModeDenyUnlisted Mode = "deny_unlisted"

	// ModeAsk permits tools that do not require permission and defers the
	// rest to interactive confirmation.
	ModeAsk Mode = "ask"
)

// Decision is the outcome of evaluating the policy for one invocation.
type Decision string

const (
	DecisionAllow Decision = "allow"
	DecisionDeny  Decision = "deny"
	DecisionAsk   Decision = "ask"
)

// Policy is an immutable permission policy fixed at run start.
type Policy struct {
	Mode    Mode
	Allowed []string
}

// AllowAll returns a policy that permits everything.
func AllowAll() Policy {
	return Policy{Mode: ModeAllowAll}
}

// DenyUnlisted returns a policy that permits only the named tools.
func DenyUnlisted(allowed ...string) Policy {
	return Policy{Mode: ModeDenyUnlisted, Allowed: allowed}
}

// Ask returns a policy that defers permission-requiring tools to
// interactive confirmation.
func Ask() Policy {
	return Policy{Mode: ModeAsk}
}

// Decide evaluates the policy for a single invocation. It is a pure
// function of its inputs: the same policy, tool name, and permission flag
// always produce the same decision. Unknown modes deny.
func Decide(p Policy, toolName string, requiresPermission bool) Decision {
	switch p.Mode {
	case ModeAllowAll:
		return DecisionAllow
	case ModeDenyUnlisted:
		for _, name := range p.Allowed {
			if name == toolName {
				return DecisionAllow
			}
		}
		return DecisionDeny
	case ModeAsk:
		if requiresPermission {
			return DecisionAsk
		}
		return DecisionAllow
	default:
		return DecisionDeny
	}
}
