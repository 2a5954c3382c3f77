package executor

// Policy holds the execution flags. It is resolved once with Normalize
// before execution begins so the precedence rules live in one place.
type Policy struct {
	// DryRun simulates every action and mutates nothing.
	DryRun bool

	// Force deletes directories without the extra prompt and disables
	// interactivity entirely.
	Force bool

	// Interactive asks for confirmation before each mutating action.
	Interactive bool

	// Verbose reports each action as it is taken.
	Verbose bool
}

// Normalize applies the flag precedence rules:
//   - Force overrides interactivity: no prompts at all.
//   - Interactive without DryRun silences Verbose, since the prompts
//     already narrate every action.
func (p Policy) Normalize() Policy {
	if p.Force {
		p.Interactive = false
	}
	if p.Interactive && !p.DryRun {
		p.Verbose = false
	}
	return p
}
