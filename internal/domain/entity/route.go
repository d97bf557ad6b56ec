package entity

// GuardDecision is the outcome of evaluating a guarded route.
type GuardDecision int

const (
	// GuardPending means session or role resolution is still in flight.
	GuardPending GuardDecision = iota
	// GuardAdmit renders the requested page.
	GuardAdmit
	// GuardRedirectToLanding sends the visitor to the public landing route.
	GuardRedirectToLanding
)

// String returns the name of the decision.
func (d GuardDecision) String() string {
	switch d {
	case GuardAdmit:
		return "admit"
	case GuardRedirectToLanding:
		return "redirect"
	default:
		return "pending"
	}
}

// RouteRequirement describes what a guarded route asks of the visitor.
// Login is the login state the route wants; Roles, when non-empty,
// restricts the route to those roles.
type RouteRequirement struct {
	Login bool
	Roles Roles
}

// GuardObservation is the state the guard decides on.
type GuardObservation struct {
	SessionLoading bool
	IsLogin        bool
	ProfileLoading bool
	Role           Role
}

// Decide applies the guard rules. The login check always precedes the role
// check and anything unresolved that is not in flight denies access.
func (r RouteRequirement) Decide(obs GuardObservation) GuardDecision {
	if obs.SessionLoading {
		return GuardPending
	}

	if obs.IsLogin != r.Login {
		return GuardRedirectToLanding
	}

	if len(r.Roles) == 0 {
		return GuardAdmit
	}

	if obs.ProfileLoading {
		return GuardPending
	}

	if obs.Role == "" || !r.Roles.Contains(obs.Role) {
		return GuardRedirectToLanding
	}

	return GuardAdmit
}
