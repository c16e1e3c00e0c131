package tenant

import "sort"

// Principal is the opaque authenticated identity handed in by the request
// layer: an account id plus a role hint that is advisory only, never trusted
// for authorization.
type Principal struct {
	AccountID string
	Role      string
}

// Context is the resolved, request-scoped authorization state. At most one
// of CoachID/OrganizationID is set; TeamIDs is the closed set of team ids the
// owner holds at resolution time. A zero Context authorizes nothing.
type Context struct {
	CoachID        string
	OrganizationID string
	TeamIDs        []string
}

func ForCoach(coachID string, teamIDs []string) Context {
	return Context{CoachID: coachID, TeamIDs: normalizeIDs(teamIDs)}
}

func ForOrganization(orgID string, teamIDs []string) Context {
	return Context{OrganizationID: orgID, TeamIDs: normalizeIDs(teamIDs)}
}

// Empty reports whether the context authorizes nothing. A context with an
// owner but zero teams is still empty for data access purposes.
func (c Context) Empty() bool {
	return len(c.TeamIDs) == 0
}

// Unresolved reports whether the principal matched neither a coach nor an
// organization.
func (c Context) Unresolved() bool {
	return c.CoachID == "" && c.OrganizationID == ""
}

// Allows reports whether teamID is inside the tenant boundary.
func (c Context) Allows(teamID string) bool {
	if teamID == "" {
		return false
	}
	for _, id := range c.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}

// DefaultTeamID returns the team used when a create omits an owning team:
// the first id in sorted order, or "" when the tenant owns no teams.
func (c Context) DefaultTeamID() string {
	if len(c.TeamIDs) == 0 {
		return ""
	}
	return c.TeamIDs[0]
}

// TeamIDArgs returns the team set as query arguments for IN predicates.
func (c Context) TeamIDArgs() []any {
	out := make([]any, 0, len(c.TeamIDs))
	for _, id := range c.TeamIDs {
		out = append(out, id)
	}
	return out
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
