package postgres

import (
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

// Tenant scope predicates. Every accessor appends one of these on top of the
// row security policies; the two layers always run together. All of them
// inherit the In empty-set rendering, so an empty scope builds an
// unsatisfiable query instead of an unfiltered one.

// teamScope matches rows whose owning team column sits inside the tenant
// boundary.
func teamScope(column string, tc tenant.Context) qb.Condition {
	return qb.In(column, tc.TeamIDArgs())
}

// membershipScope matches player rows reachable through an open membership
// on one of the tenant's teams.
func membershipScope(playerIDColumn string, tc tenant.Context) qb.Condition {
	return qb.Exists("player_memberships",
		qb.Expr("player_memberships.player_id = "+playerIDColumn),
		qb.IsNull("player_memberships.end_date"),
		qb.In("player_memberships.team_id", tc.TeamIDArgs()),
	)
}

// parentScope matches child rows whose intermediate parent row belongs to a
// tenant team: fixtures through championships, stat rows through matches,
// day rows through schedules.
func parentScope(parentTable, parentIDColumn, childFKColumn string, tc tenant.Context) qb.Condition {
	return qb.Exists(parentTable,
		qb.Expr(parentTable+"."+parentIDColumn+" = "+childFKColumn),
		qb.In(parentTable+".team_id", tc.TeamIDArgs()),
	)
}
