package repositories

import "github.com/Masterminds/squirrel"

// CaseTrackDbRepository groups all accesses to the casetrack database.
type CaseTrackDbRepository struct{}

// activeRows is the soft-delete predicate. Every read path filters with it;
// history rows stay in place and remain reachable by direct reference.
var activeRows = squirrel.Eq{"is_active": true}

func activeRowsOf(tableAlias string) squirrel.Eq {
	return squirrel.Eq{tableAlias + ".is_active": true}
}
