package repository

import (
	"fmt"

	"github.com/QuangTung97/conference/model"
)

type scanField interface {
	comparable
	fmt.Stringer
}

// checkRangeScan allows inequality operators on at most one field, which must be the first sort key
func checkRangeScan[F scanField](fields []F, operators []model.FilterOperator, orders []F) error {
	var inequality F
	found := false
	for i, field := range fields {
		if !operators[i].IsInequality() {
			continue
		}
		if found && inequality != field {
			return fmt.Errorf("%w: inequality filters on both %s and %s", ErrInvalidQuery, inequality, field)
		}
		inequality = field
		found = true
	}

	if found && (len(orders) == 0 || orders[0] != inequality) {
		return fmt.Errorf("%w: first sort key must be the inequality field %s", ErrInvalidQuery, inequality)
	}
	return nil
}
