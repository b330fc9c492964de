package queries

import "gin-storefront/internal/infra"

// notFoundAs swaps a store not-found for the use case sentinel and passes other errors through.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
