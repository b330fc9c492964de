//go:build unit

package readstore

import "gin-storefront/internal/usecase/queries"

func slugs(products []queries.ProductView) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}
