package queries

import "context"

type DashboardReadStore interface {
	Counts(ctx context.Context) (*DashboardView, error)
}

type DashboardQueries interface {
	Summary(ctx context.Context) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
}

func NewDashboardQueries(readStore DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

func (q *dashboardQueriesImpl) Summary(ctx context.Context) (*DashboardView, error) {
	return q.readStore.Counts(ctx)
}
