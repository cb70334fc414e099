package queries

import (
	"errors"
	"strings"

	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through all orders, soft-deleted ones included, newest first.
// Empty filters match everything.
//
// Example:
//
//	query, err := NewListOrdersQuery("2024", "alice", 1, 20)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	noLike       string
	userNameLike string
	page         int
	perPage      int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. A zero page means the first page and
// a zero perPage means DefaultPerPage.
func NewListOrdersQuery(noLike, userNameLike string, page, perPage int) (ListOrdersQuery, error) {
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}

	var errList []error
	if page < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded"))
	}
	if perPage < 1 || perPage > MaxPerPage {
		errList = append(errList, errs.NewValueIsOutOfRangeError("per_page", perPage, 1, MaxPerPage))
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		noLike:       strings.TrimSpace(noLike),
		userNameLike: strings.TrimSpace(userNameLike),
		page:         page,
		perPage:      perPage,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) NoLike() string {
	return q.noLike
}

func (q ListOrdersQuery) UserNameLike() string {
	return q.userNameLike
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) PerPage() int {
	return q.perPage
}

func (q ListOrdersQuery) offset() int {
	return (q.page - 1) * q.perPage
}

// ListOrdersQueryResponse is one page of orders plus the total number of matches.
type ListOrdersQueryResponse struct {
	Items   []OrderSummary `json:"items"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}
