package queries

import (
	"context"

	"orderadmin/internal/pkg/like"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order pages from the database.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db, users)
//	query, _ := NewListOrdersQuery("", "", 1, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Items), page.Total)
type ListOrdersQueryHandler struct {
	db    *gorm.DB
	users UserDirectory
}

func NewListOrdersQueryHandler(db *gorm.DB, users UserDirectory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		db:    db,
		users: users,
	}
}

// Handle returns the requested page ordered by creation time, newest first, with ties
// broken by id. A user filter matching nobody yields an empty page.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	response := ListOrdersQueryResponse{
		Items:   make([]OrderSummary, 0),
		Page:    query.Page(),
		PerPage: query.PerPage(),
	}

	filtered := h.db.WithContext(ctx).Table("orders")
	if query.NoLike() != "" {
		filtered = filtered.Where("no"+like.Condition, like.Contains(query.NoLike()))
	}

	if query.UserNameLike() != "" {
		userIDs, err := h.users.IDsByNameLike(ctx, query.UserNameLike())
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if len(userIDs) == 0 {
			return response, nil
		}
		filtered = filtered.Where("user_id IN ?", userIDs)
	}

	if err := filtered.Session(&gorm.Session{}).Count(&response.Total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if response.Total == 0 {
		return response, nil
	}

	var records []orderRecord
	err := filtered.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Offset(query.offset()).
		Limit(query.PerPage()).
		Find(&records).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	names, err := h.users.NamesByIDs(ctx, distinctUserIDs(records))
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	for _, r := range records {
		response.Items = append(response.Items, r.summary(names[r.UserID]))
	}

	return response, nil
}

func distinctUserIDs(records []orderRecord) []int64 {
	seen := make(map[int64]struct{}, len(records))
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}
	return ids
}
