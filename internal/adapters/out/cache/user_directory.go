// Package cache keeps hot reference data of the admin panel in memory.
package cache

import (
	"context"

	"orderadmin/internal/core/application/usecases/queries"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultUserDirectorySize is the number of user names kept when no size is configured.
const DefaultUserDirectorySize = 1024

var _ queries.UserDirectory = (*UserDirectory)(nil)

// UserDirectory caches user names in front of another directory. Name searches
// always reach the underlying directory since their result sets change with
// every new registration.
type UserDirectory struct {
	next  queries.UserDirectory
	names *lru.Cache[int64, string]
}

func NewUserDirectory(next queries.UserDirectory, size int) (*UserDirectory, error) {
	if size <= 0 {
		size = DefaultUserDirectorySize
	}

	names, err := lru.New[int64, string](size)
	if err != nil {
		return nil, err
	}

	return &UserDirectory{next: next, names: names}, nil
}

// NamesByIDs serves cached names and asks the underlying directory only for misses.
// Ids unknown to the underlying directory are not cached.
func (d *UserDirectory) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	var missing []int64
	for _, id := range ids {
		if name, ok := d.names.Get(id); ok {
			names[id] = name
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return names, nil
	}

	fetched, err := d.next.NamesByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, name := range fetched {
		d.names.Add(id, name)
		names[id] = name
	}

	return names, nil
}

func (d *UserDirectory) IDsByNameLike(ctx context.Context, fragment string) ([]int64, error) {
	return d.next.IDsByNameLike(ctx, fragment)
}

// Forget drops a cached name, e.g. after the user was renamed.
func (d *UserDirectory) Forget(id int64) {
	d.names.Remove(id)
}

func (d *UserDirectory) Len() int {
	return d.names.Len()
}
