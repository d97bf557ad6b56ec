package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ResourceKind names a family of backend resources. Its value is the
// endpoint path relative to the backend base URL.
type ResourceKind string

const (
	ResourceProfile     ResourceKind = "/auth/profile"
	ResourceProduct     ResourceKind = "/product"
	ResourceCart        ResourceKind = "/cart"
	ResourceOrder       ResourceKind = "/order"
	ResourceTransaction ResourceKind = "/transaction"
	ResourceDelivery    ResourceKind = "/delivery"
	ResourceAccount     ResourceKind = "/account"
)

// ResourceRef identifies one backend resource: a list when ID is empty,
// otherwise a single item.
type ResourceRef struct {
	Kind ResourceKind
	ID   string
}

// Ref is a shorthand constructor for ResourceRef.
func Ref(kind ResourceKind, id ...string) ResourceRef {
	return ResourceRef{Kind: kind, ID: strings.Join(id, "/")}
}

// IsZero reports whether the ref names nothing.
func (r ResourceRef) IsZero() bool {
	return r.Kind == ""
}

// Endpoint returns the backend path of the resource.
func (r ResourceRef) Endpoint() string {
	if r.ID == "" {
		return string(r.Kind)
	}

	return string(r.Kind) + "/" + r.ID
}

// CacheKey is the structured key of the resource cache. The epoch ties an
// entry to the credential it was fetched with.
type CacheKey struct {
	Ref   ResourceRef
	Epoch uint64
}

// String renders the key for logging and single-flight grouping.
func (k CacheKey) String() string {
	return k.Ref.Endpoint() + "@" + strconv.FormatUint(k.Epoch, 10)
}

// CachedResource is the observable state of one cache entry.
// Data is kept while a refetch for the same key is in flight.
type CachedResource struct {
	Key       CacheKey
	Data      json.RawMessage
	IsLoading bool
	Err       error
}

// HasData reports whether a successful value is available.
func (r CachedResource) HasData() bool {
	return len(r.Data) > 0
}
