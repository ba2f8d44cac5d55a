// Package cache holds server-owned read models keyed by resource and filter
// parameters. Every write replaces a whole value; there is exactly one value
// per key and the last write wins.
package cache

import (
	"net/url"
	"slices"
)

// Key identifies one cached read model: a resource name plus its filter
// parameters in canonical (sorted, encoded) form.
type Key struct {
	Resource string
	Params   string
}

// NewKey builds a key. Parameter order does not matter and empty values are
// dropped, so equal filters always produce equal keys.
func NewKey(resource string, params url.Values) Key {
	clean := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	for _, vs := range clean {
		slices.Sort(vs)
	}
	return Key{Resource: resource, Params: clean.Encode()}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + "?" + k.Params
}

// Query returns the filter parameters of the key.
func (k Key) Query() url.Values {
	v, _ := url.ParseQuery(k.Params)
	return v
}
