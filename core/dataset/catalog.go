package dataset

import (
	"encoding/json"
)

// Catalog is an ordered, read-only snapshot of datasets returned by a query.
type Catalog struct {
	items []Dataset
}

func NewCatalog(items []Dataset) Catalog {
	c := Catalog{items: make([]Dataset, len(items))}
	for i, d := range items {
		c.items[i] = d.clone()
	}
	return c
}

func (c Catalog) Len() int {
	return len(c.items)
}

func (c Catalog) At(i int) Dataset {
	return c.items[i].clone()
}

// Items returns a copy of the datasets in catalog order.
func (c Catalog) Items() []Dataset {
	out := make([]Dataset, len(c.items))
	for i, d := range c.items {
		out[i] = d.clone()
	}
	return out
}

func (c Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// FilterByName returns the datasets named name, in catalog order.
func (c Catalog) FilterByName(name string) []Dataset {
	out := []Dataset{}
	for _, d := range c.items {
		if d.Name == name {
			out = append(out, d.clone())
		}
	}
	return out
}

func (c Catalog) FindByID(id string) (Dataset, bool) {
	if id == "" {
		return Dataset{}, false
	}
	for _, d := range c.items {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return Dataset{}, false
}

// LatestVersion returns the dataset named name with the greatest version
// under LexicalVersionPolicy.
func (c Catalog) LatestVersion(name string) (Dataset, bool) {
	return c.LatestVersionWith(name, LexicalVersionPolicy)
}

// LatestVersionWith returns the dataset named name with the greatest version
// under policy. Ties keep the earliest dataset in catalog order.
func (c Catalog) LatestVersionWith(name string, policy VersionPolicy) (Dataset, bool) {
	if policy == nil {
		policy = LexicalVersionPolicy
	}

	var (
		latest Dataset
		found  bool
	)
	for _, d := range c.items {
		if d.Name != name {
			continue
		}
		if !found || policy.Less(latest.Version, d.Version) {
			latest = d
			found = true
		}
	}
	return latest.clone(), found
}
