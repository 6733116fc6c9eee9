// Package catalog serves the mall/restaurant directory. It is a pure
// in-memory lookup with no state beyond the compiled-in data set.
package catalog

import "sort"

type Restaurant struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Floor    string `json:"floor"`
	Category string `json:"category"`
	// PlaceID is the Google Maps short link id, empty when the listing
	// has no verified place yet.
	PlaceID string `json:"place_id,omitempty"`
}

type Mall struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type Catalog struct {
	malls       []Mall
	restaurants map[string][]Restaurant
}

func New() *Catalog {
	return &Catalog{
		malls:       mallInfo,
		restaurants: mallRestaurants,
	}
}

func (c *Catalog) Malls() []Mall {
	out := make([]Mall, len(c.malls))
	copy(out, c.malls)
	return out
}

func (c *Catalog) HasMall(mallID string) bool {
	_, ok := c.restaurants[mallID]
	return ok
}

// Categories returns the distinct categories present in a mall, sorted.
func (c *Catalog) Categories(mallID string) []string {
	seen := map[string]bool{}
	var cats []string
	for _, r := range c.restaurants[mallID] {
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// RestaurantsByCategories returns the mall's restaurants whose category
// is in cats, in directory order.
func (c *Catalog) RestaurantsByCategories(mallID string, cats []string) []Restaurant {
	wanted := make(map[string]bool, len(cats))
	for _, cat := range cats {
		wanted[cat] = true
	}

	var out []Restaurant
	for _, r := range c.restaurants[mallID] {
		if wanted[r.Category] {
			out = append(out, r)
		}
	}
	return out
}

// AllRestaurants returns every restaurant in a mall.
func (c *Catalog) AllRestaurants(mallID string) []Restaurant {
	rs := c.restaurants[mallID]
	out := make([]Restaurant, len(rs))
	copy(out, rs)
	return out
}
