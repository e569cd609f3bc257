package models

// CatalogService is one service on the price list, carrying both the
// regular and the member price.
type CatalogService struct {
	Category     string  `json:"category"`
	Service      string  `json:"service"`
	RegularPrice float64 `json:"r_price"`
	MemberPrice  float64 `json:"m_price"`
}

// Catalog is the gender-keyed service price list.
type Catalog map[string][]CatalogService

// Genders lists the catalog sections in a stable order.
func (c Catalog) Genders() []string {
	genders := make([]string, 0, len(c))
	for _, g := range []string{"women", "men"} {
		if _, ok := c[g]; ok {
			genders = append(genders, g)
		}
	}
	for g := range c {
		if g != "women" && g != "men" {
			genders = append(genders, g)
		}
	}
	return genders
}

// Categories lists the distinct categories for a gender, in catalog
// order. Returns nil for an unknown gender.
func (c Catalog) Categories(gender string) []string {
	services, ok := c[gender]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	categories := []string{}
	for _, s := range services {
		if !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}
	return categories
}

// ServicesByCategory lists the services for a gender and category.
func (c Catalog) ServicesByCategory(gender, category string) []CatalogService {
	result := []CatalogService{}
	for _, s := range c[gender] {
		if s.Category == category {
			result = append(result, s)
		}
	}
	return result
}

// Find looks a service up by gender and name.
func (c Catalog) Find(gender, service string) (CatalogService, bool) {
	for _, s := range c[gender] {
		if s.Service == service {
			return s, true
		}
	}
	return CatalogService{}, false
}

// DefaultCatalog returns the salon's full price list.
func DefaultCatalog() Catalog {
	return Catalog{
		"women": {
			{Category: "Facial", Service: "Aroma Facial", RegularPrice: 750, MemberPrice: 700},
			{Category: "Facial", Service: "Pure Moist", RegularPrice: 750, MemberPrice: 700},
			{Category: "Facial", Service: "Fruit Facial", RegularPrice: 1000, MemberPrice: 900},
			{Category: "Facial", Service: "Lotos Puravital", RegularPrice: 1100, MemberPrice: 1050},
			{Category: "Facial", Service: "Lotus Hydravital", RegularPrice: 1100, MemberPrice: 1050},
			{Category: "Facial", Service: "Gold Facial", RegularPrice: 1200, MemberPrice: 1100},
			{Category: "Facial", Service: "D-Tan Facial", RegularPrice: 1350, MemberPrice: 1250},
			{Category: "Facial", Service: "Charcoal Facial", RegularPrice: 1300, MemberPrice: 1200},
			{Category: "Facial", Service: "Acne Facial Treatment", RegularPrice: 1500, MemberPrice: 1450},
			{Category: "Facial", Service: "Skin Lightening", RegularPrice: 1700, MemberPrice: 1600},
			{Category: "Facial", Service: "O3+ Facial", RegularPrice: 1900, MemberPrice: 1700},
			{Category: "Facial", Service: "Radiance Facial", RegularPrice: 2200, MemberPrice: 2000},
			{Category: "Facial", Service: "Anti-ageing Facial", RegularPrice: 2500, MemberPrice: 2300},
			{Category: "Facial", Service: "Pigmentation Facial", RegularPrice: 2500, MemberPrice: 2300},
			{Category: "Facial", Service: "Diamond Facial", RegularPrice: 3000, MemberPrice: 2800},
			{Category: "Facial", Service: "Pearl Facial", RegularPrice: 2000, MemberPrice: 1900},
			{Category: "Add On Mask", Service: "Firming Mask", RegularPrice: 450, MemberPrice: 400},
			{Category: "Add On Mask", Service: "Bridal Glow", RegularPrice: 700, MemberPrice: 650},
			{Category: "Add On Mask", Service: "Charcoal Mask", RegularPrice: 500, MemberPrice: 450},
			{Category: "Add On Mask", Service: "Whitening & Brightening", RegularPrice: 750, MemberPrice: 700},
			{Category: "Add On Mask", Service: "Skin Tightening", RegularPrice: 700, MemberPrice: 600},
		},
		"men": {
			{Category: "Facial", Service: "Aroma Facial", RegularPrice: 750, MemberPrice: 700},
			{Category: "Facial", Service: "Pure Moist", RegularPrice: 750, MemberPrice: 700},
			{Category: "Facial", Service: "Fruit Facial", RegularPrice: 1000, MemberPrice: 900},
			{Category: "Facial", Service: "Lotos Puravital", RegularPrice: 1100, MemberPrice: 1050},
			{Category: "Facial", Service: "Lotus Hydravital", RegularPrice: 1100, MemberPrice: 1050},
			{Category: "Facial", Service: "Gold Facial", RegularPrice: 1200, MemberPrice: 1100},
			{Category: "Facial", Service: "D-Tan Facial", RegularPrice: 1350, MemberPrice: 1250},
			{Category: "Facial", Service: "Charcoal Facial", RegularPrice: 1300, MemberPrice: 1200},
			{Category: "Facial", Service: "Acne Facial Treatment", RegularPrice: 1500, MemberPrice: 1450},
			{Category: "Facial", Service: "Skin Lightening", RegularPrice: 1700, MemberPrice: 1600},
			{Category: "Facial", Service: "O3+ Facial", RegularPrice: 1900, MemberPrice: 1700},
			{Category: "Facial", Service: "Radiance Facial", RegularPrice: 2200, MemberPrice: 2000},
			{Category: "Facial", Service: "Anti-ageing Facial", RegularPrice: 2500, MemberPrice: 2300},
			{Category: "Facial", Service: "Pigmentation Facial", RegularPrice: 2500, MemberPrice: 2300},
			{Category: "Facial", Service: "Diamond Facial", RegularPrice: 3000, MemberPrice: 2800},
			{Category: "Facial", Service: "Pearl Facial", RegularPrice: 2000, MemberPrice: 1900},
			{Category: "Peel-Off Mask", Service: "Gold Peel-Off Mask", RegularPrice: 250, MemberPrice: 200},
			{Category: "Peel-Off Mask", Service: "Charcoal Peel-Off Mask", RegularPrice: 200, MemberPrice: 150},
			{Category: "Peel-Off Mask", Service: "Skin Tightening Mask", RegularPrice: 300, MemberPrice: 250},
			{Category: "Peel-Off Mask", Service: "Skin Lightening Mask", RegularPrice: 500, MemberPrice: 450},
			{Category: "Hair Oil Massage", Service: "Olive Oil", RegularPrice: 300, MemberPrice: 250},
			{Category: "Hair Oil Massage", Service: "Coconut Oil", RegularPrice: 250, MemberPrice: 200},
			{Category: "Hair Oil Massage", Service: "Aroma Oil", RegularPrice: 350, MemberPrice: 200},
			{Category: "Hair Oil Massage", Service: "Moroccan Oil", RegularPrice: 450, MemberPrice: 400},
		},
	}
}
