package matching

import "strings"

// Bucket ids for the coarse category groups. Fine-grained job categories
// map into one of these for Flexible category matching.
const (
	BucketEngineeringData = 1
	BucketProductDesign   = 2
	BucketStrategyFinance = 3
	BucketSalesMarketing  = 4
	BucketPeopleLegal     = 5
	BucketHealthcare      = 6
	BucketCreativeMedia   = 7
	BucketIndustryField   = 8
	BucketOther           = 9
)

// Taxonomy maps fine-grained job categories to coarse bucket ids. It is
// injected into the pipeline at construction so alternate taxonomies can be
// tested without touching filter logic. Lookups are case-insensitive.
type Taxonomy struct {
	version string
	buckets map[string]int
	members map[int][]string
}

func NewTaxonomy(version string, categories map[string]int) Taxonomy {
	buckets := make(map[string]int, len(categories))
	members := make(map[int][]string)
	for cat, bucket := range categories {
		key := strings.ToLower(strings.TrimSpace(cat))
		if key == "" {
			continue
		}
		if _, dup := buckets[key]; dup {
			continue
		}
		buckets[key] = bucket
		members[bucket] = append(members[bucket], key)
	}
	return Taxonomy{version: version, buckets: buckets, members: members}
}

func (t Taxonomy) Version() string { return t.version }

// Bucket resolves the bucket id for a category.
func (t Taxonomy) Bucket(category string) (int, bool) {
	b, ok := t.buckets[strings.ToLower(strings.TrimSpace(category))]
	return b, ok
}

// BucketMembers returns every category (lowercased) mapped into the bucket.
func (t Taxonomy) BucketMembers(bucket int) []string {
	src := t.members[bucket]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// SameBucket reports whether both categories resolve to the same bucket.
func (t Taxonomy) SameBucket(a, b string) bool {
	ba, ok := t.Bucket(a)
	if !ok {
		return false
	}
	bb, ok := t.Bucket(b)
	if !ok {
		return false
	}
	return ba == bb
}

// DefaultTaxonomy is the category table shipped with the marketplace.
func DefaultTaxonomy() Taxonomy {
	return NewTaxonomy("2025-08", map[string]int{
		"Software Engineering": BucketEngineeringData,
		"Data Science":         BucketEngineeringData,
		"Data Engineering":     BucketEngineeringData,
		"Machine Learning":     BucketEngineeringData,
		"DevOps":               BucketEngineeringData,
		"IT & Security":        BucketEngineeringData,
		"QA & Testing":         BucketEngineeringData,

		"Product Management": BucketProductDesign,
		"UX/UI Design":       BucketProductDesign,
		"Design":             BucketProductDesign,

		"Strategy & Consulting": BucketStrategyFinance,
		"Operations":            BucketStrategyFinance,
		"Business Analysis":     BucketStrategyFinance,
		"Finance":               BucketStrategyFinance,
		"Accounting":            BucketStrategyFinance,

		"Sales":                BucketSalesMarketing,
		"Marketing":            BucketSalesMarketing,
		"Business Development": BucketSalesMarketing,
		"Customer Success":     BucketSalesMarketing,

		"Human Resources": BucketPeopleLegal,
		"Recruiting":      BucketPeopleLegal,
		"Legal":           BucketPeopleLegal,
		"Administrative":  BucketPeopleLegal,

		"Healthcare":         BucketHealthcare,
		"Nursing":            BucketHealthcare,
		"Pharmacy":           BucketHealthcare,
		"Medical & Clinical": BucketHealthcare,

		"Creative & Media": BucketCreativeMedia,
		"Content Writing":  BucketCreativeMedia,
		"Video & Media":    BucketCreativeMedia,
		"Journalism":       BucketCreativeMedia,

		"Manufacturing":            BucketIndustryField,
		"Construction":             BucketIndustryField,
		"Logistics & Supply Chain": BucketIndustryField,
		"Retail":                   BucketIndustryField,
		"Hospitality":              BucketIndustryField,
		"Education":                BucketIndustryField,
		"Field Services":           BucketIndustryField,

		"Other": BucketOther,
	})
}
