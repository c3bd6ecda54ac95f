// Package catalog holds the read-only domain objects the pages render:
// locker documents, analyzed clauses, case-law results, and news articles.
// Entries are seeded in memory and never persisted; a real backend would
// replace the seed functions while keeping the types.
package catalog

import "fmt"

// BadgeVariant is the closed set of badge styles a renderer can produce.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgeSecondary
	BadgeOutline
	BadgeDestructive
)

// DocumentStatus is the analysis state of an uploaded document.
type DocumentStatus int

const (
	StatusAnalyzed DocumentStatus = iota
	StatusPending
	StatusFailed
)

func (s DocumentStatus) String() string {
	switch s {
	case StatusAnalyzed:
		return "Analyzed"
	case StatusPending:
		return "Pending"
	case StatusFailed:
		return "Failed"
	}
	return fmt.Sprintf("DocumentStatus(%d)", int(s))
}

// Badge maps every status to a badge variant. The switch is exhaustive so
// a new status is a compile-and-test-time exercise, not a runtime fallback.
func (s DocumentStatus) Badge() BadgeVariant {
	switch s {
	case StatusAnalyzed:
		return BadgeDefault
	case StatusPending:
		return BadgeSecondary
	case StatusFailed:
		return BadgeDestructive
	}
	return BadgeDestructive
}

// Importance ranks an analyzed clause.
type Importance int

const (
	ImportanceHigh Importance = iota
	ImportanceMedium
	ImportanceLow
)

func (i Importance) String() string {
	switch i {
	case ImportanceHigh:
		return "High Priority"
	case ImportanceMedium:
		return "Medium Priority"
	case ImportanceLow:
		return "Low Priority"
	}
	return fmt.Sprintf("Importance(%d)", int(i))
}

func (i Importance) Badge() BadgeVariant {
	switch i {
	case ImportanceHigh:
		return BadgeDestructive
	case ImportanceMedium:
		return BadgeSecondary
	case ImportanceLow:
		return BadgeOutline
	}
	return BadgeOutline
}

// NewsCategory is the closed set of article categories.
type NewsCategory int

const (
	CategoryEmployment NewsCategory = iota
	CategoryCorporate
	CategoryContract
	CategoryIP
	CategoryEnvironmental
)

func (c NewsCategory) String() string {
	switch c {
	case CategoryEmployment:
		return "Employment Law"
	case CategoryCorporate:
		return "Corporate Law"
	case CategoryContract:
		return "Contract Law"
	case CategoryIP:
		return "IP Law"
	case CategoryEnvironmental:
		return "Environmental Law"
	}
	return fmt.Sprintf("NewsCategory(%d)", int(c))
}

func (c NewsCategory) Badge() BadgeVariant {
	switch c {
	case CategoryEmployment:
		return BadgeDefault
	case CategoryCorporate:
		return BadgeSecondary
	case CategoryContract:
		return BadgeOutline
	case CategoryIP:
		return BadgeDestructive
	case CategoryEnvironmental:
		return BadgeDefault
	}
	return BadgeOutline
}

// Categories lists every category in display order.
func Categories() []NewsCategory {
	return []NewsCategory{
		CategoryEmployment, CategoryCorporate, CategoryContract,
		CategoryIP, CategoryEnvironmental,
	}
}

// RelevanceBadge maps a 0-100 relevance score to a badge variant.
func RelevanceBadge(score int) BadgeVariant {
	if score >= 90 {
		return BadgeDefault
	}
	if score >= 80 {
		return BadgeSecondary
	}
	return BadgeOutline
}
