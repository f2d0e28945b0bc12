package model

import "fmt"

// Relationship describes who the gift is for, relative to the requester.
type Relationship string

// Known relationships. An empty or unrecognized value is allowed by the
// core and treated as "other".
const (
	RelationshipPartner   Relationship = "partner"
	RelationshipFriend    Relationship = "friend"
	RelationshipParent    Relationship = "parent"
	RelationshipSibling   Relationship = "sibling"
	RelationshipColleague Relationship = "colleague"
	RelationshipOther     Relationship = "other"
)

// Purpose is the occasion the gift is for.
type Purpose string

// Known purposes.
const (
	PurposeBirthday     Purpose = "birthday"
	PurposeRomantic     Purpose = "romantic"
	PurposeNewBeginning Purpose = "new-beginning"
	PurposeApology      Purpose = "apology"
	PurposeCorporate    Purpose = "corporate"
	PurposeSpontaneous  Purpose = "spontaneous"
)

// Valid reports whether p is one of the known purposes.
func (p Purpose) Valid() bool {
	switch p {
	case PurposeBirthday, PurposeRomantic, PurposeNewBeginning,
		PurposeApology, PurposeCorporate, PurposeSpontaneous:
		return true
	}
	return false
}

// RiskLevel expresses how adventurous the gift may be.
type RiskLevel string

// Known risk levels.
const (
	RiskSafe   RiskLevel = "safe"
	RiskNormal RiskLevel = "normal"
	RiskBold   RiskLevel = "bold"
)

// Valid reports whether r is one of the known risk levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskSafe, RiskNormal, RiskBold:
		return true
	}
	return false
}

// Urgency expresses how soon the gift is needed. It is part of the request
// contract and passed through to the scoring profile, but current ranking
// logic does not use it.
type Urgency string

// Known urgency levels.
const (
	UrgencyFlexible Urgency = "flexible"
	UrgencyFewDays  Urgency = "few-days"
	UrgencySameDay  Urgency = "same-day"
)

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyFlexible, UrgencyFewDays, UrgencySameDay:
		return true
	}
	return false
}

// Recipient is the profile of the person receiving the gift. All fields
// are optional; zero values mean "not provided".
type Recipient struct {
	Gender       string       `json:"gender,omitempty"`
	Relationship Relationship `json:"relationship,omitempty"`
	Hobbies      []string     `json:"hobbies,omitempty"`
	StyleTags    []string     `json:"style_tags,omitempty"`
	Age          int          `json:"age,omitempty"`
}

// TopN bounds for a single request.
const (
	MinTopN = 1
	MaxTopN = 5
)

// RecommendRequest carries everything needed for one recommendation run.
// BudgetMin and BudgetMax use zero to mean "no bound"; the core does not
// enforce BudgetMin <= BudgetMax, that is the caller's responsibility.
type RecommendRequest struct {
	FreeText  string    `json:"free_text,omitempty"`
	Purpose   Purpose   `json:"purpose"`
	RiskLevel RiskLevel `json:"risk_level"`
	Urgency   Urgency   `json:"urgency"`
	Recipient Recipient `json:"recipient"`
	BudgetMin float64   `json:"budget_min,omitempty"`
	BudgetMax float64   `json:"budget_max,omitempty"`
	TopN      int       `json:"top_n"`
}

// ClampedTopN returns TopN clamped to [MinTopN, MaxTopN]. Out-of-range
// values are corrected rather than rejected.
func (r *RecommendRequest) ClampedTopN() int {
	if r.TopN < MinTopN {
		return MinTopN
	}
	if r.TopN > MaxTopN {
		return MaxTopN
	}
	return r.TopN
}

// Validate checks the enum-valued fields and budget signs. It is meant for
// the request boundary (HTTP handler, CLI flag parsing); the core pipeline
// itself never rejects a request.
func (r *RecommendRequest) Validate() error {
	if !r.Purpose.Valid() {
		return fmt.Errorf("invalid purpose: %q", r.Purpose)
	}
	if !r.RiskLevel.Valid() {
		return fmt.Errorf("invalid risk_level: %q", r.RiskLevel)
	}
	if !r.Urgency.Valid() {
		return fmt.Errorf("invalid urgency: %q", r.Urgency)
	}
	if r.BudgetMin < 0 {
		return fmt.Errorf("budget_min must be non-negative, got %.2f", r.BudgetMin)
	}
	if r.BudgetMax < 0 {
		return fmt.Errorf("budget_max must be non-negative, got %.2f", r.BudgetMax)
	}
	return nil
}
