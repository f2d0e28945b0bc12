package engine

import (
	"fmt"

	"github.com/giftai/giftai/internal/model"
)

// Tone is the narrative framing class used to template a description.
type Tone string

// Tones, in precedence order.
const (
	ToneRomantic  Tone = "romantic"
	ToneCorporate Tone = "corporate"
	ToneApology   Tone = "apology"
	ToneNeutral   Tone = "neutral"
)

// ToneFor derives the description tone from the request context. Precedence:
// romantic > corporate > apology > neutral.
func ToneFor(purpose model.Purpose, relationship model.Relationship) Tone {
	if relationship == model.RelationshipPartner || purpose == model.PurposeRomantic {
		return ToneRomantic
	}
	if purpose == model.PurposeCorporate || relationship == model.RelationshipColleague {
		return ToneCorporate
	}
	if purpose == model.PurposeApology {
		return ToneApology
	}
	return ToneNeutral
}

// targetPhrase names the gift's recipient in prose, keyed off relationship.
func targetPhrase(relationship model.Relationship) string {
	switch relationship {
	case model.RelationshipPartner:
		return "your partner"
	case model.RelationshipFriend:
		return "your close friend"
	case model.RelationshipParent:
		return "your parent"
	case model.RelationshipSibling:
		return "your sibling"
	case model.RelationshipColleague:
		return "your colleague"
	default:
		return "the person you're buying for"
	}
}

// Describe renders the item's blurb with tone-appropriate framing around
// its base description. Pure function, no failure mode.
func Describe(item model.CatalogItem, req model.RecommendRequest) string {
	tone := ToneFor(req.Purpose, req.Recipient.Relationship)
	base := item.BaseDescription

	switch tone {
	case ToneRomantic:
		return fmt.Sprintf(
			"A romantic pick chosen with %s in mind, all about collecting memories together. %s",
			targetPhrase(req.Recipient.Relationship), base)
	case ToneCorporate:
		return fmt.Sprintf(
			"An elegant yet risk-free office gift you can comfortably give in a work setting. %s", base)
	case ToneApology:
		return fmt.Sprintf(
			"A thoughtful gesture to smooth things over and make amends. %s", base)
	default:
		return fmt.Sprintf(
			"A safe, everyday choice most people will genuinely enjoy. %s", base)
	}
}
