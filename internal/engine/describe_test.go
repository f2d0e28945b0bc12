package engine

import (
	"testing"

	"github.com/giftai/giftai/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		name         string
		purpose      model.Purpose
		relationship model.Relationship
		want         Tone
	}{
		{"partner is romantic", model.PurposeBirthday, model.RelationshipPartner, ToneRomantic},
		{"romantic purpose is romantic", model.PurposeRomantic, model.RelationshipFriend, ToneRomantic},
		{"corporate purpose", model.PurposeCorporate, "", ToneCorporate},
		{"colleague relationship", model.PurposeBirthday, model.RelationshipColleague, ToneCorporate},
		{"apology purpose", model.PurposeApology, model.RelationshipFriend, ToneApology},
		{"plain birthday is neutral", model.PurposeBirthday, model.RelationshipFriend, ToneNeutral},
		{"no context is neutral", model.PurposeSpontaneous, "", ToneNeutral},

		// Precedence: romantic wins over corporate, corporate over apology.
		{"partner beats corporate purpose", model.PurposeCorporate, model.RelationshipPartner, ToneRomantic},
		{"romantic purpose beats colleague", model.PurposeRomantic, model.RelationshipColleague, ToneRomantic},
		{"colleague beats apology", model.PurposeApology, model.RelationshipColleague, ToneCorporate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToneFor(tt.purpose, tt.relationship))
		})
	}
}

func TestDescribeTonesAndTargets(t *testing.T) {
	item := model.CatalogItem{
		ID:              "photo_album",
		Name:            "Personalized Photo Album",
		Category:        "memory",
		BasePrice:       900,
		BaseDescription: "An elegant album ready to be filled with photos you took together.",
	}

	t.Run("romantic partner", func(t *testing.T) {
		desc := Describe(item, model.RecommendRequest{
			Purpose:   model.PurposeRomantic,
			Recipient: model.Recipient{Relationship: model.RelationshipPartner},
		})
		assert.Contains(t, desc, "romantic pick")
		assert.Contains(t, desc, "your partner")
		assert.Contains(t, desc, item.BaseDescription)
		assert.NotContains(t, desc, "office gift")
	})

	t.Run("corporate", func(t *testing.T) {
		desc := Describe(item, model.RecommendRequest{Purpose: model.PurposeCorporate})
		assert.Contains(t, desc, "office gift")
		assert.Contains(t, desc, item.BaseDescription)
		assert.NotContains(t, desc, "romantic pick")
	})

	t.Run("apology", func(t *testing.T) {
		desc := Describe(item, model.RecommendRequest{Purpose: model.PurposeApology})
		assert.Contains(t, desc, "make amends")
		assert.Contains(t, desc, item.BaseDescription)
	})

	t.Run("neutral", func(t *testing.T) {
		desc := Describe(item, model.RecommendRequest{Purpose: model.PurposeBirthday})
		assert.Contains(t, desc, "everyday choice")
		assert.Contains(t, desc, item.BaseDescription)
	})
}

func TestTargetPhrase(t *testing.T) {
	tests := []struct {
		relationship model.Relationship
		want         string
	}{
		{model.RelationshipPartner, "your partner"},
		{model.RelationshipFriend, "your close friend"},
		{model.RelationshipParent, "your parent"},
		{model.RelationshipSibling, "your sibling"},
		{model.RelationshipColleague, "your colleague"},
		{model.RelationshipOther, "the person you're buying for"},
		{"", "the person you're buying for"},
		{"penpal", "the person you're buying for"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, targetPhrase(tt.relationship), "relationship=%q", tt.relationship)
	}
}
