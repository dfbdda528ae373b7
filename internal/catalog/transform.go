// Package catalog translates raw Scryfall card records into storage rows
// and talks to the upstream card search API.
package catalog

import (
	"encoding/json"
	"fmt"

	"cardhub/internal/model"
)

// RawCard is one record of the Scryfall bulk data dump, reduced to the
// attributes the marketplace stores.
type RawCard struct {
	Name            string            `json:"name"`
	TypeLine        string            `json:"type_line"`
	Set             string            `json:"set"`
	SetName         string            `json:"set_name"`
	CollectorNumber CollectorNumber   `json:"collector_number"`
	ColorIdentity   []string          `json:"color_identity"`
	ImageURIs       map[string]string `json:"image_uris"`
}

// CollectorNumber is a string in the dump ("134a") but older exports
// carry plain numbers; both decode to the string form.
type CollectorNumber string

func (n *CollectorNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = CollectorNumber(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*n = CollectorNumber(num.String())
		return nil
	}

	return fmt.Errorf("collector_number: unsupported value %s", data)
}

// TransformCardData normalizes a raw catalog record into a card row.
// It is pure: no database, no defaults beyond empty strings, color is
// always one of the eight enumerated buckets.
func TransformCardData(raw RawCard) model.Card {
	number := string(raw.CollectorNumber)
	if number == "" {
		number = "0"
	}

	return model.Card{
		Color:           model.ColorFromIdentity(raw.ColorIdentity),
		SetCode:         raw.Set,
		SetName:         raw.SetName,
		CollectorNumber: number,
		Name:            raw.Name,
		CardType:        raw.TypeLine,
		ImageURLSmall:   raw.ImageURIs["small"],
		ImageURLNormal:  raw.ImageURIs["normal"],
		ImageURLLarge:   raw.ImageURIs["large"],
	}
}
