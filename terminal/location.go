// Package terminal provides the Terminal resources of the Stripe API.
package terminal

import (
	"github.com/andrewpillar/stripeapi"
)

// LocationID is the ID of a Location.
type LocationID string

// Location represents a grouping of readers. Readers can only be registered to
// a location, and are typically grouped by the physical store they are in.
type Location struct {
	Address                stripeapi.Address  `json:"address"`
	AddressKana            *JapanAddress      `json:"address_kana"`
	AddressKanji           *JapanAddress      `json:"address_kanji"`
	ConfigurationOverrides *string            `json:"configuration_overrides"`
	DisplayName            string             `json:"display_name"`
	DisplayNameKana        *string            `json:"display_name_kana"`
	DisplayNameKanji       *string            `json:"display_name_kanji"`
	ID                     LocationID         `json:"id"`
	Livemode               bool               `json:"livemode"`
	Metadata               stripeapi.Metadata `json:"metadata"`
	Phone                  *string            `json:"phone"`
}

// JapanAddress is the Kana or Kanji variation of an address in Japan.
type JapanAddress struct {
	stripeapi.Address

	Town *string `json:"town"`
}

// DeletedLocation is the tombstone of a deleted Location.
type DeletedLocation struct {
	ID      LocationID `json:"id"`
	Deleted bool       `json:"deleted"`
}

// MaybeDeletedLocation is returned from the endpoints that return either a
// Location, or the tombstone of that Location if it has been deleted.
type MaybeDeletedLocation = stripeapi.MaybeDeleted[Location, DeletedLocation]

var (
	_ stripeapi.Object = (*Location)(nil)
	_ stripeapi.Object = (*DeletedLocation)(nil)
)

func (id LocationID) String() string { return string(id) }

func (l *Location) GetID() string { return string(l.ID) }

func (*Location) ObjectName() string { return "terminal.location" }

func (l *Location) UnmarshalJSON(data []byte) error {
	var l1 Location

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("address", &l1.Address),
		stripeapi.Optional("address_kana", &l1.AddressKana),
		stripeapi.Optional("address_kanji", &l1.AddressKanji),
		stripeapi.Optional("configuration_overrides", &l1.ConfigurationOverrides),
		stripeapi.Required("display_name", &l1.DisplayName),
		stripeapi.Optional("display_name_kana", &l1.DisplayNameKana),
		stripeapi.Optional("display_name_kanji", &l1.DisplayNameKanji),
		stripeapi.Required("id", &l1.ID),
		stripeapi.Required("livemode", &l1.Livemode),
		stripeapi.Required("metadata", &l1.Metadata),
		stripeapi.Optional("phone", &l1.Phone),
	)

	if err != nil {
		return err
	}
	(*l) = l1
	return nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	type location Location
	return stripeapi.MarshalObject(l.ObjectName(), location(l))
}

func (l *DeletedLocation) GetID() string { return string(l.ID) }

func (*DeletedLocation) ObjectName() string { return "terminal.location" }

func (l *DeletedLocation) UnmarshalJSON(data []byte) error {
	var l1 DeletedLocation

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("deleted", &l1.Deleted),
		stripeapi.Required("id", &l1.ID),
	)

	if err != nil {
		return err
	}
	(*l) = l1
	return nil
}

func (l DeletedLocation) MarshalJSON() ([]byte, error) {
	type deletedLocation DeletedLocation
	return stripeapi.MarshalObject(l.ObjectName(), deletedLocation(l))
}
