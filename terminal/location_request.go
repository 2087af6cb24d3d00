package terminal

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// JapanAddressParams is the Kana or Kanji variation of an address in Japan
// sent when creating, or updating a Location.
type JapanAddressParams struct {
	stripeapi.AddressParams

	Town *string `form:"town"`
}

// CreateLocationParams are the parameters for creating a Location.
type CreateLocationParams struct {
	Address                *stripeapi.AddressParams `form:"address"`
	AddressKana            *JapanAddressParams      `form:"address_kana"`
	AddressKanji           *JapanAddressParams      `form:"address_kanji"`
	ConfigurationOverrides *string                  `form:"configuration_overrides"`
	DisplayName            *string                  `form:"display_name"`
	DisplayNameKana        *string                  `form:"display_name_kana"`
	DisplayNameKanji       *string                  `form:"display_name_kanji"`
	Expand                 []string                 `form:"expand"`
	Metadata               stripeapi.Metadata       `form:"metadata"`
	Phone                  *string                  `form:"phone"`
}

// UpdateLocationParams are the parameters for updating a Location. Only the
// parameters that are set are sent.
type UpdateLocationParams CreateLocationParams

// RetrieveLocationParams are the parameters for retrieving a Location.
type RetrieveLocationParams struct {
	Expand []string `form:"expand"`
}

// ListLocationsParams are the parameters for listing Locations.
type ListLocationsParams struct {
	stripeapi.ListParams
}

// CreateLocation creates a new Location.
type CreateLocation struct {
	stripeapi.Returns[Location]

	params CreateLocationParams
}

// RetrieveLocation retrieves a Location. If the Location has been deleted
// then its tombstone is returned instead.
type RetrieveLocation struct {
	stripeapi.Returns[MaybeDeletedLocation]

	id     LocationID
	params RetrieveLocationParams
}

// UpdateLocation updates a Location.
type UpdateLocation struct {
	stripeapi.Returns[MaybeDeletedLocation]

	id     LocationID
	params UpdateLocationParams
}

// DeleteLocation deletes a Location.
type DeleteLocation struct {
	stripeapi.Returns[DeletedLocation]

	id LocationID
}

// ListLocations lists the Locations of the account.
type ListLocations struct {
	stripeapi.Returns[stripeapi.List[*Location]]

	params ListLocationsParams
}

var (
	_ stripeapi.Request[Location]                  = (*CreateLocation)(nil)
	_ stripeapi.Request[MaybeDeletedLocation]      = (*RetrieveLocation)(nil)
	_ stripeapi.Request[MaybeDeletedLocation]      = (*UpdateLocation)(nil)
	_ stripeapi.Request[DeletedLocation]           = (*DeleteLocation)(nil)
	_ stripeapi.Request[stripeapi.List[*Location]] = (*ListLocations)(nil)
)

func locationPath(id LocationID) string {
	return stripeapi.FormatPath("/terminal/locations/{}", string(id))
}

// NewCreateLocation returns the request to create a Location with the given
// display name at the given address.
func NewCreateLocation(displayName string, addr stripeapi.AddressParams) *CreateLocation {
	return &CreateLocation{
		params: CreateLocationParams{
			Address:     &addr,
			DisplayName: stripeapi.String(displayName),
		},
	}
}

func (r *CreateLocation) AddressKana(addr JapanAddressParams) *CreateLocation {
	r.params.AddressKana = &addr
	return r
}

func (r *CreateLocation) AddressKanji(addr JapanAddressParams) *CreateLocation {
	r.params.AddressKanji = &addr
	return r
}

// ConfigurationOverrides sets the ID of the reader configuration to use for
// the readers at the Location.
func (r *CreateLocation) ConfigurationOverrides(id string) *CreateLocation {
	r.params.ConfigurationOverrides = stripeapi.String(id)
	return r
}

func (r *CreateLocation) DisplayNameKana(name string) *CreateLocation {
	r.params.DisplayNameKana = stripeapi.String(name)
	return r
}

func (r *CreateLocation) DisplayNameKanji(name string) *CreateLocation {
	r.params.DisplayNameKanji = stripeapi.String(name)
	return r
}

func (r *CreateLocation) Expand(fields ...string) *CreateLocation {
	r.params.Expand = fields
	return r
}

func (r *CreateLocation) Metadata(m stripeapi.Metadata) *CreateLocation {
	r.params.Metadata = m
	return r
}

func (r *CreateLocation) Phone(phone string) *CreateLocation {
	r.params.Phone = stripeapi.String(phone)
	return r
}

func (r *CreateLocation) Params() *CreateLocationParams { return &r.params }

func (r *CreateLocation) Describe() stripeapi.Description {
	return stripeapi.Post("/terminal/locations", &r.params)
}

func (r *CreateLocation) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Location, error) {
	return stripeapi.Execute[Location](ctx, b, r, opts...)
}

// NewRetrieveLocation returns the request to retrieve the Location of the
// given ID.
func NewRetrieveLocation(id LocationID) *RetrieveLocation {
	return &RetrieveLocation{id: id}
}

func (r *RetrieveLocation) Expand(fields ...string) *RetrieveLocation {
	r.params.Expand = fields
	return r
}

func (r *RetrieveLocation) Params() *RetrieveLocationParams { return &r.params }

func (r *RetrieveLocation) Describe() stripeapi.Description {
	return stripeapi.Get(locationPath(r.id), &r.params)
}

// Send retrieves the Location. The returned value will carry either the
// Location, or its tombstone.
func (r *RetrieveLocation) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*MaybeDeletedLocation, error) {
	return stripeapi.Execute[MaybeDeletedLocation](ctx, b, r, opts...)
}

// NewUpdateLocation returns the request to update the Location of the given
// ID.
func NewUpdateLocation(id LocationID) *UpdateLocation {
	return &UpdateLocation{id: id}
}

func (r *UpdateLocation) Address(addr stripeapi.AddressParams) *UpdateLocation {
	r.params.Address = &addr
	return r
}

func (r *UpdateLocation) AddressKana(addr JapanAddressParams) *UpdateLocation {
	r.params.AddressKana = &addr
	return r
}

func (r *UpdateLocation) AddressKanji(addr JapanAddressParams) *UpdateLocation {
	r.params.AddressKanji = &addr
	return r
}

func (r *UpdateLocation) ConfigurationOverrides(id string) *UpdateLocation {
	r.params.ConfigurationOverrides = stripeapi.String(id)
	return r
}

func (r *UpdateLocation) DisplayName(name string) *UpdateLocation {
	r.params.DisplayName = stripeapi.String(name)
	return r
}

func (r *UpdateLocation) Expand(fields ...string) *UpdateLocation {
	r.params.Expand = fields
	return r
}

// Metadata sets the metadata of the Location. Keys set to an empty string are
// removed from the metadata.
func (r *UpdateLocation) Metadata(m stripeapi.Metadata) *UpdateLocation {
	r.params.Metadata = m
	return r
}

func (r *UpdateLocation) Phone(phone string) *UpdateLocation {
	r.params.Phone = stripeapi.String(phone)
	return r
}

func (r *UpdateLocation) Params() *UpdateLocationParams { return &r.params }

func (r *UpdateLocation) Describe() stripeapi.Description {
	return stripeapi.Post(locationPath(r.id), &r.params)
}

func (r *UpdateLocation) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*MaybeDeletedLocation, error) {
	return stripeapi.Execute[MaybeDeletedLocation](ctx, b, r, opts...)
}

// NewDeleteLocation returns the request to delete the Location of the given
// ID.
func NewDeleteLocation(id LocationID) *DeleteLocation {
	return &DeleteLocation{id: id}
}

func (r *DeleteLocation) Describe() stripeapi.Description {
	return stripeapi.Delete(locationPath(r.id))
}

func (r *DeleteLocation) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*DeletedLocation, error) {
	return stripeapi.Execute[DeletedLocation](ctx, b, r, opts...)
}

// NewListLocations returns the request to list the Locations of the account.
func NewListLocations() *ListLocations {
	return &ListLocations{}
}

func (r *ListLocations) EndingBefore(id LocationID) *ListLocations {
	r.params.EndingBefore = stripeapi.String(string(id))
	return r
}

func (r *ListLocations) Expand(fields ...string) *ListLocations {
	r.params.Expand = fields
	return r
}

func (r *ListLocations) Limit(n int64) *ListLocations {
	r.params.Limit = stripeapi.Int64(n)
	return r
}

func (r *ListLocations) StartingAfter(id LocationID) *ListLocations {
	r.params.StartingAfter = stripeapi.String(string(id))
	return r
}

func (r *ListLocations) Params() *ListLocationsParams { return &r.params }

func (r *ListLocations) Describe() stripeapi.Description {
	return stripeapi.Get("/terminal/locations", &r.params)
}

// Send returns the first page of Locations.
func (r *ListLocations) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*stripeapi.List[*Location], error) {
	return stripeapi.Execute[stripeapi.List[*Location]](ctx, b, r, opts...)
}

// Paginate returns an Iter over every Location of the account.
func (r *ListLocations) Paginate(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) *stripeapi.Iter[*Location] {
	return stripeapi.Paginate[*Location](ctx, b, r.Describe(), opts...)
}
