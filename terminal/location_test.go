package terminal

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/internal/stripetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const locationJSON = `{
	"id": "tml_1",
	"object": "terminal.location",
	"address": {
		"city": "Tokyo",
		"country": "JP",
		"line1": "1-1 Chiyoda",
		"line2": null,
		"postal_code": "100-0001",
		"state": null
	},
	"address_kana": {
		"city": "ﾄｳｷｮｳ",
		"country": "JP",
		"line1": null,
		"line2": null,
		"postal_code": null,
		"state": null,
		"town": "ﾁﾖﾀﾞ"
	},
	"display_name": "HQ",
	"livemode": false,
	"metadata": {"floor": "3"}
}`

func newClient(srv *stripetest.Server) stripeapi.Client {
	return stripeapi.NewClient(stripeapi.DefaultAPIVersion, "sk_test_123",
		stripeapi.WithEndpoint(srv.Endpoint()),
		stripeapi.WithHTTPClient(srv.Client()),
	)
}

func TestRetrieveDeletedLocation(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/terminal/locations/{id}", http.StatusOK, `{"id":"tml_gone","object":"terminal.location","deleted":true}`)

	loc, err := NewRetrieveLocation("tml_gone").Send(context.Background(), newClient(srv))

	require.NoError(t, err)

	assert.True(t, loc.IsDeleted())
	assert.Nil(t, loc.Object)
	require.NotNil(t, loc.Tombstone)
	assert.Equal(t, LocationID("tml_gone"), loc.Tombstone.ID)
	assert.Equal(t, "tml_gone", loc.GetID())

	reqs := srv.Requests()

	require.Len(t, reqs, 1)
	assert.Equal(t, "/v1/terminal/locations/tml_gone", reqs[0].Path)
	assert.Equal(t, "", reqs[0].RawQuery)
}

func TestRetrieveLocation(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/terminal/locations/{id}", http.StatusOK, locationJSON)

	loc, err := NewRetrieveLocation("tml_1").Send(context.Background(), newClient(srv))

	require.NoError(t, err)

	assert.False(t, loc.IsDeleted())
	require.NotNil(t, loc.Object)
	assert.Equal(t, "HQ", loc.Object.DisplayName)
	assert.Equal(t, "Tokyo", *loc.Object.Address.City)
	require.NotNil(t, loc.Object.AddressKana)
	assert.Equal(t, "ﾁﾖﾀﾞ", *loc.Object.AddressKana.Town)
	assert.Equal(t, "3", loc.Object.Metadata["floor"])
}

func TestDeleteLocation(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.HandleFunc("DELETE", "/terminal/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		stripetest.Respond(w, http.StatusOK, `{"id":"`+stripetest.Param(r, "id")+`","object":"terminal.location","deleted":true}`)
	})

	del, err := NewDeleteLocation("tml_1").Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.Equal(t, LocationID("tml_1"), del.ID)
	assert.True(t, del.Deleted)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "", req.Body)
}

func TestLocationParams(t *testing.T) {
	tests := []struct {
		desc     stripeapi.Description
		method   string
		path     string
		expected string
	}{
		{
			NewCreateLocation("HQ", stripeapi.AddressParams{
				City:    stripeapi.String("Tokyo"),
				Country: stripeapi.String("JP"),
			}).AddressKana(JapanAddressParams{
				Town: stripeapi.String("ﾁﾖﾀﾞ"),
			}).Metadata(stripeapi.Metadata{"floor": "3"}).Describe(),
			http.MethodPost,
			"/terminal/locations",
			"address[city]=Tokyo&address[country]=JP&address_kana[town]=%EF%BE%81%EF%BE%96%EF%BE%80%EF%BE%9E&display_name=HQ&metadata[floor]=3",
		},
		{
			NewUpdateLocation("tml_1").DisplayName("Main").Metadata(stripeapi.Metadata{}).Describe(),
			http.MethodPost,
			"/terminal/locations/tml_1",
			"display_name=Main&metadata=",
		},
		{
			NewListLocations().Limit(10).StartingAfter("tml_0").Describe(),
			http.MethodGet,
			"/terminal/locations",
			"limit=10&starting_after=tml_0",
		},
		{
			NewRetrieveLocation("tml/1").Describe(),
			http.MethodGet,
			"/terminal/locations/tml%2F1",
			"",
		},
	}

	for i, test := range tests {
		assert.Equal(t, test.method, test.desc.Method, "tests[%d]", i)
		assert.Equal(t, test.path, test.desc.Path, "tests[%d]", i)
		assert.Equal(t, test.expected, test.desc.Form().Encode(), "tests[%d]", i)
	}
}

func TestListLocationsPaginate(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.HandleFunc("GET", "/terminal/locations", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("starting_after") == "" {
			stripetest.Respond(w, http.StatusOK, `{"object":"list","data":[`+locationJSON+`],"has_more":true,"url":"/v1/terminal/locations"}`)
			return
		}
		stripetest.Respond(w, http.StatusOK, `{"object":"list","data":[],"has_more":false,"url":"/v1/terminal/locations"}`)
	})

	locs, err := stripeapi.Collect(NewListLocations().Limit(1).Paginate(context.Background(), newClient(srv)))

	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, LocationID("tml_1"), locs[0].ID)

	reqs := srv.Requests()

	require.Len(t, reqs, 2)
	assert.Equal(t, "tml_1", reqs[1].Query.Get("starting_after"))
}

func TestLocationRoundTrip(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(locationJSON), &loc))

	b, err := json.Marshal(loc)
	require.NoError(t, err)

	var loc1 Location
	require.NoError(t, json.Unmarshal(b, &loc1))

	assert.Equal(t, loc, loc1)
}
