package wealthsimple

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activitiesFixture = `{
	"results": [
		{"id": "act-1", "object": "deposit", "account_id": "tfsa-abc123"},
		{"id": "act-2", "object": "order", "account_id": "tfsa-abc123"}
	]
}`

func activitiesHandler(t *testing.T, query *url.Values) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/account/activities", r.URL.Path)
		*query = r.URL.Query()
		w.Write([]byte(activitiesFixture))
	}
}

func TestClient_Activities_Defaults(t *testing.T) {
	var query url.Values
	client := newTestClient(t, activitiesHandler(t, &query))

	activities, err := client.Activities(ActivitiesOptions{})
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "act-1", activities[0].ID)
	assert.Equal(t, "deposit", activities[0].Object)

	assert.Equal(t, "20", query.Get("limit"))
	assert.Empty(t, query.Get("type"))
	assert.Empty(t, query["account_id"])
}

func TestClient_Activities_TypeFilterFoldedIntoQuery(t *testing.T) {
	var query url.Values
	client := newTestClient(t, activitiesHandler(t, &query))

	_, err := client.Activities(ActivitiesOptions{Type: ActivityDividend, Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, "dividend", query.Get("type"))
	assert.Equal(t, "50", query.Get("limit"))
}

func TestClient_Activities_AccountIDs(t *testing.T) {
	var query url.Values
	client := newTestClient(t, activitiesHandler(t, &query))

	_, err := client.Activities(ActivitiesOptions{
		AccountIDs: []string{"tfsa-abc123", "rrsp-def456"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"tfsa-abc123", "rrsp-def456"}, query["account_id"])
}
