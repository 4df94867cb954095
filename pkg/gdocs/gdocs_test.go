package gdocs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")

	_, err := LoadToken(path)
	require.ErrorIs(t, err, ErrTokenMissing)

	require.NoError(t, SaveToken(path, &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}))
	tok, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "a", tok.AccessToken)
	assert.Equal(t, "r", tok.RefreshToken)
}

type sequenceSource struct {
	tokens []*oauth2.Token
	err    error
}

func (s *sequenceSource) Token() (*oauth2.Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	tok := s.tokens[0]
	if len(s.tokens) > 1 {
		s.tokens = s.tokens[1:]
	}
	return tok, nil
}

func TestPersistingTokenSourceWritesOnRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	current := &oauth2.Token{AccessToken: "old", RefreshToken: "r"}
	base := &sequenceSource{tokens: []*oauth2.Token{current, {AccessToken: "new", RefreshToken: "r"}}}
	src := newPersistingTokenSource(base, path, current)

	_, err := src.Token()
	require.NoError(t, err)
	_, err = LoadToken(path)
	require.ErrorIs(t, err, ErrTokenMissing, "unchanged token is not rewritten")

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "new", tok.AccessToken)
	stored, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.AccessToken)
}

func TestPersistingTokenSourcePropagatesError(t *testing.T) {
	src := newPersistingTokenSource(&sequenceSource{err: errors.New("revoked")}, filepath.Join(t.TempDir(), "t.json"), nil)
	_, err := src.Token()
	require.EqualError(t, err, "revoked")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewWithOptions(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClientCalls(t *testing.T) {
	var createdTitle, formBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/files"):
			assert.Equal(t, spreadsheetMimeQuery, r.URL.Query().Get("q"))
			assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
			writeJSON(t, w, map[string]interface{}{"files": []map[string]string{
				{"id": "s1", "name": "Roster", "webViewLink": "https://docs/s1"},
			}})
		case strings.Contains(r.URL.Path, "/values/"):
			writeJSON(t, w, map[string]interface{}{"range": "Sheet1!A1:B2", "values": [][]string{{"a", "b"}, {"1", "2"}}})
		case strings.HasSuffix(r.URL.Path, "/v4/spreadsheets") && r.Method == http.MethodPost:
			var body struct {
				Properties struct {
					Title string `json:"title"`
				} `json:"properties"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			createdTitle = body.Properties.Title
			writeJSON(t, w, map[string]string{"spreadsheetId": "new-sheet", "spreadsheetUrl": "https://docs/new-sheet"})
		case strings.HasSuffix(r.URL.Path, "/v1/forms") && r.Method == http.MethodPost:
			raw, _ := io.ReadAll(r.Body)
			formBody = string(raw)
			writeJSON(t, w, map[string]string{"formId": "f1", "responderUri": "https://forms/f1"})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	sheetsList, err := client.ListSpreadsheets(ctx, 5)
	require.NoError(t, err)
	require.Len(t, sheetsList, 1)
	assert.Equal(t, Spreadsheet{ID: "s1", Name: "Roster", URL: "https://docs/s1"}, sheetsList[0])

	values, err := client.ReadValues(ctx, "s1", "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{"a", "b"}, {"1", "2"}}, values)

	created, err := client.CreateSpreadsheet(ctx, "Attendance")
	require.NoError(t, err)
	assert.Equal(t, "Attendance", createdTitle)
	assert.Equal(t, "new-sheet", created.ID)

	form, err := client.CreateForm(ctx, "Feedback", "")
	require.NoError(t, err)
	assert.Equal(t, Form{ID: "f1", URL: "https://forms/f1"}, form)
	assert.NotContains(t, formBody, "description")
}

func TestLoadConfigReadsInstalledCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	raw := `{"installed":{"client_id":"cid","client_secret":"secret","redirect_uris":["http://localhost"],` +
		`"auth_uri":"https://accounts.example/auth","token_uri":"https://accounts.example/token"}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cid", conf.ClientID)
	assert.Equal(t, Scopes, conf.Scopes)
	assert.Contains(t, conf.AuthCodeURL("state", oauth2.AccessTypeOffline), "access_type=offline")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestExchangeStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "code-1", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600}`)
	}))
	defer srv.Close()

	conf := &oauth2.Config{ClientID: "cid", ClientSecret: "secret", Endpoint: oauth2.Endpoint{TokenURL: srv.URL}}
	path := filepath.Join(t.TempDir(), "token.json")

	tok, err := Exchange(context.Background(), conf, "code-1", path)
	require.NoError(t, err)
	assert.Equal(t, "at", tok.AccessToken)

	stored, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "rt", stored.RefreshToken)
}
