package gdocs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/sheets/v4"
)

// Scopes requested for the document tools.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	forms.FormsBodyScope,
	drive.DriveReadonlyScope,
}

// ErrTokenMissing reports that no stored token exists yet.
var ErrTokenMissing = errors.New("gdocs: token file not found, run the token command first")

// LoadConfig reads OAuth client credentials downloaded from the Google console.
func LoadConfig(credentialsPath string) (*oauth2.Config, error) {
	raw, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	conf, err := google.ConfigFromJSON(raw, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return conf, nil
}

// LoadToken reads a token previously written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrTokenMissing
		}
		return nil, fmt.Errorf("read token: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &tok, nil
}

// SaveToken writes tok to path readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	raw, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Exchange trades an authorization code for a token and stores it at path.
func Exchange(ctx context.Context, conf *oauth2.Config, code, path string) (*oauth2.Token, error) {
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	if err := SaveToken(path, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// persistingTokenSource writes refreshed tokens back to disk so restarts
// reuse the latest refresh result.
type persistingTokenSource struct {
	mu   sync.Mutex
	base oauth2.TokenSource
	path string
	last string
}

func newPersistingTokenSource(base oauth2.TokenSource, path string, current *oauth2.Token) *persistingTokenSource {
	last := ""
	if current != nil {
		last = current.AccessToken
	}
	return &persistingTokenSource{base: base, path: path, last: last}
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		if err := SaveToken(s.path, tok); err != nil {
			return nil, err
		}
		s.last = tok.AccessToken
	}
	return tok, nil
}
