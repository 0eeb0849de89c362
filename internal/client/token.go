package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
)

var (
	DefaultTokenPath = filepath.Join(os.Getenv("HOME"), ".traintrack", "credentials.json")
)

// StoredToken is the credentials file written by the login flow.
type StoredToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	IDToken      string    `json:"id_token"`
	Expiry       time.Time `json:"expiry"`
}

func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stored StoredToken
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		Expiry:       stored.Expiry,
		TokenType:    "Bearer",
	}, nil
}
