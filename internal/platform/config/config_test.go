package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 10*time.Second, cfg.NewsTimeout)
	assert.Equal(t, 60*time.Second, cfg.DatasetFetchTimeout)
	assert.Equal(t, "https://newsapi.org", cfg.NewsBaseURL)
	assert.False(t, cfg.FirestoreEnabled())
	assert.Equal(t, 5*time.Second, cfg.FirestoreTimeout)
	assert.Len(t, cfg.Warnings(), 2)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", " 9090 ")
	t.Setenv("NEWS_TIMEOUT", "3s")
	t.Setenv("NEWS_MOCK", "true")
	t.Setenv("HOSPICE_DATA", "https://data.cms.gov/hospice.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.NewsTimeout)
	assert.True(t, cfg.NewsMock)
	assert.Equal(t, "https://data.cms.gov/hospice.csv", cfg.HospiceData)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("NEWS_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		Port:           "8080",
		HomeHealthData: "hh.csv",
		HospiceData:    "hs.csv",
		HospitalData:   "ho.csv",
		NewsTimeout:    time.Second,
		NewsRatePerSec: 1,
		NewsBurst:      1,
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing port", func(c *Config) { c.Port = "" }},
		{"missing dataset", func(c *Config) { c.HospitalData = "" }},
		{"zero timeout", func(c *Config) { c.NewsTimeout = 0 }},
		{"firebase without creds", func(c *Config) { c.FirebaseProjectID = "proj" }},
		{"firestore zero timeout", func(c *Config) {
			c.FirebaseProjectID = "proj"
			c.FirebaseCredsFile = "creds.json"
			c.FirestoreTimeout = 0
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestFirebaseCredentialsJSON(t *testing.T) {
	c := Config{FirebaseCredsBase64: base64.StdEncoding.EncodeToString([]byte(`{"type":"service_account"}`))}
	data, source, err := c.FirebaseCredentialsJSON()
	require.NoError(t, err)
	assert.Equal(t, "base64", source)
	assert.JSONEq(t, `{"type":"service_account"}`, string(data))

	_, _, err = Config{}.FirebaseCredentialsJSON()
	assert.Error(t, err)
}
