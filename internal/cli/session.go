package cli

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/fadilmartias/careercraft/internal/config"
	"github.com/fadilmartias/careercraft/internal/service"
	"gopkg.in/yaml.v3"
)

// savedSession is the backend cookie session carried between invocations.
// The backend keys the uploaded CV and interview progress on it.
type savedSession struct {
	BackendURL string        `yaml:"backend_url"`
	Cookies    []savedCookie `yaml:"cookies"`
}

type savedCookie struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func loadSession(path string) (savedSession, error) {
	var s savedSession
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return savedSession{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

func saveSession(path string, s savedSession) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session to %s: %w", path, err)
	}
	return nil
}

func (s savedSession) httpCookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(s.Cookies))
	for _, c := range s.Cookies {
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}

func newSavedSession(backendURL string, cookies []*http.Cookie) savedSession {
	s := savedSession{BackendURL: backendURL}
	for _, c := range cookies {
		s.Cookies = append(s.Cookies, savedCookie{Name: c.Name, Value: c.Value})
	}
	return s
}

// connectBackend builds the resty backend client and restores the cookies
// saved for the same backend URL.
func connectBackend(cfg *config.CLIConfig, sessionFile string) (service.CareerCraftServiceInterface, func() error, error) {
	svc := service.NewCareerCraftService(&config.BackendConfig{BaseURL: cfg.BackendURL, Timeout: cfg.Timeout})

	saved, err := loadSession(sessionFile)
	if err != nil {
		log.Printf("Warning: starting a new backend session: %v", err)
	} else if saved.BackendURL == cfg.BackendURL {
		svc.RestoreCookies(saved.httpCookies())
	}

	release := func() error {
		return saveSession(sessionFile, newSavedSession(cfg.BackendURL, svc.Cookies()))
	}
	return svc, release, nil
}
