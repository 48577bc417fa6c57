package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fadilmartias/careercraft/internal/config"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/manifoldco/promptui"
)

// Connector opens a backend for cfg. release runs once the command is done.
type Connector func(cfg *config.CLIConfig, sessionFile string) (backend service.CareerCraftServiceInterface, release func() error, err error)

// App holds what the commands of one invocation share.
type App struct {
	cfgPath string
	cfg     *config.CLIConfig

	connect Connector
	backend service.CareerCraftServiceInterface
	release func() error

	ask      func(label string) (string, error)
	copyText func(text string) error
}

func NewApp() *App {
	return &App{
		cfgPath:  config.DefaultCLIConfigPath(),
		connect:  connectBackend,
		ask:      promptLine,
		copyText: clipboard.WriteAll,
	}
}

// Backend connects on first use so that commands which never reach the
// backend, like theme, do not touch the session file.
func (a *App) Backend() (service.CareerCraftServiceInterface, error) {
	if a.backend != nil {
		return a.backend, nil
	}
	backend, release, err := a.connect(a.cfg, sessionFile(a.cfgPath))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", a.cfg.BackendURL, err)
	}
	a.backend, a.release = backend, release
	return backend, nil
}

func (a *App) CareerCraft() (*usecase.CareerCraftUsecase, error) {
	backend, err := a.Backend()
	if err != nil {
		return nil, err
	}
	return usecase.NewCareerCraftUsecase(backend), nil
}

func (a *App) Close() error {
	if a.release == nil {
		return nil
	}
	release := a.release
	a.release = nil
	return release()
}

func (a *App) copy(text string) error {
	if err := a.copyText(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// sessionFile sits next to the config: ~/.careercraft.yml keeps its backend
// cookies in ~/.careercraft.session.yml.
func sessionFile(cfgPath string) string {
	return strings.TrimSuffix(cfgPath, filepath.Ext(cfgPath)) + ".session.yml"
}

func promptLine(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

// readText returns the contents of path, or "" when no path was given.
func readText(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
