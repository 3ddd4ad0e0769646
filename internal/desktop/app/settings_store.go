package app

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
)

const AppName = "growi-editor"

const settingsFilename = "settings.json"

// SettingsStore persists a settings value as JSON in the user configuration
// directory. Writes go through a temporary file renamed over the previous one.
type SettingsStore[T any] struct {
	defaults T
	settings *T
	mutex    sync.RWMutex
	dir      string
}

func (s *SettingsStore[T]) Save(settings T) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.save(settings)
}

// Update applies fn to the current settings and saves the result. The whole
// sequence holds the store lock.
func (s *SettingsStore[T]) Update(fn func(settings *T)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var settings T

	if s.settings != nil {
		settings = *s.settings
	} else {
		loaded, err := s.reload()
		if err != nil {
			return errors.WithStack(err)
		}

		settings = loaded
	}

	fn(&settings)

	return s.save(settings)
}

func (s *SettingsStore[T]) save(settings T) error {
	if err := s.ensureDir(); err != nil {
		return errors.WithStack(err)
	}

	file, err := os.CreateTemp(s.dir, settingsFilename+"-*")
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := os.Remove(file.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error("could not remove temporary settings file", slogx.Error(err))
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(settings); err != nil {
		file.Close()
		return errors.WithStack(err)
	}

	if err := file.Close(); err != nil {
		return errors.WithStack(err)
	}

	if err := os.Rename(file.Name(), s.Path()); err != nil {
		return errors.Wrap(err, "could not overwrite settings")
	}

	s.settings = &settings

	return nil
}

// Get returns the cached settings, reading them from disk on first access or
// when reload is true.
func (s *SettingsStore[T]) Get(reload bool) (T, error) {
	if !reload {
		s.mutex.RLock()
		if s.settings != nil {
			defer s.mutex.RUnlock()
			return *s.settings, nil
		}
		s.mutex.RUnlock()
	}

	return s.Reload()
}

func (s *SettingsStore[T]) Reload() (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.reload()
}

func (s *SettingsStore[T]) reload() (T, error) {
	file, err := os.Open(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.settings = &s.defaults
			return s.defaults, nil
		}

		return s.defaults, errors.WithStack(err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("could not close settings file", slogx.Error(err))
		}
	}()

	var settings T
	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		return s.defaults, errors.WithStack(err)
	}

	s.settings = &settings

	return settings, nil
}

func (s *SettingsStore[T]) ensureDir() error {
	if err := configdir.MakePath(s.dir); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *SettingsStore[T]) Path() string {
	return filepath.Join(s.dir, settingsFilename)
}

func NewStore[T any](defaults T) *SettingsStore[T] {
	return NewStoreAt(configdir.LocalConfig(AppName), defaults)
}

func NewStoreAt[T any](dir string, defaults T) *SettingsStore[T] {
	return &SettingsStore[T]{
		defaults: defaults,
		dir:      dir,
	}
}
