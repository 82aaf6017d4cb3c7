package arggo

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// LiveUpdateOpt restricts L in File[T, L].
// EnableLiveUpdate and DisableLiveUpdate are the two implementations.
// This interface SHOULD NOT be implemented by users.
type LiveUpdateOpt interface {
	isWatched() bool
}

// EnableLiveUpdate implements LiveUpdateOpt
type EnableLiveUpdate struct{}

func (EnableLiveUpdate) isWatched() bool { return true }

// DisableLiveUpdate implements LiveUpdateOpt
type DisableLiveUpdate struct{}

func (DisableLiveUpdate) isWatched() bool { return false }

var (
	_ Parse = &File[any, EnableLiveUpdate]{}
	_ Parse = &File[any, DisableLiveUpdate]{}
)

// File loads T from a configuration file whose path arrives as an
// argument value. It implements Parse, so reading a File-typed value
// through Value decodes the file the payload points at:
//
//	p.AddOptional(arggo.Abbr("config", "c"), "configuration file")
//	p.ParseArgs(args)
//	f, err := arggo.Value[*arggo.File[Config, arggo.DisableLiveUpdate]](p, "config")
//
// JSON, YAML and TOML are supported, chosen by file extension, or tried
// in that order when the extension decides nothing. With EnableLiveUpdate
// the file is re-decoded on change and Get always returns the latest
// snapshot.
type File[T any, L LiveUpdateOpt] struct {
	parsed atomic.Bool

	// Get hands out *T snapshots. Live update swaps the pointer instead
	// of mutating the pointee, so a snapshot a caller already holds stays
	// valid while Get starts returning the new one.
	current atomic.Pointer[T]

	liveUpdate L
	events     chan fsnotify.Event
}

// FromString decodes the file at path and, with live update enabled,
// starts the watcher. It must be called at most once per File instance.
func (f *File[T, L]) FromString(path string) error {
	if !f.parsed.CompareAndSwap(false, true) {
		panic("File[T, L].FromString() called more than once")
	}
	if err := f.load(path); err != nil {
		return err
	}
	if f.liveUpdate.isWatched() {
		f.events = make(chan fsnotify.Event, 2)
		return f.watch(path)
	}
	return nil
}

// Get returns the most recently decoded snapshot, or nil if the initial
// decode failed.
func (f *File[T, L]) Get() *T {
	return f.current.Load()
}

// UpdateEvents returns the channel live update publishes on after each
// re-decode. Nil unless L is EnableLiveUpdate.
func (f *File[T, L]) UpdateEvents() <-chan fsnotify.Event {
	return f.events
}

func (f *File[T, L]) load(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	value, err := decodeConfig[T](path, content)
	if err != nil {
		return err
	}
	f.current.Store(&value)
	return nil
}

// a decode function in the shape json, yaml and toml all share
type unmarshalFn func(data []byte, v any) error

func decodeConfig[T any](path string, content []byte) (T, error) {
	var value T
	order := []unmarshalFn{json.Unmarshal, yaml.Unmarshal, toml.Unmarshal}
	switch {
	case strings.HasSuffix(path, ".json"):
		order = []unmarshalFn{json.Unmarshal}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		order = []unmarshalFn{yaml.Unmarshal}
	case strings.HasSuffix(path, ".toml"):
		order = []unmarshalFn{toml.Unmarshal}
	}

	errs := []error{}
	for _, unmarshal := range order {
		err := unmarshal(content, &value)
		if err == nil {
			return value, nil
		}
		errs = append(errs, err)
	}
	var zero T
	return zero, errors.Join(errs...)
}

func (f *File[T, L]) watch(path string) error {
	configFile := filepath.Clean(path)
	configDir, _ := filepath.Split(configFile)
	realConfigFile, _ := filepath.EvalSymlinks(path)

	// watch the directory, not the file: editors and k8s-style atomic
	// saves replace the file instead of writing it in place
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(configDir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				currentConfigFile, _ := filepath.EvalSymlinks(path)
				written := filepath.Clean(event.Name) == configFile &&
					(event.Has(fsnotify.Write) || event.Has(fsnotify.Create))
				relinked := currentConfigFile != "" && currentConfigFile != realConfigFile
				if written || relinked {
					realConfigFile = currentConfigFile
					if err := f.load(path); err != nil {
						log.Printf("re-reading config file: %v", err)
					}
					select {
					case f.events <- event:
					default:
						// receiver not keeping up, drop the event
					}
				} else if filepath.Clean(event.Name) == configFile && event.Has(fsnotify.Remove) {
					return
				}
			case err, ok := <-watcher.Errors:
				if ok {
					log.Printf("config watcher: %v", err)
				}
				return
			}
		}
	}()
	return nil
}
