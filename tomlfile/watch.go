package tomlfile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/kvconf/tomlv04/tomlast"
)

// MergeResult is delivered on a Watcher's Updates channel each time the
// watched base/override pair is re-merged: either the freshly merged
// tree, or the error that merge attempt failed with.
type MergeResult struct {
	Table *tomlast.Table
	Err   error
}

// Watcher re-merges a base/override pair on every filesystem change
// touching either path and delivers the result over Updates. It is the
// one type in this module that legitimately runs a background
// goroutine — everything else is synchronous.
type Watcher struct {
	fsw     *fsnotify.Watcher
	updates chan MergeResult
	done    chan struct{}
}

// Watch starts watching basePath's and overridePath's parent
// directories (fsnotify watches directories, not individual files, so
// that a rename-based atomic save is still observed) and re-runs
// ParseBaseAndOverride on every write/create/rename touching either
// file.
func Watch(basePath, overridePath string, allowAdditions bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "tomlfile: create watcher")
	}

	dirs := map[string]struct{}{
		filepath.Dir(basePath):     {},
		filepath.Dir(overridePath): {},
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "tomlfile: watch %s", dir)
		}
	}

	w := &Watcher{
		fsw:     fsw,
		updates: make(chan MergeResult, 8),
		done:    make(chan struct{}),
	}
	go w.loop(basePath, overridePath, allowAdditions)
	return w, nil
}

func (w *Watcher) loop(basePath, overridePath string, allowAdditions bool) {
	defer close(w.updates)

	base := filepath.Clean(basePath)
	override := filepath.Clean(overridePath)
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != base && filepath.Clean(ev.Name) != override {
				continue
			}
			if ev.Op&relevant == 0 {
				continue
			}
			table, err := ParseBaseAndOverride(basePath, overridePath, allowAdditions)
			w.deliver(MergeResult{Table: table, Err: err})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.deliver(MergeResult{Err: err})
		}
	}
}

func (w *Watcher) deliver(r MergeResult) {
	select {
	case w.updates <- r:
	case <-w.done:
	}
}

// Updates returns the channel MergeResults are delivered on. It is
// closed once Close has stopped the underlying watch loop.
func (w *Watcher) Updates() <-chan MergeResult { return w.updates }

// Close stops the watch loop and releases the underlying fsnotify
// watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
