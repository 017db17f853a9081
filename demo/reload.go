package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/slices"
)

// Files included by the lit programs
var sharedShaderFiles = []string{"lighting.glsl"}

// ShaderWatcher reports shader files changed on disk. The watch goroutine only forwards
// names, programs are rebuilt by the render loop.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	changed chan string
}

func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	sw := &ShaderWatcher{
		watcher: watcher,
		changed: make(chan string, 16),
	}
	go sw.run()
	return sw, nil
}

func (sw *ShaderWatcher) run() {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			select {
			case sw.changed <- filepath.Base(event.Name):
			default:
				// dropped while the channel is full
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Shader watcher error: %v\n", err)
		}
	}
}

// Changed drains pending notifications without blocking
func (sw *ShaderWatcher) Changed() []string {
	var files []string
	for {
		select {
		case name := <-sw.changed:
			if !slices.Contains(files, name) {
				files = append(files, name)
			}
		default:
			return files
		}
	}
}

func (sw *ShaderWatcher) Close() error {
	return sw.watcher.Close()
}

// AffectedPrograms maps changed file names to the programs that need to be rebuilt
func AffectedPrograms(files []string, programs []string) []string {
	var affected []string
	add := func(name string) {
		if !slices.Contains(affected, name) {
			affected = append(affected, name)
		}
	}
	for _, file := range files {
		if slices.Contains(sharedShaderFiles, file) {
			add(ProgramGouraud)
			add(ProgramPhong)
			continue
		}
		stem := strings.TrimSuffix(file, filepath.Ext(file))
		if slices.Contains(programs, stem) {
			add(stem)
		}
	}
	return affected
}
