/*
Command scriptletcheck is a small development server for trying out a
resources file interactively.

Invoke it like so:

  go run ./cmd/scriptletcheck -resources resources.json

Then query it:

  curl 'http://localhost:9812/inject?args=greet,+world&perm=0'
  curl 'http://localhost:9812/redirect?name=name.js'

With -watch, the resources file is re-read and the catalog rebuilt whenever
it changes on disk, the same live-reload shape bundle.go's WatchFiles gives
Soy template directories.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/scriptlets"
	"github.com/robfig/scriptlets/resource"
)

func permFromInt(n int) resource.PermissionMask {
	return resource.PermissionMask(uint8(n))
}

var (
	resourcesPath = flag.String("resources", "", "path to a JSON resources file (required)")
	addr          = flag.String("addr", ":9812", "address to listen on")
	watch         = flag.Bool("watch", false, "re-read -resources and rebuild the store on change")
)

// Logger mirrors soyweb's use of the standard library logger for
// non-fatal, user-facing diagnostics (a malformed resources file on
// reload shouldn't crash a running dev server).
var Logger = log.New(log.Writer(), "[scriptletcheck] ", 0)

func main() {
	flag.Parse()
	if *resourcesPath == "" {
		fmt.Fprintln(log.Writer(), "usage: scriptletcheck -resources resources.json")
		flag.PrintDefaults()
		return
	}

	holder := &storeHolder{}
	if err := holder.reload(*resourcesPath); err != nil {
		log.Fatalf("loading %s: %v", *resourcesPath, err)
	}

	if *watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Fatalf("creating watcher: %v", err)
		}
		if err := watcher.Add(*resourcesPath); err != nil {
			log.Fatalf("watching %s: %v", *resourcesPath, err)
		}
		go watchLoop(watcher, holder, *resourcesPath)
	}

	fmt.Fprintf(log.Writer(), "listening on %s (watch=%v)\n", *addr, *watch)
	http.HandleFunc("/inject", holder.handleInject)
	http.HandleFunc("/redirect", holder.handleRedirect)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func watchLoop(watcher *fsnotify.Watcher, holder *storeHolder, path string) {
	for {
		select {
		case ev := <-watcher.Events:
			Logger.Println("resources file changed:", ev)
			if err := holder.reload(path); err != nil {
				Logger.Println("reload failed, keeping previous store:", err)
			}
		case err := <-watcher.Errors:
			Logger.Println("watch error:", err)
		}
	}
}

// storeHolder lets the HTTP handlers keep serving from the old store while
// a reload is in progress, and swap to the new one atomically once built.
type storeHolder struct {
	store atomic.Value // *scriptlets.Store
}

func (h *storeHolder) reload(path string) error {
	resources, err := loadResources(path)
	if err != nil {
		return err
	}
	h.store.Store(scriptlets.FromResources(resources))
	return nil
}

func (h *storeHolder) current() *scriptlets.Store {
	return h.store.Load().(*scriptlets.Store)
}

func (h *storeHolder) handleInject(w http.ResponseWriter, r *http.Request) {
	rawArgs := r.URL.Query().Get("args")
	perm, _ := strconv.Atoi(r.URL.Query().Get("perm"))

	program := h.current().GetScriptletResources([]scriptlets.Invocation{
		{Raw: rawArgs, Permission: permFromInt(perm)},
	})
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	fmt.Fprint(w, program)
}

func (h *storeHolder) handleRedirect(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	dataURL, ok := h.current().GetRedirectResource(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, dataURL)
}
