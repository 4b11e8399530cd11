package main

import (
	_ "embed"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgiri25/mandelgrid/render"
)

//go:embed index.html
var indexHTML []byte

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Render progressively and watch it in the browser",
		PreRunE: bindFlags,
		RunE:    runServe,
	}
	addGridFlags(cmd)
	cmd.Flags().String("addr", ":8080", "HTTP listen address")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	p, err := gridParams(cmd)
	if err != nil {
		return err
	}
	cm, err := render.ByName(viper.GetString("cmap"))
	if err != nil {
		return err
	}

	sched, err := newGridScheduler(p, cm)
	if err != nil {
		return err
	}
	go sched.run(viper.GetInt("workers"))

	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc("/image.png", imageHandler(sched))
	mux.HandleFunc("/ws", progressHandler(sched))

	addr := viper.GetString("addr")
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", addr)
	return srv.ListenAndServe()
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// imageHandler serves the current state of the render as a PNG. Before the
// last band lands this is a partial image on the fill color.
func imageHandler(s *gridScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if err := png.Encode(w, s.snapshot()); err != nil {
			log.Printf("encode png: %v", err)
		}
	}
}

// progressHandler upgrades to a websocket and pushes progress events until
// the render completes or the viewer goes away.
func progressHandler(s *gridScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()

		for {
			if err := wsjson.Write(ctx, c, s.progress()); err != nil {
				return
			}
			if s.done() {
				c.Close(websocket.StatusNormalClosure, "render complete")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}
}
