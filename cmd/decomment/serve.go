package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/phyten/decomment/internal/lang"
	"github.com/phyten/decomment/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API and web UI",
	Long: `Serve starts a local HTTP server exposing the language table and
the strip/spans/banner operations as JSON endpoints, plus a small web
page to try them from a browser.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	serveCmd.Flags().String("addr", "", "listen address (overrides --port)")
	serveCmd.Flags().Bool("open", false, "open the page in a browser")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	reg, err := lang.LoadRegistry(s.Scan.RuleFiles)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	api := &web.API{Registry: reg}
	api.Register(mux)

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		port, _ := cmd.Flags().GetInt("port")
		addr = fmt.Sprintf(":%d", port)
	}

	if open, _ := cmd.Flags().GetBool("open"); open {
		url := "http://localhost" + addr
		go func() {
			time.Sleep(200 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("open browser: %v", err)
			}
		}()
	}

	log.Printf("decomment serve listening on %s (%d languages)", addr, reg.Len())
	return http.ListenAndServe(addr, logRequests(mux))
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
