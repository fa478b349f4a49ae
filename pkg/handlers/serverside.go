package handlers

import (
	"crypto/sha1"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/spencer-p/coastdash/pkg/dashboard"
	"github.com/spencer-p/coastdash/pkg/metrics"
	"golang.org/x/crypto/pbkdf2"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	ds "github.com/starfederation/datastar-go/datastar"
)

const (
	sessionName = "coastdash"
	visitorID   = "visitor"
	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.
)

var templates = template.Must(template.ParseFS(content, "templates/*.template.html"))

type TemplateInput struct {
	// Placeholders drawn before any feed answers.
	Weather dashboard.WeatherSection
	Moon    dashboard.MoonSection
	Tides   dashboard.TideSection
}

// makeIndexHandler serves the page skeleton. Its sections are filled in by
// the browser from the sections stream.
func makeIndexHandler(store sessions.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, sessionName)
		_, returning := session.Values[visitorID].(string)
		if !returning {
			session.Values[visitorID] = uuid.NewString()
		}
		metrics.ObserveVisitor(returning)
		if err := session.Save(r, w); err != nil {
			log.Println("save session err", err)
		}

		tinput := TemplateInput{
			Weather: dashboard.WeatherSection{Temperature: "Loading weather…"},
			Moon:    dashboard.MoonSection{Phase: "Loading moon phase…"},
			Tides:   dashboard.TideSection{Lines: []string{"Loading tides…"}},
		}

		w.Header().Add("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if err := templates.ExecuteTemplate(w, "index", tinput); err != nil {
			log.Printf("Failed to execute template: %v", err)
		}
	})
}

// makeSectionsHandler streams each section to the browser as soon as its feed
// answers. Every section is patched exactly once.
func makeSectionsHandler(d *dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sse := ds.NewSSE(w, r)
		d.Each(r.Context(), func(s dashboard.Section) {
			var b strings.Builder
			if err := templates.ExecuteTemplate(&b, s.Feed(), s); err != nil {
				log.Printf("Failed to execute %s template: %v", s.Feed(), err)
				return
			}
			if err := sse.PatchElements(b.String()); err != nil {
				log.Printf("Failed to patch %s: %v", s.Feed(), err)
			}
		})
	})
}

func newSessionStore(sessionKey, encryptionKey string) *sessions.CookieStore {
	store := &sessions.CookieStore{
		Codecs: securecookie.CodecsFromPairs(
			getSessionKey(sessionKey),
			getEncryptionKey(encryptionKey),
		),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			Secure:   true,
			HttpOnly: true,
		},
	}
	store.MaxAge(defaultMaxAge)
	return store
}

// getSessionKey returns the key that signs session cookies. If it is not set,
// a random key is used for the life of the process.
func getSessionKey(key string) []byte {
	if key != "" {
		return []byte(key)
	}
	log.Println("No session key set, visitors will be forgotten on restart")
	return securecookie.GenerateRandomKey(32)
}

// getEncryptionKey stretches password into an AES-256 key.
func getEncryptionKey(password string) []byte {
	if password == "" {
		return securecookie.GenerateRandomKey(32)
	}
	return pbkdf2.Key([]byte(password), []byte{}, 4096, 32, sha1.New)
}
