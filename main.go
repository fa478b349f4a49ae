package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spencer-p/coastdash/pkg/dashboard"
	"github.com/spencer-p/coastdash/pkg/handlers"
	"github.com/spencer-p/coastdash/pkg/metrics"
	"github.com/spencer-p/coastdash/pkg/openmeteo"
	"github.com/spencer-p/coastdash/pkg/stormglass"
	"github.com/spencer-p/coastdash/pkg/sunset"
	"github.com/spencer-p/coastdash/pkg/visualize"
	"github.com/spencer-p/coastdash/pkg/weatherapi"
)

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`

	Latitude  float64 `default:"50.4"`
	Longitude float64 `default:"-5.0"`
	// Place is the location name sent to WeatherAPI.
	Place    string `default:"Cornwall"`
	Timezone string `default:"Europe/London"`

	WeatherAPIKey string `envconfig:"WEATHERAPI_KEY"`
	StormGlassKey string `envconfig:"STORMGLASS_KEY"`

	SessionKey    string `envconfig:"SESSION_KEY"`
	EncryptionKey string `envconfig:"ENCRYPTION_KEY"`

	DataDir string `envconfig:"KO_DATA_PATH"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}
	if env.WeatherAPIKey == "" {
		log.Println("WEATHERAPI_KEY is not set, the moon phase will be unavailable")
	}
	if env.StormGlassKey == "" {
		log.Println("STORMGLASS_KEY is not set, tides will be unavailable")
	}

	place, err := sunset.NewPlace(env.Latitude, env.Longitude, env.Timezone)
	if err != nil {
		log.Fatal(err.Error())
	}

	client := &http.Client{}
	d := dashboard.New(dashboard.Options{
		Weather: &openmeteo.Client{
			HTTP:      client,
			Latitude:  env.Latitude,
			Longitude: env.Longitude,
		},
		Moon: &weatherapi.Client{
			HTTP:  client,
			Key:   env.WeatherAPIKey,
			Query: env.Place,
		},
		Tides: &stormglass.Client{
			HTTP: client,
			Key:  env.StormGlassKey,
		},
		Place: place,
		Chart: visualize.DefaultChartConfig,
	})

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	r.Handle("/metrics", promhttp.Handler())

	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, handlers.Options{
		Dashboard:     d,
		Prefix:        env.Prefix,
		DataDir:       env.DataDir,
		SessionKey:    env.SessionKey,
		EncryptionKey: env.EncryptionKey,
	})

	srv := &http.Server{
		Handler:     r,
		Addr:        "0.0.0.0:" + env.Port,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the sections stream stays open until the
		// slowest feed answers.
	}
	log.Printf("Listening and serving on %s%s", srv.Addr, env.Prefix)
	log.Fatal(srv.ListenAndServe())
}
