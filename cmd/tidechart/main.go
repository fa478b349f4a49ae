// Command tidechart fetches the upcoming tides for a point and prints the tide
// chart SVG, or with -hourly the estimated height every two hours.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/coastdash/pkg/stormglass"
	"github.com/spencer-p/coastdash/pkg/stormglass/splines"
	"github.com/spencer-p/coastdash/pkg/visualize"
)

type Config struct {
	Latitude      float64 `default:"50.4"`
	Longitude     float64 `default:"-5.0"`
	StormGlassKey string  `envconfig:"STORMGLASS_KEY"`
}

func main() {
	hourly := flag.Bool("hourly", false, "print estimated heights every two hours instead of the chart")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	client := stormglass.Client{Key: env.StormGlassKey}
	extrema, err := client.GetExtremes(context.Background(), &stormglass.ExtremesQuery{
		Lat:   env.Latitude,
		Lng:   env.Longitude,
		Start: time.Now(),
	})
	if err != nil {
		fmt.Printf("failed to fetch from Storm Glass: %v\n", err)
		os.Exit(1)
	}

	if *hourly {
		printHourly(extrema)
		return
	}

	chart := visualize.NewTideChart(visualize.DefaultChartConfig)
	chart.Render(extrema)
	if _, err := chart.Encode(os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
	fmt.Println()
}

func printHourly(extrema stormglass.Extrema) {
	if len(extrema) < 2 {
		fmt.Println("not enough tides to interpolate")
		return
	}

	step := 2 * time.Hour
	tstart := extrema[0].T()
	tend := extrema[len(extrema)-1].T()
	spl := splines.CurvesBetween(extrema)
	for t := tstart; t.Before(tend); t = t.Add(step) {
		fmt.Printf("%s %.2f\n", t.Format(time.RFC3339), spl.Eval(t))
	}
}
