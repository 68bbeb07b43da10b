package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/acikkaynak/housing-api-go/config"
	"github.com/acikkaynak/housing-api-go/geocode"
)

// geocode reads address fragments from stdin, one per line, and prints the
// suggestions the resolver would show while typing. Lines starting with
// "pick <n>" merge the typed house number into suggestion n, and
// "at <lat> <lng>" reverse geocodes a point.
func main() {
	delay := flag.Duration("debounce", geocode.DefaultDebounce, "delay before a search is sent")
	flag.Parse()

	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver := geocode.NewResolver(geocode.NewClient(geocode.ClientOptions{
		BaseURL:      cfg.Geocoder.BaseURL,
		UserAgent:    cfg.Geocoder.UserAgent,
		CountryCodes: cfg.Geocoder.CountryCodes,
		Timeout:      cfg.Geocoder.Timeout,
	}), cfg.Geocoder.Country)

	var (
		mu      sync.Mutex
		last    geocode.Result
		results = make(chan geocode.Result, 1)
	)
	session := geocode.NewSession(ctx, resolver, *delay, func(r geocode.Result) {
		results <- r
	})
	defer session.Close()

	go func() {
		for r := range results {
			mu.Lock()
			last = r
			mu.Unlock()
			printResult(r)
		}
	}()

	input := ""
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		var n int
		var lat, lng float64

		switch {
		case strings.HasPrefix(line, "pick "):
			mu.Lock()
			candidates := last.Candidates
			mu.Unlock()
			if _, err := fmt.Sscanf(line, "pick %d", &n); err != nil || n < 1 || n > len(candidates) {
				fmt.Fprintln(os.Stderr, "no such suggestion")
				continue
			}
			fmt.Println(geocode.MergeHouseNumber(input, candidates[n-1]))
		case strings.HasPrefix(line, "at "):
			if _, err := fmt.Sscanf(line, "at %f %f", &lat, &lng); err != nil {
				fmt.Fprintln(os.Stderr, "usage: at <lat> <lng>")
				continue
			}
			address, err := resolver.ReverseGeocode(ctx, lat, lng)
			if err != nil {
				fmt.Fprintln(os.Stderr, "reverse geocoding failed:", err)
				continue
			}
			fmt.Println(address)
		default:
			input = line
			session.Type(line)
		}
	}
}

func printResult(r geocode.Result) {
	fmt.Printf("#%d %q: %d suggestion(s)\n", r.Seq, r.Query, len(r.Candidates))
	for i, c := range r.Candidates {
		fmt.Printf("  %d. %s (%.5f, %.5f)\n", i+1, c.DisplayName, c.Latitude, c.Longitude)
	}
}
