package geocode

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"go.uber.org/zap"
)

const (
	MinQueryLength      = 2
	MaxResults          = 8
	importanceThreshold = 0.3
)

var (
	ErrNoAddress = errors.New("no address found for the given coordinates")

	houseNumber = regexp.MustCompile(`^\d+`)

	streetTokens   = []string{"rue", "avenue", "boulevard"}
	allowedTypes   = map[string]bool{"house": true, "building": true, "residential": true}
	allowedClasses = map[string]bool{"highway": true, "place": true}
)

type Provider interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
	Reverse(ctx context.Context, lat, lng float64) (*Candidate, error)
}

type Resolver struct {
	provider Provider
	country  string
}

func NewResolver(provider Provider, country string) *Resolver {
	return &Resolver{provider: provider, country: country}
}

// Search returns at most MaxResults filtered and ranked candidates for query.
// Input shorter than MinQueryLength never reaches the provider, and provider
// failures are logged and reported as no results.
func (r *Resolver) Search(ctx context.Context, query string) []Candidate {
	candidates, err := r.Lookup(ctx, query)
	if err != nil {
		log.Logger().Error("address search failed", zap.String("query", query), zap.Error(err))
		return []Candidate{}
	}
	return candidates
}

// Lookup is Search without the error swallowing. Callers that cache results
// use it to tell "no match" apart from "provider down".
func (r *Resolver) Lookup(ctx context.Context, query string) ([]Candidate, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < MinQueryLength {
		return []Candidate{}, nil
	}

	candidates, err := r.provider.Search(ctx, Qualify(query, r.country))
	if err != nil {
		return []Candidate{}, err
	}

	return Rank(query, Filter(query, candidates)), nil
}

func (r *Resolver) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	candidate, err := r.provider.Reverse(ctx, lat, lng)
	if err != nil {
		log.Logger().Error("reverse geocoding failed",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return "", err
	}
	if candidate == nil || strings.TrimSpace(candidate.DisplayName) == "" {
		return "", ErrNoAddress
	}

	return candidate.DisplayName, nil
}

// Qualify appends the country to street-like queries that do not name it yet.
func Qualify(query, country string) string {
	if country == "" {
		return query
	}

	lower := strings.ToLower(query)
	if strings.Contains(lower, strings.ToLower(country)) {
		return query
	}
	for _, token := range streetTokens {
		if strings.Contains(lower, token) {
			return query + ", " + country
		}
	}
	return query
}

func Filter(query string, candidates []Candidate) []Candidate {
	q := strings.ToLower(query)
	var words []string
	for _, w := range strings.Split(q, " ") {
		if utf8.RuneCountInString(w) > 2 {
			words = append(words, w)
		}
	}

	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.DisplayName == "" {
			continue
		}
		if matches(strings.ToLower(c.DisplayName), q, words) ||
			allowedTypes[c.Type] ||
			allowedClasses[c.Class] ||
			c.importance() > importanceThreshold {
			kept = append(kept, c)
		}
	}
	return kept
}

func matches(name, query string, words []string) bool {
	if strings.Contains(name, query) {
		return true
	}
	for _, w := range words {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

// Rank orders candidates by prefix match, then substring match, then
// importance, keeping the provider order for ties, and caps the result.
func Rank(query string, candidates []Candidate) []Candidate {
	q := strings.ToLower(query)
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := strings.ToLower(ranked[i].DisplayName), strings.ToLower(ranked[j].DisplayName)

		aStarts, bStarts := strings.HasPrefix(a, q), strings.HasPrefix(b, q)
		if aStarts != bStarts {
			return aStarts
		}
		aContains, bContains := strings.Contains(a, q), strings.Contains(b, q)
		if aContains != bContains {
			return aContains
		}
		return ranked[i].importance() > ranked[j].importance()
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	return ranked
}

// MergeHouseNumber keeps a house number the user typed when the chosen
// candidate lost it: "12 Rue Soutrane" + "Rue Soutrane, Valbonne" becomes
// "12 Rue Soutrane, Valbonne".
func MergeHouseNumber(input string, chosen Candidate) string {
	number := houseNumber.FindString(strings.TrimSpace(input))
	if number == "" {
		return chosen.DisplayName
	}

	parts := strings.Split(chosen.DisplayName, ", ")
	if houseNumber.MatchString(parts[0]) {
		return chosen.DisplayName
	}

	parts[0] = number + " " + parts[0]
	return strings.Join(parts, ", ")
}
