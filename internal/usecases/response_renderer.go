package usecases

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"multichat/internal/entities"
)

const (
	timeLayout = "03:04 PM"
	dateLayout = "Monday, January 2, 2006"
)

// Renderer turns a category into reply text. Variant choice and decorative
// sub-tokens come from its random source; {time} and {date} from its clock.
type Renderer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewRenderer builds a renderer. A nil source seeds from the wall clock and a
// nil clock falls back to time.Now.
func NewRenderer(src rand.Source, now func() time.Time) *Renderer {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{rng: rand.New(src), now: now}
}

// Templates returns the raw variants of a category, placeholders included.
func Templates(category Category) []string {
	return templates[category]
}

// Render returns a single plain-text reply for category. original is the
// verbatim user text, echoed by the contextual templates.
func (r *Renderer) Render(category Category, platform entities.Platform, original string) (string, error) {
	variants, ok := templates[category]
	if !ok || len(variants) == 0 {
		return "", fmt.Errorf("no templates for category %q", category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmpl := variants[0]
	if len(variants) > 1 {
		tmpl = variants[r.rng.IntN(len(variants))]
	}

	return strings.NewReplacer(r.tokens(category, platform, original)...).Replace(tmpl), nil
}

// tokens must be called with r.mu held.
func (r *Renderer) tokens(category Category, platform entities.Platform, original string) []string {
	pairs := []string{phPlatform, string(platform), phMessage, original}

	switch category {
	case CategoryWeather:
		condition := r.pick(WeatherConditions)
		temperature := r.rng.IntN(temperatureSpread) + minTemperature
		pairs = append(pairs,
			phCondition, condition,
			phTemperature, strconv.Itoa(temperature),
			phWeatherTip, weatherTip(condition),
		)
	case CategoryTime:
		now := r.now()
		pairs = append(pairs, phTime, now.Format(timeLayout), phDate, now.Format(dateLayout))
	case CategoryFood:
		pairs = append(pairs, phCuisine, r.pick(cuisines), phFoodTip, r.pick(foodTips))
	case CategoryShopping:
		pairs = append(pairs, phShoppingTip, r.pick(shoppingTips))
	case CategoryTravel:
		pairs = append(pairs, phDestination, r.pick(destinations))
	case CategoryEntertainment:
		pairs = append(pairs, phActivity, r.pick(activities))
	}

	return pairs
}

func (r *Renderer) pick(options []string) string {
	return options[r.rng.IntN(len(options))]
}

func weatherTip(condition string) string {
	switch {
	case strings.Contains(condition, "rainy"):
		return "Don't forget your umbrella! ☂️"
	case strings.Contains(condition, "sunny"):
		return "Perfect day to go outside! 😎"
	default:
		return "Great day for any activities! 🌟"
	}
}
