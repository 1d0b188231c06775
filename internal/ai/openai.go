package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/planner"
)

// Compile-time interface check
var _ PlanSupplier = (*OpenAI)(nil)

// ChatCompletionsService defines the interface for making chat completion
// API calls. This abstraction enables testing without calling the real
// OpenAI API.
type ChatCompletionsService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAI supplies training weeks via OpenAI's chat completion API.
type OpenAI struct {
	completions ChatCompletionsService
	model       openai.ChatModel
	timeout     time.Duration
}

// NewOpenAI creates a new OpenAI plan supplier.
func NewOpenAI(apiKey, model string, timeout time.Duration) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		completions: client.Chat.Completions,
		model:       openai.ChatModel(model),
		timeout:     timeout,
	}
}

func (o *OpenAI) Name() string { return "openai" }

const systemPrompt = "You are an endurance coach generating structured weekly training schedules. " +
	"Respond with JSON only, no prose."

// aiWorkout is the wire schema one supplied workout must follow.
type aiWorkout struct {
	DayOfWeek       int      `json:"day_of_week"`
	Name            string   `json:"name"`
	Modality        string   `json:"modality"`
	Intensity       string   `json:"intensity"`
	DurationMinutes int      `json:"duration_minutes"`
	DistanceMiles   *float64 `json:"distance_miles,omitempty"`
	TotalYards      *int     `json:"total_yards,omitempty"`
	Description     string   `json:"description,omitempty"`
	Instructions    string   `json:"instructions,omitempty"`
}

type aiWeekResponse struct {
	Workouts []aiWorkout `json:"workouts"`
}

// SupplyWeek asks the model for one training week and converts the
// response into validated descriptors. Any structural problem is an
// error; the caller's chain decides what to fall back to.
func (o *OpenAI) SupplyWeek(ctx context.Context, req WeekRequest) ([]planner.Descriptor, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildWeekPrompt(req)),
		}),
		Model:       openai.F(o.model),
		Temperature: openai.F(0.7),
	})
	if err != nil {
		return nil, fmt.Errorf("week generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("week generation failed: no choices returned")
	}

	week, err := parseWeekResponse(resp.Choices[0].Message.Content, req)
	if err != nil {
		return nil, err
	}
	if err := planner.ValidateWeek(week); err != nil {
		return nil, fmt.Errorf("supplied week rejected: %w", err)
	}
	return week, nil
}

// buildWeekPrompt renders the goal, athlete and plan context into the
// generation prompt.
func buildWeekPrompt(req WeekRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate week %d of %d of a %s training plan.\n",
		req.Week, req.Plan.TotalWeeks, req.Goal.Category)
	fmt.Fprintf(&b, "Training phase: %s. Weekly focus: %s.\n",
		req.Phase, planner.WeeklyFocus(req.Phase, req.Week))
	if req.Athlete != nil {
		fmt.Fprintf(&b, "Athlete fitness level: %s.\n", req.Athlete.Level())
	}
	fmt.Fprintf(&b, "Weekly session targets: %d swim, %d bike, %d run, %d strength.\n",
		req.Plan.WeeklySwimSessions, req.Plan.WeeklyBikeSessions,
		req.Plan.WeeklyRunSessions, req.Plan.WeeklyStrengthSessions)
	b.WriteString(`Return JSON: {"workouts":[{"day_of_week":0,"name":"...","modality":"run|bike|swim|strength|rest|cross_training|brick","intensity":"recovery|easy|moderate|hard|very_hard","duration_minutes":45,"distance_miles":3.0,"total_yards":null,"description":"...","instructions":"..."}]}` + "\n")
	b.WriteString("Exactly 7 workouts, day_of_week 0 (Monday) through 6 (Sunday) in order. " +
		"Rest days use modality rest with duration_minutes 0.")
	return b.String()
}

// parseWeekResponse extracts and decodes the JSON payload, tolerating
// surrounding prose or markdown fences.
func parseWeekResponse(content string, req WeekRequest) ([]planner.Descriptor, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("response contains no JSON object")
	}

	var parsed aiWeekResponse
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if len(parsed.Workouts) != planner.DaysPerWeek {
		return nil, fmt.Errorf("response has %d workouts, want %d", len(parsed.Workouts), planner.DaysPerWeek)
	}

	week := make([]planner.Descriptor, 0, planner.DaysPerWeek)
	for _, w := range parsed.Workouts {
		if !domain.Modality(w.Modality).IsValid() {
			return nil, fmt.Errorf("unknown modality %q", w.Modality)
		}
		if !domain.Intensity(w.Intensity).IsValid() {
			return nil, fmt.Errorf("unknown intensity %q", w.Intensity)
		}
		week = append(week, planner.Descriptor{
			Name:            w.Name,
			Modality:        domain.Modality(w.Modality),
			Intensity:       domain.Intensity(w.Intensity),
			Phase:           req.Phase,
			DayOfWeek:       w.DayOfWeek,
			ScheduledDate:   req.WeekStart.AddDate(0, 0, w.DayOfWeek),
			DurationMinutes: w.DurationMinutes,
			DistanceMiles:   w.DistanceMiles,
			TotalYards:      w.TotalYards,
			Description:     w.Description,
			Instructions:    w.Instructions,
		})
	}
	return week, nil
}
