package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sadopc/moodr/internal/analytics"
	"github.com/sadopc/moodr/internal/datekey"
	"github.com/sadopc/moodr/internal/mood"
	"github.com/sadopc/moodr/internal/store"
)

const defaultSearchLimit = 10

type handlerFunc = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

type summaryResult struct {
	Window  string            `json:"window"`
	From    string            `json:"from"`
	To      string            `json:"to"`
	Series  []analytics.Point `json:"series"`
	Summary analytics.Summary `json:"summary"`
	Average string            `json:"averageIcon"`
	Top     string            `json:"topMoodIcon"`
}

type streakResult struct {
	Today   string `json:"today"`
	Last7   int    `json:"last7"`
	Prev7   int    `json:"prev7"`
	Streak  int    `json:"streak"`
	Summary string `json:"summary"`
}

type noteResult struct {
	DateKey string  `json:"dateKey"`
	Mood    string  `json:"mood"`
	Icon    string  `json:"icon"`
	Score   float64 `json:"score"`
	Note    string  `json:"note"`
}

// RegisterMoodSummaryTool registers the mood_summary tool.
func RegisterMoodSummaryTool(s *server.MCPServer, st *store.Store) {
	tool := mcp.NewTool("mood_summary",
		mcp.WithDescription("Returns the daily mood series and summary for the week or month containing a day."),
		mcp.WithString("window", mcp.Description("'weekly' (default) or 'monthly'.")),
		mcp.WithString("anchor", mcp.Description("Any day inside the period, as YYYY-MM-DD. Defaults to today.")),
	)
	s.AddTool(tool, moodSummaryHandler(st))
}

func moodSummaryHandler(st *store.Store) handlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window := analytics.Weekly
		if raw, ok := request.Params.Arguments["window"].(string); ok && raw != "" {
			w, err := analytics.ParseWindow(raw)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Invalid 'window': %v", err)), nil
			}
			window = w
		}
		anchor, errResult := dayArg(request, "anchor")
		if errResult != nil {
			return errResult, nil
		}

		entries, err := st.ListEntries(store.EntryFilter{})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load entries: %v", err)), nil
		}
		series := analytics.BuildSeries(entries, window, anchor)
		summary := analytics.ComputeSummary(series)
		from, to := analytics.Bounds(window, anchor)

		return jsonResult(summaryResult{
			Window:  window.String(),
			From:    datekey.Encode(from),
			To:      datekey.Encode(to),
			Series:  series,
			Summary: summary,
			Average: mood.IconForValue(summary.Avg),
			Top:     summary.TopMoodIcon(),
		})
	}
}

// RegisterGentleStreakTool registers the gentle_streak tool.
func RegisterGentleStreakTool(s *server.MCPServer, st *store.Store) {
	tool := mcp.NewTool("gentle_streak",
		mcp.WithDescription("Reports the gentle-action streak and week-over-week completion trend."),
		mcp.WithString("today", mcp.Description("The day to measure from, as YYYY-MM-DD. Defaults to today.")),
	)
	s.AddTool(tool, gentleStreakHandler(st))
}

func gentleStreakHandler(st *store.Store) handlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		today, errResult := dayArg(request, "today")
		if errResult != nil {
			return errResult, nil
		}
		days, err := st.ListGentleDays()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load gentle actions: %v", err)), nil
		}
		key := datekey.Encode(today)
		trend := analytics.ComputeTrend(days, key)
		return jsonResult(streakResult{
			Today:   key,
			Last7:   trend.Last7,
			Prev7:   trend.Prev7,
			Streak:  trend.Streak,
			Summary: trend.String(),
		})
	}
}

// RegisterSearchNotesTool registers the search_notes tool.
func RegisterSearchNotesTool(s *server.MCPServer, st *store.Store) {
	tool := mcp.NewTool("search_notes",
		mcp.WithDescription("Fuzzy-searches check-in notes, best matches first."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text to look for in notes.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 10).")),
	)
	s.AddTool(tool, searchNotesHandler(st))
}

func searchNotesHandler(st *store.Store) handlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, ok := request.Params.Arguments["query"].(string)
		if !ok || query == "" {
			return mcp.NewToolResultError("'query' parameter is required and must be a non-empty string."), nil
		}
		limit := defaultSearchLimit
		if n, ok := request.Params.Arguments["limit"].(float64); ok && n >= 1 {
			limit = int(n)
		}

		entries, err := st.ListEntries(store.EntryFilter{})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load entries: %v", err)), nil
		}
		matches := mood.SearchNotes(entries, query)
		if len(matches) > limit {
			matches = matches[:limit]
		}
		results := make([]noteResult, 0, len(matches))
		for _, m := range matches {
			results = append(results, noteResult{
				DateKey: m.Entry.DateKey,
				Mood:    string(m.Entry.MoodID),
				Icon:    m.Entry.MoodID.Icon(),
				Score:   m.Entry.Score(),
				Note:    m.Entry.Note,
			})
		}
		return jsonResult(results)
	}
}

// dayArg reads an optional YYYY-MM-DD argument, defaulting to today.
func dayArg(request mcp.CallToolRequest, name string) (time.Time, *mcp.CallToolResult) {
	raw, ok := request.Params.Arguments[name].(string)
	if !ok || raw == "" {
		return datekey.Noon(time.Now()), nil
	}
	if !datekey.Valid(raw) {
		return time.Time{}, mcp.NewToolResultError(fmt.Sprintf("'%s' must be a date formatted as YYYY-MM-DD.", name))
	}
	t, _ := datekey.Decode(raw)
	return t, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
