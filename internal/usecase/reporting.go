package usecase

import (
	"errors"
	"sort"
	"strings"

	"pulse_tracker/internal/domain/entities"
)

// Reporting functions are pure: they fold over collections the caller has
// already loaded and never touch a repository.

var ErrNoTestimonials = errors.New("no testimonials to summarize")

const (
	defaultRecentLimit = 5
	highlightMinRating = 4
	highlightMaxChars  = 200
	noteListCap        = 5
)

// EngagementDigest is the slim engagement row shown in overview reports.
type EngagementDigest struct {
	ID       string                    `json:"id"`
	Name     string                    `json:"name"`
	Team     string                    `json:"team"`
	Status   entities.EngagementStatus `json:"status"`
	Blockers string                    `json:"blockers,omitempty"`
}

// EngagementOverview aggregates a collection of engagements.
type EngagementOverview struct {
	Total        int                               `json:"total"`
	StatusCounts map[entities.EngagementStatus]int `json:"statusCounts"`
	Recent       []EngagementDigest                `json:"recent"`
}

// SummarizeEngagements counts engagements per status (every enum value is
// present, zeros included) and lists the recentLimit most recently updated.
func SummarizeEngagements(engagements []entities.Engagement, recentLimit int) EngagementOverview {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}

	counts := make(map[entities.EngagementStatus]int, len(entities.EngagementStatuses))
	for _, status := range entities.EngagementStatuses {
		counts[status] = 0
	}
	for _, e := range engagements {
		counts[e.Status]++
	}

	byRecency := make([]entities.Engagement, len(engagements))
	copy(byRecency, engagements)
	sort.SliceStable(byRecency, func(i, j int) bool {
		return byRecency[i].UpdatedAt.After(byRecency[j].UpdatedAt)
	})
	if len(byRecency) > recentLimit {
		byRecency = byRecency[:recentLimit]
	}

	recent := make([]EngagementDigest, 0, len(byRecency))
	for _, e := range byRecency {
		recent = append(recent, EngagementDigest{
			ID:       e.ID,
			Name:     e.Name,
			Team:     e.Team,
			Status:   e.Status,
			Blockers: e.Blockers,
		})
	}

	return EngagementOverview{
		Total:        len(engagements),
		StatusCounts: counts,
		Recent:       recent,
	}
}

// TestimonialHighlight is a high-rating quote trimmed for display.
type TestimonialHighlight struct {
	SubmitterName  string `json:"submitterName"`
	EngagementName string `json:"engagementName,omitempty"`
	Rating         int    `json:"rating"`
	Excerpt        string `json:"excerpt"`
}

// TestimonialInsights aggregates a collection of testimonials.
type TestimonialInsights struct {
	Total             int                    `json:"total"`
	RatedCount        int                    `json:"ratedCount"`
	AverageRating     float64                `json:"averageRating"`
	RecommendAnswered int                    `json:"recommendAnswered"`
	RecommendRate     float64                `json:"recommendRate"`
	Highlights        []TestimonialHighlight `json:"highlights"`
	WhatWorkedWell    []string               `json:"whatWorkedWell"`
	WhatCouldImprove  []string               `json:"whatCouldImprove"`
}

// SummarizeTestimonials computes rating and recommendation statistics.
//
// Unrated testimonials count toward the total but not the average;
// RecommendRate is computed over the entries that answered the question.
// An empty collection yields ErrNoTestimonials instead of zeroed ratios.
func SummarizeTestimonials(testimonials []entities.Testimonial) (TestimonialInsights, error) {
	if len(testimonials) == 0 {
		return TestimonialInsights{}, ErrNoTestimonials
	}

	insights := TestimonialInsights{
		Total:            len(testimonials),
		Highlights:       []TestimonialHighlight{},
		WhatWorkedWell:   []string{},
		WhatCouldImprove: []string{},
	}

	ratingSum := 0
	recommendYes := 0
	for _, t := range testimonials {
		if t.Rating != nil {
			insights.RatedCount++
			ratingSum += *t.Rating
		}
		if t.WouldRecommend != nil {
			insights.RecommendAnswered++
			if *t.WouldRecommend {
				recommendYes++
			}
		}
		if t.Rating != nil && *t.Rating >= highlightMinRating {
			insights.Highlights = append(insights.Highlights, TestimonialHighlight{
				SubmitterName:  t.SubmitterName,
				EngagementName: t.EngagementName,
				Rating:         *t.Rating,
				Excerpt:        truncate(t.TestimonialText, highlightMaxChars),
			})
		}
	}

	if insights.RatedCount > 0 {
		insights.AverageRating = float64(ratingSum) / float64(insights.RatedCount)
	}
	if insights.RecommendAnswered > 0 {
		insights.RecommendRate = float64(recommendYes) / float64(insights.RecommendAnswered)
	}

	insights.WhatWorkedWell = collectNotes(testimonials, func(t entities.Testimonial) string { return t.WhatWorkedWell })
	insights.WhatCouldImprove = collectNotes(testimonials, func(t entities.Testimonial) string { return t.WhatCouldImprove })

	return insights, nil
}

// collectNotes deduplicates non-empty free-text notes by exact equality,
// keeping first-seen order, capped at noteListCap.
func collectNotes(testimonials []entities.Testimonial, pick func(entities.Testimonial) string) []string {
	seen := make(map[string]struct{})
	notes := []string{}
	for _, t := range testimonials {
		note := strings.TrimSpace(pick(t))
		if note == "" {
			continue
		}
		if _, dup := seen[note]; dup {
			continue
		}
		seen[note] = struct{}{}
		notes = append(notes, note)
		if len(notes) == noteListCap {
			break
		}
	}
	return notes
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// SummarizeTasks rolls task statuses up into the progress summary attached
// to task listings. An empty collection reports zero percent complete.
func SummarizeTasks(tasks []entities.Task) entities.TaskSummary {
	s := entities.TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case entities.TaskStatusCompleted:
			s.Completed++
		case entities.TaskStatusInProgress:
			s.InProgress++
		}
	}
	s.Pending = s.Total - s.Completed - s.InProgress
	if s.Total > 0 {
		s.PercentComplete = int(float64(s.Completed)/float64(s.Total)*100 + 0.5)
	}
	return s
}
