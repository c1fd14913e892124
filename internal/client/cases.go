// ABOUTME: Case-domain API calls scoped by the session's role and user id
// ABOUTME: Covers citizen filing, judge caseload, and admin record management

package client

import (
	"context"
	"fmt"
)

// Case statuses reported by the backend
const (
	StatusPending    = "pending"
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAdjourned  = "adjourned"
)

// Case complexities accepted when filing
const (
	ComplexitySimple        = "simple"
	ComplexityModerate      = "moderate"
	ComplexityComplex       = "complex"
	ComplexityHighlyComplex = "highly_complex"
)

// Case is a case record as returned by the backend
type Case struct {
	ID            int    `json:"id"`
	CaseNumber    string `json:"case_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Complexity    string `json:"complexity"`
	Status        string `json:"status"`
	PriorityScore int    `json:"priority_score"`
	UserID        int    `json:"user_id"`
	JudgeID       *int   `json:"judge_id"`
	FiledAt       string `json:"filed_at"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	Judgment      string `json:"judgment,omitempty"`
}

// CaseCreate is the payload for filing a new case
type CaseCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Complexity  string `json:"complexity"`
	UserID      int    `json:"user_id"`
}

// CaseUpdate carries the fields an admin may change on a record
type CaseUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Complexity  *string `json:"complexity,omitempty"`
	Status      *string `json:"status,omitempty"`
	Judgment    *string `json:"judgment,omitempty"`
}

// JudgeAnalytics summarizes a judge's caseload
type JudgeAnalytics struct {
	TotalCases     int `json:"total_cases"`
	PendingCases   int `json:"pending_cases"`
	ScheduledCases int `json:"scheduled_cases"`
	CompletedCases int `json:"completed_cases"`
	CasesThisMonth int `json:"cases_this_month"`
}

// AdminAnalytics summarizes the whole platform
type AdminAnalytics struct {
	TotalCases     int `json:"total_cases"`
	TotalUsers     int `json:"total_users"`
	TotalJudges    int `json:"total_judges"`
	PendingCases   int `json:"pending_cases"`
	ScheduledCases int `json:"scheduled_cases"`
	CompletedCases int `json:"completed_cases"`
	CasesThisMonth int `json:"cases_this_month"`
}

// CloseCaseRequest records a judgment and closes the case
type CloseCaseRequest struct {
	CaseID   int    `json:"case_id"`
	Judgment string `json:"judgment"`
}

// FileCase calls POST /api/cases/file
func (c *Client) FileCase(ctx context.Context, input CaseCreate) (*Case, error) {
	var filed Case
	if err := c.post(ctx, "/api/cases/file", input, &filed); err != nil {
		return nil, err
	}
	c.cache.Flush()
	return &filed, nil
}

// UserCases calls GET /api/cases/user/{id}, returning the citizen's filings
func (c *Client) UserCases(ctx context.Context, userID int) ([]Case, error) {
	return c.cachedCases(ctx, fmt.Sprintf("/api/cases/user/%d", userID))
}

// JudgeCases calls GET /api/cases/judge/{id}, returning the judge's docket
func (c *Client) JudgeCases(ctx context.Context, judgeID int) ([]Case, error) {
	return c.cachedCases(ctx, fmt.Sprintf("/api/cases/judge/%d", judgeID))
}

// AdminCases calls GET /api/admins/cases, returning every record
func (c *Client) AdminCases(ctx context.Context) ([]Case, error) {
	return c.cachedCases(ctx, "/api/admins/cases")
}

// Case calls GET /api/cases/{id}
func (c *Client) Case(ctx context.Context, caseID int) (*Case, error) {
	var result Case
	if err := c.get(ctx, fmt.Sprintf("/api/cases/%d", caseID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetJudgeAnalytics calls GET /api/judges/{id}/analytics
func (c *Client) GetJudgeAnalytics(ctx context.Context, judgeID int) (*JudgeAnalytics, error) {
	path := fmt.Sprintf("/api/judges/%d/analytics", judgeID)
	if cached, ok := c.cache.Get(path); ok {
		return cached.(*JudgeAnalytics), nil
	}

	var result JudgeAnalytics
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	c.cache.SetDefault(path, &result)
	return &result, nil
}

// GetAdminAnalytics calls GET /api/admins/analytics
func (c *Client) GetAdminAnalytics(ctx context.Context) (*AdminAnalytics, error) {
	const path = "/api/admins/analytics"
	if cached, ok := c.cache.Get(path); ok {
		return cached.(*AdminAnalytics), nil
	}

	var result AdminAnalytics
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	c.cache.SetDefault(path, &result)
	return &result, nil
}

// ScheduleHearingResult is the backend's answer to a scheduling request
type ScheduleHearingResult struct {
	Message string `json:"message"`
	Case    Case   `json:"case"`
}

// ScheduleHearing calls POST /api/judges/schedule-hearing, letting the
// backend pick the next available slot for the case
func (c *Client) ScheduleHearing(ctx context.Context, judgeID, caseID int) (*ScheduleHearingResult, error) {
	path := fmt.Sprintf("/api/judges/schedule-hearing?judge_id=%d", judgeID)
	var result ScheduleHearingResult
	if err := c.post(ctx, path, map[string]int{"case_id": caseID}, &result); err != nil {
		return nil, err
	}
	c.cache.Flush()
	return &result, nil
}

// CloseCase calls POST /api/judges/close-case, recording the judgment
func (c *Client) CloseCase(ctx context.Context, judgeID int, input CloseCaseRequest) error {
	path := fmt.Sprintf("/api/judges/close-case?judge_id=%d", judgeID)
	if err := c.post(ctx, path, input, nil); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

// UpdateCase calls PUT /api/admins/cases/{id}
func (c *Client) UpdateCase(ctx context.Context, caseID int, update CaseUpdate) (*Case, error) {
	var updated Case
	if err := c.put(ctx, fmt.Sprintf("/api/admins/cases/%d", caseID), update, &updated); err != nil {
		return nil, err
	}
	c.cache.Flush()
	return &updated, nil
}

// DeleteCase calls DELETE /api/admins/cases/{id}
func (c *Client) DeleteCase(ctx context.Context, caseID int) error {
	if err := c.del(ctx, fmt.Sprintf("/api/admins/cases/%d", caseID)); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

// cachedCases fetches a case list, serving repeat reads from the short
// TTL cache so dashboard refreshes stay cheap
func (c *Client) cachedCases(ctx context.Context, path string) ([]Case, error) {
	if cached, ok := c.cache.Get(path); ok {
		return cached.([]Case), nil
	}

	var cases []Case
	if err := c.get(ctx, path, &cases); err != nil {
		return nil, err
	}
	c.cache.SetDefault(path, cases)
	return cases, nil
}
