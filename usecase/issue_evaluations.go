package usecase

import (
	"context"
	"errors"
	"sort"

	"insight-api/domain"
	"insight-api/port"
)

// recentEvaluationLimit caps the detail slice of an evaluation summary.
const recentEvaluationLimit = 10

// IssueEvaluationUsecase summarizes how users evaluated one issue.
type IssueEvaluationUsecase struct {
	repo port.CollectionRepository
}

func NewIssueEvaluationUsecase(repo port.CollectionRepository) *IssueEvaluationUsecase {
	return &IssueEvaluationUsecase{repo: repo}
}

// Execute counts the issue's evaluations per perspective and attaches the
// most recent ones. Unknown issue IDs yield domain.ErrIssueNotFound.
func (u *IssueEvaluationUsecase) Execute(ctx context.Context, issueID string) (*domain.IssueEvaluationSummary, error) {
	issues := u.repo.Issues(ctx)
	if !issues.Loaded() {
		return nil, &domain.RepositoryError{Op: "load issues", Err: errors.New(issues.Reason)}
	}

	var issue *domain.Issue
	for i := range issues.Records {
		if issues.Records[i].ID == issueID {
			issue = &issues.Records[i]
			break
		}
	}
	if issue == nil {
		return nil, domain.ErrIssueNotFound
	}

	summary := &domain.IssueEvaluationSummary{
		IssueID:    issue.ID,
		IssueTitle: issue.Title,
	}

	evaluations := u.repo.IssueEvaluations(ctx)
	matched := make([]domain.IssueEvaluation, 0)
	for _, eval := range evaluations.Records {
		if eval.IssueID != issueID {
			continue
		}
		switch eval.Perspective {
		case domain.PerspectiveLeft:
			summary.LeftCount++
		case domain.PerspectiveCenter:
			summary.CenterCount++
		case domain.PerspectiveRight:
			summary.RightCount++
		default:
			continue
		}
		matched = append(matched, eval)
	}
	summary.TotalCount = summary.LeftCount + summary.CenterCount + summary.RightCount

	sort.Slice(matched, func(i, j int) bool {
		return newerFirst(matched[i].EvaluatedAt, matched[j].EvaluatedAt, matched[i].ID, matched[j].ID)
	})
	if len(matched) > recentEvaluationLimit {
		matched = matched[:recentEvaluationLimit]
	}
	summary.Recent = matched

	return summary, nil
}
