package maintain

import (
	"context"
	"fmt"

	"github.com/fkkmemi/boardsync/internal/common"
	"github.com/fkkmemi/boardsync/internal/logging"
	"github.com/fkkmemi/boardsync/internal/server/models"
	"github.com/fkkmemi/boardsync/internal/server/repositories/counters"
)

// Router maps each lifecycle event type to its ordered pipeline and owns
// the per-event failure boundary: Critical steps propagate and fail the
// event, Advisory steps are logged and collected.
type Router struct {
	log       logging.Logger
	pipelines map[models.EventType]Pipeline
}

func NewRouter(
	log logging.Logger,
	accounts *AccountMirrorer,
	counter *CounterMaintainer,
	merger *FieldMerger,
	cascade *CascadeCoordinator,
	gc *TempFileCollector,
	search *SearchSynchronizer,
) *Router {

	r := &Router{log: log.With("module", "event_router")}

	r.pipelines = map[models.EventType]Pipeline{

		models.EventAccountCreated: {
			{Name: "account write", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return accounts.Create(ctx, ev.Account)
			}},
			{Name: "users counter", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.Users(), 1)
			}},
		},

		models.EventAccountDeleted: {
			{Name: "account remove", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return accounts.Delete(ctx, ev.Account.UID)
			}},
			{Name: "users counter", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.Users(), -1)
			}},
		},

		models.EventBoardCreated: {
			{Name: "boards counter", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.Boards(), 1)
			}},
		},

		models.EventBoardDeleted: {
			{Name: "boards counter", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.Boards(), -1)
			}},
			{Name: "article cascade", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return cascade.RemoveBoardArticles(ctx, ev.BoardID)
			}},
		},

		models.EventArticleCreated: {
			{Name: "board counter", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.BoardArticles(ev.BoardID), 1)
			}},
			{Name: "field merge", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return merger.MergeOnCreate(ctx, ev.Article)
			}},
			{Name: "temp file promotion", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return gc.RemoveAttached(ctx, ev.Article.Images)
			}},
			{Name: "temp file sweep", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return gc.SweepExpired(ctx)
			}},
			{Name: "search projection", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return search.ProjectArticle(ctx, ev.BoardID, ev.ArticleID, ev.Article)
			}},
		},

		models.EventArticleUpdated: {
			{Name: "field merge", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return merger.MergeOnUpdate(ctx, ev.Before, ev.Article)
			}},
			{Name: "replaced image cleanup", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return gc.RemoveReplaced(ctx, ev.BoardID, ev.ArticleID, ev.Before.Images, ev.Article.Images)
			}},
			{Name: "temp file promotion", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return gc.RemoveAttached(ctx, ev.Article.Images)
			}},
		},

		models.EventArticleDeleted: {
			{Name: "board counter", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.BoardArticles(ev.BoardID), -1)
			}},
			{Name: "comment cascade", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return cascade.RemoveArticleComments(ctx, ev.ArticleID)
			}},
			{Name: "content blob", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return cascade.RemoveArticleContent(ctx, ev.BoardID, ev.ArticleID, ev.Article.UID)
			}},
			{Name: "image blobs", Severity: Advisory, Run: func(ctx context.Context, ev *models.Event) error {
				return cascade.RemoveArticleImages(ctx, ev.BoardID, ev.ArticleID)
			}},
		},

		models.EventCommentCreated: {
			{Name: "comment counter", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.ArticleComments(ev.BoardID, ev.ArticleID), 1)
			}},
		},

		models.EventCommentDeleted: {
			{Name: "comment counter", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return counter.ApplyDelta(ctx, counters.ArticleComments(ev.BoardID, ev.ArticleID), -1)
			}},
		},

		models.EventBlobFinalized: {
			{Name: "temp file record", Severity: Critical, Run: func(ctx context.Context, ev *models.Event) error {
				return gc.RecordUpload(ctx, ev.Blob)
			}},
		},
	}

	return r
}

// Handle runs the event's pipeline. The returned Result lists advisory
// failures; a non-nil error means a critical step failed and the trigger
// source should redeliver the event.
func (r *Router) Handle(ctx context.Context, ev *models.Event) (*Result, error) {

	pipeline, ok := r.pipelines[ev.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrorUnknownEvent, ev.Type)
	}

	if err := validate(ev); err != nil {
		return nil, err
	}

	result := &Result{}

	for _, step := range pipeline {
		err := step.Run(ctx, ev)
		if err == nil {
			continue
		}

		if step.Severity == Critical {
			r.log.Error(ctx, "critical step failed",
				"type", string(ev.Type), "step", step.Name, "error", err.Error())
			return result, fmt.Errorf("%s: %w", step.Name, err)
		}

		r.log.Error(ctx, "advisory step failed",
			"type", string(ev.Type), "step", step.Name, "error", err.Error())
		result.Advisories = append(result.Advisories, StepError{Step: step.Name, Err: err})
	}

	return result, nil
}

// validate checks that the payloads the event's pipeline dereferences are
// present before any step runs.
func validate(ev *models.Event) error {

	missing := func(field string) error {
		return fmt.Errorf("%w: %s requires %s", common.ErrorInvalidEvent, ev.Type, field)
	}

	switch ev.Type {
	case models.EventAccountCreated, models.EventAccountDeleted:
		if ev.Account == nil || ev.Account.UID == "" {
			return missing("account")
		}
	case models.EventBoardCreated, models.EventBoardDeleted:
		if ev.BoardID == "" {
			return missing("boardId")
		}
	case models.EventArticleCreated, models.EventArticleDeleted:
		if ev.BoardID == "" || ev.ArticleID == "" || ev.Article == nil {
			return missing("article")
		}
	case models.EventArticleUpdated:
		if ev.BoardID == "" || ev.ArticleID == "" || ev.Article == nil || ev.Before == nil {
			return missing("article and before")
		}
	case models.EventCommentCreated, models.EventCommentDeleted:
		if ev.BoardID == "" || ev.ArticleID == "" {
			return missing("boardId and articleId")
		}
	case models.EventBlobFinalized:
		if ev.Blob == nil || ev.Blob.Name == "" {
			return missing("blob")
		}
	}

	return nil
}
