package gateway

import (
	"context"
	"errors"
	"log/slog"

	"insight-api/domain"
	"insight-api/driver/jsonfile"
	"insight-api/logger"
	"insight-api/port"
	otelutil "insight-api/utils/otel"
)

// Collection file names as produced by mongoexport --jsonArray.
const (
	FileUsers              = "prod.users.json"
	FileScoreHistory       = "prod.userPoliticalScoreHistory.json"
	FileTopics             = "prod.topics.json"
	FileTopicSubscriptions = "prod.userTopicSubscriptions.json"
	FileIssues             = "prod.issues.json"
	FileIssueEvaluations   = "prod.userIssueEvaluations.json"
	FileIssueComments      = "prod.issueComments.json"
	FileMediaSources       = "prod.mediaSources.json"
	FileWatchHistory       = "prod.userWatchHistory.json"
	FileCommentLikes       = "prod.userCommentLikes.json"
)

// collectionFiles maps API-facing collection names to export file names.
// prod.userPoliticalPreferenceDetailHistory.json is a deprecated export and
// is deliberately absent: nothing in this service may read it.
var collectionFiles = map[string]string{
	"users":              FileUsers,
	"scoreHistory":       FileScoreHistory,
	"topics":             FileTopics,
	"topicSubscriptions": FileTopicSubscriptions,
	"issues":             FileIssues,
	"issueEvaluations":   FileIssueEvaluations,
	"issueComments":      FileIssueComments,
	"mediaSources":       FileMediaSources,
	"watchHistory":       FileWatchHistory,
	"commentLikes":       FileCommentLikes,
}

// FileFor resolves an API-facing collection name to its export file name.
func FileFor(collection string) (string, bool) {
	f, ok := collectionFiles[collection]
	return f, ok
}

// CollectionNames lists every loadable collection.
func CollectionNames() []string {
	names := make([]string, 0, len(collectionFiles))
	for name := range collectionFiles {
		names = append(names, name)
	}
	return names
}

// CollectionDriver reads one raw collection file.
type CollectionDriver interface {
	ReadCollection(ctx context.Context, fileName string) ([]any, error)
}

// CollectionGateway converts raw export records into domain tables, reading
// through the injected cache. It implements port.CollectionRepository.
type CollectionGateway struct {
	driver CollectionDriver
	cache  port.CollectionCache
	log    *slog.Logger
}

func NewCollectionGateway(driver CollectionDriver, cache port.CollectionCache, log *slog.Logger) *CollectionGateway {
	if log == nil {
		log = slog.Default()
	}
	return &CollectionGateway{
		driver: driver,
		cache:  cache,
		log:    log,
	}
}

// loadTable is the shared read path: cache lookup, raw file read, per-record
// conversion. Unreadable sources degrade to an empty table whose status says
// why; they are never surfaced as Go errors.
func loadTable[T any](ctx context.Context, g *CollectionGateway, fileName string, convert func(map[string]any) (T, bool)) domain.Table[T] {
	if cached, ok := g.cache.Get(fileName); ok {
		if table, ok := cached.(domain.Table[T]); ok {
			otelutil.RecordCacheHit(ctx)
			return table
		}
	}
	otelutil.RecordCacheMiss(ctx)

	ctx = logger.WithCollection(ctx, fileName)
	log := logger.NewContextLogger(g.log).WithContext(ctx)

	raw, err := g.driver.ReadCollection(ctx, fileName)
	if err != nil {
		table := classifyLoadError[T](log, err)
		g.cache.Set(fileName, table)
		return table
	}

	if len(raw) == 0 {
		log.Info("collection file holds no records")
		table := domain.Table[T]{Records: []T{}, Status: domain.LoadEmpty}
		g.cache.Set(fileName, table)
		return table
	}

	records := make([]T, 0, len(raw))
	skipped := 0
	for i, elem := range raw {
		m, ok := elem.(map[string]any)
		if !ok {
			log.Warn("skipping non-object record", "index", i)
			skipped++
			continue
		}
		record, ok := convert(m)
		if !ok {
			log.Warn("skipping malformed record", "index", i)
			skipped++
			continue
		}
		records = append(records, record)
	}

	log.Info("collection loaded",
		"records", len(records),
		"skipped", skipped,
	)
	otelutil.RecordCollectionLoad(ctx, fileName, len(records), skipped)

	table := domain.Table[T]{Records: records, Status: domain.LoadOK}
	g.cache.Set(fileName, table)
	return table
}

func classifyLoadError[T any](log *slog.Logger, err error) domain.Table[T] {
	if errors.Is(err, jsonfile.ErrNotFound) {
		log.Warn("collection file not found")
		return domain.Table[T]{Records: []T{}, Status: domain.LoadMissing, Reason: err.Error()}
	}
	log.Error("failed to decode collection file", "err", err)
	return domain.Table[T]{Records: []T{}, Status: domain.LoadMalformed, Reason: err.Error()}
}

func (g *CollectionGateway) Users(ctx context.Context) domain.Table[domain.User] {
	return loadTable(ctx, g, FileUsers, g.convertUser)
}

func (g *CollectionGateway) ScoreHistory(ctx context.Context) domain.Table[domain.ScoreHistoryRecord] {
	return loadTable(ctx, g, FileScoreHistory, g.convertScoreHistory)
}

func (g *CollectionGateway) Topics(ctx context.Context) domain.Table[domain.Topic] {
	return loadTable(ctx, g, FileTopics, g.convertTopic)
}

func (g *CollectionGateway) TopicSubscriptions(ctx context.Context) domain.Table[domain.TopicSubscription] {
	return loadTable(ctx, g, FileTopicSubscriptions, g.convertTopicSubscription)
}

func (g *CollectionGateway) Issues(ctx context.Context) domain.Table[domain.Issue] {
	return loadTable(ctx, g, FileIssues, g.convertIssue)
}

func (g *CollectionGateway) IssueEvaluations(ctx context.Context) domain.Table[domain.IssueEvaluation] {
	return loadTable(ctx, g, FileIssueEvaluations, g.convertIssueEvaluation)
}

func (g *CollectionGateway) IssueComments(ctx context.Context) domain.Table[domain.IssueComment] {
	return loadTable(ctx, g, FileIssueComments, g.convertIssueComment)
}

func (g *CollectionGateway) MediaSources(ctx context.Context) domain.Table[domain.MediaSource] {
	return loadTable(ctx, g, FileMediaSources, g.convertMediaSource)
}

func (g *CollectionGateway) WatchHistory(ctx context.Context) domain.Table[domain.WatchHistoryRecord] {
	return loadTable(ctx, g, FileWatchHistory, g.convertWatchHistory)
}

func (g *CollectionGateway) CommentLikes(ctx context.Context) domain.Table[domain.CommentLike] {
	return loadTable(ctx, g, FileCommentLikes, g.convertCommentLike)
}
