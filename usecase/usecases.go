package usecase

// Usecases groups the application layer for wiring into the HTTP server.
type Usecases struct {
	ScoreTimeline  *ScoreTimelineUsecase
	TopicSubs      *TopicSubscriberUsecase
	MediaSupport   *MediaSupportUsecase
	RecentIssues   *RecentIssuesUsecase
	IssueEvals     *IssueEvaluationUsecase
	PreferenceDist *PreferenceDistributionUsecase
	ActiveUsers    *ActiveUsersUsecase
	UserJourney    *UserJourneyUsecase
	UserReport     *UserReportUsecase
}
