package chatRepository

const (
	queryCreateInsight = `
INSERT INTO financial_insights (id, user_id, intent, message, reply, created_at)
VALUES (:id, :user_id, :intent, :message, :reply, :created_at)`

	queryListInsights = `
SELECT id, user_id, intent, message, reply, created_at
FROM financial_insights
    WHERE user_id = :user_id
ORDER BY created_at DESC, id DESC
LIMIT :limit`
)
