package financeRepository

import "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"

const (
	walletColumns = `user_id, balance, monthly_allowance, weekly_allowance, savings_goal, savings_goal_name, updated_at`

	queryGetWallet = `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = :user_id`

	queryGetWalletForUpdate = queryGetWallet + `
		FOR UPDATE`

	queryUpdateWalletSettings = `
		UPDATE wallets
		SET
			monthly_allowance = :monthly_allowance,
			weekly_allowance = :weekly_allowance,
			savings_goal = :savings_goal,
			savings_goal_name = :savings_goal_name,
			updated_at = :updated_at
		WHERE user_id = :user_id`

	queryAdjustBalance = `
		UPDATE wallets
		SET balance = balance + :delta, updated_at = :updated_at
		WHERE user_id = :user_id`

	querySetBalance = `
		UPDATE wallets
		SET balance = :balance, updated_at = :updated_at
		WHERE user_id = :user_id`

	queryListWalletUserIDs = `
		SELECT user_id FROM wallets ORDER BY user_id`

	transactionColumns = `id, user_id, title, description, amount, type, category, transaction_date, created_at, updated_at`

	queryCreateTransaction = `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (
			:id,
			:user_id,
			:title,
			:description,
			:amount,
			:type,
			:category,
			:transaction_date,
			:created_at,
			:updated_at
		)`

	queryGetTransactionByID = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE id = :id`

	queryGetTransactions = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = :user_id`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			title = :title,
			description = :description,
			amount = :amount,
			type = :type,
			category = :category,
			transaction_date = :transaction_date,
			updated_at = :updated_at
		WHERE id = :id`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id`

	queryTotals = `
		SELECT type, category, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = :user_id`

	queryTotalsGroupBy = `
		GROUP BY type, category`

	orderByDateDesc = `
		ORDER BY transaction_date DESC, id DESC`
)

var periodFilters = map[string]string{
	finance.PeriodAll: ``,
	finance.PeriodWeek: `
		AND transaction_date >= date_trunc('week', CURRENT_DATE)
		AND transaction_date < date_trunc('week', CURRENT_DATE) + interval '1 week'`,
	finance.PeriodMonth: `
		AND transaction_date >= date_trunc('month', CURRENT_DATE)
		AND transaction_date < date_trunc('month', CURRENT_DATE) + interval '1 month'`,
}
