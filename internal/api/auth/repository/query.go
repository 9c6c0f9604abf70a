package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, name, email, password, created_at, updated_at)
VALUES (:id, :name, :email, :password, :created_at, :updated_at)`

	queryGetByID = `
SELECT id, name, email, password, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, name, email, password, created_at, updated_at
FROM users
    WHERE email = :email`

	queryCreateWallet = `
INSERT INTO wallets (user_id, balance, monthly_allowance, weekly_allowance, savings_goal, savings_goal_name, updated_at)
VALUES (:user_id, 0, 0, 0, 0, '', :updated_at)`
)
